// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitjungle/gorelia/internal/version"
)

var (
	verbose bool
	quiet   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gorelia-cli",
	Short: "gorelia - structural reliability analysis engine",
	Long: `gorelia-cli runs first-order and simulation-based structural reliability
analyses against a JSON model file: marginals, a physical-space
correlation matrix and a limit-state reference.

It supports FOSM, FORM (HLRF/iHLRF), Monte Carlo and importance sampling,
and ships with the numerical benchmark models used to validate the engine.`,
	Version: version.Get().Short(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
}
