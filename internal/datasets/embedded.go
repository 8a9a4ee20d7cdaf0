// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package datasets embeds the built-in model files for the engine's
// numerical benchmarks, so gorelia-cli's "analyze --benchmark" mode and
// the benchmark and CLI package tests can load them without a filesystem
// dependency.
package datasets

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/bitjungle/gorelia/pkg/types"
)

var (
	//go:embed linear_2d.json
	Linear2DJSON []byte

	//go:embed linear_correlated.json
	LinearCorrelatedJSON []byte

	//go:embed nonlinear.json
	NonlinearJSON []byte
)

// GetModel returns the embedded model file with the given name, parsed
// into a types.ModelFile.
func GetModel(name string) (*types.ModelFile, bool) {
	var raw []byte
	switch name {
	case "linear-2d":
		raw = Linear2DJSON
	case "linear-correlated":
		raw = LinearCorrelatedJSON
	case "nonlinear":
		raw = NonlinearJSON
	default:
		return nil, false
	}

	var model types.ModelFile
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, false
	}
	return &model, true
}

// Names lists the built-in benchmark model names, in canonical order.
func Names() []string {
	return []string{"linear-2d", "linear-correlated", "nonlinear"}
}

// MustGetModel is GetModel but panics on an unknown name; used by tests
// that reference a benchmark by its literal name.
func MustGetModel(name string) *types.ModelFile {
	model, ok := GetModel(name)
	if !ok {
		panic(fmt.Sprintf("datasets: unknown benchmark model %q", name))
	}
	return model
}
