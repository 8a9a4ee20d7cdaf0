// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitjungle/gorelia/internal/datasets"
	"github.com/bitjungle/gorelia/pkg/security"
	"github.com/bitjungle/gorelia/pkg/types"
	"github.com/bitjungle/gorelia/pkg/validation"
)

// loadModelFile resolves a model by either a benchmark name (when
// benchmarkName is non-empty) or a path on disk, validating the file's raw
// JSON against the schema before unmarshalling it.
func loadModelFile(modelPath, benchmarkName string) (*types.ModelFile, error) {
	if benchmarkName != "" {
		model, ok := datasets.GetModel(benchmarkName)
		if !ok {
			return nil, fmt.Errorf("unknown benchmark model %q (available: %v)", benchmarkName, datasets.Names())
		}
		return model, nil
	}

	if modelPath == "" {
		return nil, fmt.Errorf("one of --model or --benchmark is required")
	}

	if err := security.ValidateInputPath(modelPath); err != nil {
		return nil, fmt.Errorf("invalid model path: %w", err)
	}

	resolvedPath, err := security.ResolveSymlinks(modelPath)
	if err != nil {
		return nil, fmt.Errorf("invalid model path: %w", err)
	}

	raw, err := os.ReadFile(resolvedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	validator, err := validation.NewModelValidator("")
	if err != nil {
		return nil, fmt.Errorf("failed to load model schema: %w", err)
	}
	if err := validator.ValidateModel(raw); err != nil {
		return nil, fmt.Errorf("model file failed validation: %w", err)
	}

	var model types.ModelFile
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}
	return &model, nil
}

// marginalNames returns the ordered list of marginal names from a model
// file, used to label design-point components in CLI output.
func marginalNames(model *types.ModelFile) []string {
	names := make([]string, len(model.Marginals))
	for i, m := range model.Marginals {
		names[i] = m.Name
	}
	return names
}
