// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package validation provides JSON schema validation for gorelia model
// files: the marginals, correlation matrix, limit-state reference and
// analysis options that describe one reliability problem.
package validation

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/bitjungle/gorelia/pkg/types"
)

//go:embed schemas/v1/*.json
var schemaFS embed.FS

// ModelValidator validates model-file JSON data against the schema pair in
// schemas/<version>/, resolving common.schema.json's $ref definitions via
// gojsonschema's SchemaLoader.
type ModelValidator struct {
	schema  *gojsonschema.Schema
	version string
}

// NewModelValidator creates a new validator for the specified schema
// version ("v1" if empty).
func NewModelValidator(version string) (*ModelValidator, error) {
	if version == "" {
		version = "v1"
	}

	commonPath := fmt.Sprintf("schemas/%s/common.schema.json", version)
	commonData, err := schemaFS.ReadFile(commonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load common schema: %w", err)
	}

	mainPath := fmt.Sprintf("schemas/%s/model.schema.json", version)
	mainData, err := schemaFS.ReadFile(mainPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model schema: %w", err)
	}

	sl := gojsonschema.NewSchemaLoader()
	if err := sl.AddSchema("common.schema.json", gojsonschema.NewBytesLoader(commonData)); err != nil {
		return nil, fmt.Errorf("failed to register common schema: %w", err)
	}
	schema, err := sl.Compile(gojsonschema.NewBytesLoader(mainData))
	if err != nil {
		return nil, fmt.Errorf("failed to compile model schema: %w", err)
	}

	return &ModelValidator{schema: schema, version: version}, nil
}

// ValidateModel validates model-file JSON data against the schema, then
// checks the semantic invariants a schema cannot express: marginals and
// correlation rows/columns must agree in count, and the correlation
// matrix must be symmetric with a unit diagonal.
func (v *ModelValidator) ValidateModel(data []byte) error {
	var temp interface{}
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		return formatValidationErrors(result.Errors())
	}

	var model types.ModelFile
	if err := json.Unmarshal(data, &model); err != nil {
		return fmt.Errorf("failed to parse model: %w", err)
	}
	return validateModelShape(&model)
}

// validateModelShape checks cross-field invariants the JSON schema cannot
// express on its own.
func validateModelShape(model *types.ModelFile) error {
	n := len(model.Marginals)

	if len(model.Correlation) != n {
		return fmt.Errorf("correlation matrix has %d rows, want %d (one per marginal)", len(model.Correlation), n)
	}
	for i, row := range model.Correlation {
		if len(row) != n {
			return fmt.Errorf("correlation row %d has %d entries, want %d", i, len(row), n)
		}
		if row[i] != 1 {
			return fmt.Errorf("correlation[%d][%d] = %v, diagonal entries must be 1", i, i, row[i])
		}
		for j := 0; j < i; j++ {
			if row[j] != model.Correlation[j][i] {
				return fmt.Errorf("correlation matrix is not symmetric at (%d,%d)", i, j)
			}
		}
	}
	return nil
}

// formatValidationErrors formats validation errors into a readable message.
func formatValidationErrors(errors []gojsonschema.ResultError) error {
	if len(errors) == 0 {
		return nil
	}

	var msgs []string
	for _, err := range errors {
		field := err.Field()
		if field == "(root)" {
			field = "model"
		}
		msgs = append(msgs, fmt.Sprintf("  - %s: %s", field, err.Description()))
	}

	return fmt.Errorf("validation failed:\n%s", strings.Join(msgs, "\n"))
}
