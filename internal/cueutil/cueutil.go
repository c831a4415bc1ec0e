// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the shared CUE decode flow used for embedded
// schema-backed tables: compile the schema, unify it with the data, validate,
// and decode into a Go struct.
package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// Decode compiles schema and data, unifies the data with the definition at
// schemaPath (e.g. "#SpeciesTable"), validates the result concretely, and
// decodes it into T.
func Decode[T any](schema, data []byte, schemaPath, filename string) (*T, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	dataValue := ctx.CompileBytes(data, cue.Filename(filename))
	if dataValue.Err() != nil {
		return nil, FormatError(dataValue.Err(), filename)
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	unified := schemaRoot.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, FormatError(err, filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}

	return &result, nil
}

// FormatError formats a CUE error as "<file>: <cue-path>: <message>" so the
// failing field is identifiable without reading the raw CUE error chain.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}

	first := cueErrs[0]
	path := cueerrors.Path(first)
	if len(path) == 0 {
		return fmt.Errorf("%s: %s", filename, first.Error())
	}

	pathStr := ""
	for i, elem := range path {
		if i > 0 {
			pathStr += "."
		}
		pathStr += elem
	}
	return fmt.Errorf("%s: %s: %s", filename, pathStr, first.Error())
}
