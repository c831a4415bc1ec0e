// SPDX-License-Identifier: MPL-2.0

package species

import (
	_ "embed"
	"fmt"

	"foundry-cli/internal/cueutil"
)

//go:embed species_schema.cue
var tableSchema []byte

//go:embed species_table.cue
var tableData []byte

type (
	// Table is the declarative half of the builtin species set, decoded from
	// the embedded CUE table. Hook bindings are supplied by the caller that
	// assembles the registry.
	Table struct {
		Species   map[string]Meta         `json:"species"`
		Overrides map[string]OverrideMeta `json:"overrides"`
	}

	// Meta describes one base species: dependency-file groups, activation
	// commands and feature flags.
	Meta struct {
		Reqs          map[string][]string `json:"reqs"`
		Activate      string              `json:"activate"`
		SourceCmd     string              `json:"source_cmd"`
		LegacyRuntime bool                `json:"legacy_runtime"`
		Sandboxed     bool                `json:"sandboxed"`
		Welcome       bool                `json:"welcome"`
	}

	// OverrideMeta describes one derived species.
	OverrideMeta struct {
		Base          string `json:"base"`
		Sandboxed     *bool  `json:"sandboxed,omitempty"`
		LegacyRuntime *bool  `json:"legacy_runtime,omitempty"`
	}
)

// BuiltinTable decodes and validates the embedded species table.
func BuiltinTable() (*Table, error) {
	table, err := cueutil.Decode[Table](tableSchema, tableData, "#SpeciesTable", "species_table.cue")
	if err != nil {
		return nil, fmt.Errorf("failed to load species table: %w", err)
	}
	return table, nil
}

// DepFileGroups converts the decoded reqs map into typed dependency-file
// groups.
func (m Meta) DepFileGroups() map[GroupName][]string {
	groups := make(map[GroupName][]string, len(m.Reqs))
	for name, files := range m.Reqs {
		groups[GroupName(name)] = append([]string(nil), files...)
	}
	return groups
}
