// SPDX-License-Identifier: MPL-2.0

// Package envconf persists the per-working-directory environment state.
//
// The state lives in a TOML file next to the working directory's scaffold.
// A missing file reads as an empty record; in particular an unset species is
// the signal for the first-run configuration flow, never an error to recover
// from here. Keys this package does not know about are preserved across a
// read-modify-write cycle, because the factory stores unrelated settings in
// the same file.
package envconf
