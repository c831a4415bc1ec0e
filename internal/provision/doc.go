// SPDX-License-Identifier: MPL-2.0

// Package provision drives the environment life-cycle for one working
// directory.
//
// A Provisioner loads the persisted environment record, resolves the
// configured species and runs the state machine: a directory that has never
// been registered is kickstarted and then refreshed; a registered directory
// is refreshed only when a dependency file is newer than the stored setup
// stamp or when a refresh is forced. Successful runs end in registration,
// the single point that mutates persisted state, so a failed run can always
// be re-driven from where it stopped.
//
// One run is strictly sequential: each hook completes before the next step
// starts. Nothing here guards against two concurrent runs on the same
// directory; callers must serialize those themselves.
package provision
