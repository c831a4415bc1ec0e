// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"fmt"
	"time"

	"foundry-cli/internal/envconf"
	"foundry-cli/internal/species"
)

// EnvironmentRecord is the in-memory view of the persisted environment state
// for the current working directory. The provisioner owns it exclusively for
// the duration of one run.
type EnvironmentRecord struct {
	// Species is the configured environment kind; empty until first
	// configured.
	Species species.Kind
	// SetupStamp is the time of the last successful registration; the zero
	// value means no run has ever completed.
	SetupStamp time.Time
	// ActivationCommand is set on first successful registration.
	ActivationCommand string
	// Installer is the configured installer artifact path, when any.
	Installer string

	raw envconf.Record
}

// loadRecord reads the environment record from the store. Timestamps are
// persisted as Unix seconds and surfaced as time.Time.
func loadRecord(store envconf.Store) (EnvironmentRecord, error) {
	raw, err := store.Read()
	if err != nil {
		return EnvironmentRecord{}, fmt.Errorf("failed to load environment record: %w", err)
	}

	rec := EnvironmentRecord{
		Species:           species.Kind(raw.Species),
		ActivationCommand: raw.ActivateEnv,
		Installer:         raw.Installer,
		raw:               raw,
	}
	if raw.SetupStamp != 0 {
		rec.SetupStamp = time.Unix(raw.SetupStamp, 0)
	}
	return rec, nil
}

// storeForm folds the typed fields back into the raw record for persistence,
// preserving keys owned by other parts of the factory.
func (r EnvironmentRecord) storeForm() envconf.Record {
	out := r.raw
	out.Species = string(r.Species)
	out.ActivateEnv = r.ActivationCommand
	out.Installer = r.Installer
	if r.SetupStamp.IsZero() {
		out.SetupStamp = 0
	} else {
		out.SetupStamp = r.SetupStamp.Unix()
	}
	return out
}
