// SPDX-License-Identifier: MPL-2.0

package envconf

type (
	// Record is the persisted environment state for one working directory.
	// Zero values mean "unset": an empty Species means no environment kind
	// has been configured, a zero SetupStamp means no provisioning run has
	// ever completed.
	Record struct {
		// Species is the configured environment kind.
		Species string
		// SetupStamp is the Unix time (seconds) of the last successful
		// registration.
		SetupStamp int64
		// ActivateEnv is the activation command recorded on registration.
		ActivateEnv string
		// Installer is the path to an installer artifact for species that
		// need one.
		Installer string
		// Extra holds keys owned by other parts of the factory. They are
		// read back verbatim on Write so a provisioning run never drops them.
		Extra map[string]any
	}

	// Store reads and writes the persisted environment state. The
	// provisioner is the sole writer during a run; concurrent runs on the
	// same directory can lose updates and must be serialized by the caller.
	Store interface {
		Read() (Record, error)
		Write(Record) error
	}
)
