// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSystemDependency is the sentinel error wrapped by
	// MissingSystemDependencyError.
	ErrMissingSystemDependency = errors.New("missing system dependency")
	// ErrMissingInstallerArtifact is the sentinel error wrapped by
	// MissingInstallerArtifactError.
	ErrMissingInstallerArtifact = errors.New("missing installer artifact")
)

type (
	// MissingSystemDependencyError reports an external tool a kickstart
	// requires but could not find. Hint names an alternative species the
	// user can switch to.
	MissingSystemDependencyError struct {
		Tool string
		Hint string
	}

	// MissingInstallerArtifactError reports an installer artifact that is
	// not configured or does not exist on disk.
	MissingInstallerArtifactError struct {
		// Path is the configured artifact path; empty when no path was
		// configured at all.
		Path string
	}
)

// Error implements the error interface.
func (e *MissingSystemDependencyError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("required tool %q not found (%s)", e.Tool, e.Hint)
	}
	return fmt.Sprintf("required tool %q not found", e.Tool)
}

// Unwrap returns ErrMissingSystemDependency for use with errors.Is.
func (e *MissingSystemDependencyError) Unwrap() error { return ErrMissingSystemDependency }

// Error implements the error interface.
func (e *MissingInstallerArtifactError) Error() string {
	if e.Path == "" {
		return "no installer artifact configured"
	}
	return fmt.Sprintf("installer artifact not found: %s", e.Path)
}

// Unwrap returns ErrMissingInstallerArtifact for use with errors.Is.
func (e *MissingInstallerArtifactError) Unwrap() error { return ErrMissingInstallerArtifact }
