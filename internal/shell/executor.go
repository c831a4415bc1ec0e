// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"fmt"
)

// ErrCommandFailed is the sentinel error wrapped by CommandExecutionError.
var ErrCommandFailed = errors.New("command failed")

type (
	// Executor runs an external command, teeing its output to logPath.
	// Implementations return nil only when the command exits zero.
	Executor interface {
		Run(ctx context.Context, command, logPath string) error
	}

	// CommandExecutionError reports a command that exited non-zero. The log
	// file at LogPath holds the command's combined output.
	CommandExecutionError struct {
		Command  string
		LogPath  string
		ExitCode int
	}
)

// Error implements the error interface.
func (e *CommandExecutionError) Error() string {
	if e.LogPath != "" {
		return fmt.Sprintf("command exited with status %d (see %s)", e.ExitCode, e.LogPath)
	}
	return fmt.Sprintf("command exited with status %d", e.ExitCode)
}

// Unwrap returns ErrCommandFailed so callers can use errors.Is for
// programmatic detection.
func (e *CommandExecutionError) Unwrap() error { return ErrCommandFailed }
