// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Compile-time interface check
var _ Executor = (*PosixExecutor)(nil)

// PosixExecutor executes commands with the embedded POSIX shell interpreter.
// External programs referenced by the command still run as real processes;
// only the shell itself is in-process.
type PosixExecutor struct {
	// Dir is the working directory commands run in. Empty means the current
	// directory.
	Dir string

	// Env overrides the environment when non-nil; otherwise the process
	// environment is inherited.
	Env []string
}

// NewPosixExecutor creates a PosixExecutor rooted at dir.
func NewPosixExecutor(dir string) *PosixExecutor {
	return &PosixExecutor{Dir: dir}
}

// Run parses and executes command, appending combined output to logPath.
// A non-zero exit status is returned as a CommandExecutionError; nil means
// the command exited zero.
func (x *PosixExecutor) Run(ctx context.Context, command, logPath string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "command")
	if err != nil {
		return fmt.Errorf("failed to parse command: %w", err)
	}

	var out io.Writer = io.Discard
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close() //nolint:errcheck // log file, best effort
		out = logFile
	}

	env := x.Env
	if env == nil {
		env = os.Environ()
	}

	opts := []interp.RunnerOption{
		interp.Dir(x.Dir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, out, out),
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	log.Debug("running command", "command", command, "log", logPath)

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &CommandExecutionError{
				Command:  command,
				LogPath:  logPath,
				ExitCode: int(exitStatus),
			}
		}
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
