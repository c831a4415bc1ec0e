// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPosixExecutor_Run_Success(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	logPath := filepath.Join(root, "logs", "log-test")

	x := NewPosixExecutor(root)
	if err := x.Run(context.Background(), "echo provisioned", logPath); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "provisioned") {
		t.Errorf("log does not contain command output: %q", data)
	}
}

func TestPosixExecutor_Run_NonZeroExit(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	logPath := filepath.Join(root, "log-fail")

	x := NewPosixExecutor(root)
	err := x.Run(context.Background(), "exit 3", logPath)
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Run error = %v, want ErrCommandFailed", err)
	}

	var cmdErr *CommandExecutionError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error is not *CommandExecutionError: %v", err)
	}
	if cmdErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", cmdErr.ExitCode)
	}
	if cmdErr.LogPath != logPath {
		t.Errorf("LogPath = %q, want %q", cmdErr.LogPath, logPath)
	}
	if !strings.Contains(cmdErr.Error(), logPath) {
		t.Errorf("error text should name the log file: %q", cmdErr.Error())
	}
}

func TestPosixExecutor_Run_WritesToWorkingDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	x := NewPosixExecutor(root)
	if err := x.Run(context.Background(), "echo ok > marker", ""); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "marker")); err != nil {
		t.Errorf("command did not run in the executor's working directory: %v", err)
	}
}

func TestPosixExecutor_Run_ParseError(t *testing.T) {
	t.Parallel()

	x := NewPosixExecutor(t.TempDir())
	err := x.Run(context.Background(), "if then fi done", "")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if errors.Is(err, ErrCommandFailed) {
		t.Errorf("parse failure should not be a CommandExecutionError: %v", err)
	}
}
