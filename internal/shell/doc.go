// SPDX-License-Identifier: MPL-2.0

// Package shell runs provisioning hook commands.
//
// Commands are executed through the embedded POSIX shell interpreter
// (mvdan.cc/sh), with combined stdout/stderr appended to a per-command log
// file. Callers only learn the exit status: a non-zero exit surfaces as a
// CommandExecutionError carrying the log path for diagnosis, and command
// output is never inspected beyond that.
package shell
