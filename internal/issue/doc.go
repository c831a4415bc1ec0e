// SPDX-License-Identifier: MPL-2.0

// Package issue holds the user-facing remediation messages for known
// failure conditions: the first-run species walkthrough, missing system
// tools, missing installer artifacts and failed hook commands. Messages are
// written in markdown and rendered for the terminal with glamour.
package issue
