// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for foundry.
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	// verbose enables debug logging
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "foundry",
		Short: "Provision the factory's runtime environment",
		Long: TitleStyle.Render("foundry") + SubtitleStyle.Render(" - factory environment provisioner") + `

foundry builds and maintains the isolated environment the factory
toolchain runs in. On every invocation it decides whether the
environment must be created from scratch, refreshed because a
requirements file changed, or left alone.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Choose a species:  foundry set species virtualenv
  2. Provision it:      foundry setup
  3. Re-run setup whenever requirements change; it only refreshes
     when something is actually stale.`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(nukeCmd)
	rootCmd.AddCommand(renewCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (" + Commit + ")"
	}
	return Version
}

// Execute runs the root command.
func Execute() {
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
