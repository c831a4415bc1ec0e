// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	setupCmd = newSetupCommand("setup", "Create or refresh the factory environment")

	// Language is fluid. Some people want to start with `init`.
	initCmd = newSetupCommand("init", "Alias for setup")
)

// newSetupCommand builds the setup command (and its init alias) with the
// shared flag surface.
func newSetupCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

On a directory that has never been provisioned this creates the base
environment and installs every requirements file. On later runs it
refreshes only when a requirements file is newer than the recorded
setup time, or when --refresh forces it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runSetup,
	}
	cmd.Flags().Bool("refresh", false, "refresh even when no requirements file changed")
	return cmd
}

func runSetup(cmd *cobra.Command, _ []string) error {
	forceRefresh, _ := cmd.Flags().GetBool("refresh")

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	p, err := newProvisioner(root, forceRefresh)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := p.Run(cmd.Context()); err != nil {
		explain(err)
		return err
	}

	if p.Provisioned() {
		fmt.Printf("%s setup took %.1f minutes\n",
			SuccessStyle.Render("[NOTE]"), time.Since(start).Minutes())
	}
	return nil
}
