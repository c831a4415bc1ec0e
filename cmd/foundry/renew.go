// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"foundry-cli/internal/envconf"
	"foundry-cli/internal/provision"
	"foundry-cli/internal/species"
)

// renewWorkflows maps a species to the state seeded before its test setup
// runs. Species absent from this table have no test workflow.
var renewWorkflows = map[species.Kind]func(rec *envconf.Record){
	provision.KindVirtualenv: func(_ *envconf.Record) {},
	provision.KindAnaconda: func(rec *envconf.Record) {
		rec.Installer = "~/libs/Anaconda3-4.2.0-Linux-x86_64.sh"
	},
}

var renewCmd = &cobra.Command{
	Use:   "renew <species>",
	Short: "Erase and rebuild the environment with a named species",
	Long: `Erase and rebuild the environment with a named species.

This is a test workflow: it nukes the current environment, reconfigures
the given species and runs a full setup. Asks twice unless --sure is
given. Only species with a defined test workflow are accepted.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runRenew,
}

func init() {
	renewCmd.Flags().Bool("sure", false, "skip the confirmation prompts")
}

func runRenew(cmd *cobra.Command, args []string) error {
	kind := species.Kind(args[0])

	seed, ok := renewWorkflows[kind]
	if !ok {
		return fmt.Errorf("no test workflow for species %q", kind)
	}

	sure, _ := cmd.Flags().GetBool("sure")
	if !sure && !confirmAll(os.Stdin,
		"renew is a test workflow that deletes the current environment. okay", "confirm") {
		fmt.Println(SubtitleStyle.Render("aborted"))
		return nil
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	if err := nukeEnvironment(root); err != nil {
		return err
	}

	store := envconf.NewFileStore(root)
	rec, err := store.Read()
	if err != nil {
		return err
	}
	rec.Species = string(kind)
	seed(&rec)
	if err := store.Write(rec); err != nil {
		return err
	}

	p, err := newProvisioner(root, false)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := p.Run(cmd.Context()); err != nil {
		explain(err)
		return err
	}

	fmt.Printf("%s renew took %.1f minutes\n",
		SuccessStyle.Render("[NOTE]"), time.Since(start).Minutes())
	return nil
}
