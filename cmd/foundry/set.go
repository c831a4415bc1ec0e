// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foundry-cli/internal/envconf"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the factory state file",
	Long: `Set a value in the factory state file.

The keys the provisioner itself consumes:

  species     environment kind to provision (see 'foundry setup')
  installer   path to an installer archive, for species that need one

Other keys are stored untouched for the rest of the factory toolchain.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runSet,
}

func runSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	store := envconf.NewFileStore(root)
	rec, err := store.Read()
	if err != nil {
		return err
	}

	switch key {
	case "species":
		rec.Species = value
	case "installer":
		rec.Installer = value
	default:
		if rec.Extra == nil {
			rec.Extra = make(map[string]any)
		}
		rec.Extra[key] = value
	}

	if err := store.Write(rec); err != nil {
		return err
	}

	fmt.Println(SuccessStyle.Render(fmt.Sprintf("set %s = %s", key, value)))
	return nil
}
