// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"foundry-cli/internal/envconf"
)

// nukeDirs are the directories a nuke erases. The connections directory is
// deliberately absent: you might nuke and reconnect.
var nukeDirs = []string{"env", "logs", "calc", "data", "pack", "site"}

var yesPattern = regexp.MustCompile(`^(y|Y)`)

var nukeCmd = &cobra.Command{
	Use:   "nuke",
	Short: "Erase the environment and reset its record",
	Long: `Erase the environment and reset its record.

Deletes the environment, data and log directories and clears the
configured species and setup time, so the next setup starts from
scratch. Connections are kept. Asks twice unless --sure is given.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runNuke,
}

func init() {
	nukeCmd.Flags().Bool("sure", false, "skip the confirmation prompts")
}

func runNuke(cmd *cobra.Command, _ []string) error {
	sure, _ := cmd.Flags().GetBool("sure")
	if !sure && !confirmAll(os.Stdin, "okay to nuke everything", "confirm") {
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

	fmt.Println(SuccessStyle.Render("environment erased"))
	return nil
}

// nukeEnvironment removes the environment directories and clears the
// provisioning fields of the record, preserving everything else in the
// state file.
func nukeEnvironment(root string) error {
	for _, dir := range nukeDirs {
		if err := os.RemoveAll(filepath.Join(root, dir)); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
	}

	store := envconf.NewFileStore(root)
	rec, err := store.Read()
	if err != nil {
		return err
	}
	rec.Species = ""
	rec.SetupStamp = 0
	rec.ActivateEnv = ""
	return store.Write(rec)
}

// confirmAll asks each question in turn and returns true only when every
// answer starts with y or Y.
func confirmAll(in io.Reader, questions ...string) bool {
	reader := bufio.NewReader(in)
	for _, q := range questions {
		fmt.Printf("%s %s (y/N)? ", WarningStyle.Render("[QUESTION]"), q)
		answer, err := reader.ReadString('\n')
		if err != nil || !yesPattern.MatchString(answer) {
			return false
		}
	}
	return true
}
