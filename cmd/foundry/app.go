// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"foundry-cli/internal/envconf"
	"foundry-cli/internal/issue"
	"foundry-cli/internal/provision"
	"foundry-cli/internal/shell"
	"foundry-cli/internal/species"
)

// newProvisioner wires a Provisioner for the current working directory.
func newProvisioner(root string, forceRefresh bool) (*provision.Provisioner, error) {
	registry, err := provision.DefaultRegistry()
	if err != nil {
		return nil, err
	}

	store := envconf.NewFileStore(root)
	executor := shell.NewPosixExecutor(root)

	return provision.New(store, registry, executor, root,
		provision.WithForceRefresh(forceRefresh),
	), nil
}

// explain prints the remediation message for a known failure condition to
// stderr. Unknown errors are left for the standard error path.
func explain(err error) {
	var (
		unknownSpecies   *species.UnknownSpeciesError
		missingTool      *provision.MissingSystemDependencyError
		missingInstaller *provision.MissingInstallerArtifactError
		commandFailed    *shell.CommandExecutionError
	)

	var rendered string
	var renderErr error

	switch {
	case errors.As(err, &unknownSpecies):
		kinds := issue.BulletList(unknownSpecies.Available)
		if unknownSpecies.Kind == "" {
			rendered, renderErr = issue.ById(issue.FirstRunId).Render(kinds)
		} else {
			rendered, renderErr = issue.ById(issue.UnknownSpeciesId).Render(string(unknownSpecies.Kind), kinds)
		}
	case errors.As(err, &missingTool):
		rendered, renderErr = issue.ById(issue.MissingToolId).Render(missingTool.Tool, missingTool.Hint)
	case errors.As(err, &missingInstaller):
		detail := ""
		if missingInstaller.Path != "" {
			detail = " at " + missingInstaller.Path
		}
		rendered, renderErr = issue.ById(issue.MissingInstallerId).Render(detail)
	case errors.As(err, &commandFailed):
		rendered, renderErr = issue.ById(issue.CommandFailedId).Render(commandFailed.LogPath)
	default:
		return
	}

	if renderErr != nil {
		// Fall back to the raw error text; the caller still gets err itself.
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		return
	}
	fmt.Fprintln(os.Stderr, rendered)
}
