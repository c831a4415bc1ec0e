// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"foundry-cli/internal/species"
)

// lookPath is indirected so tests can simulate missing system tools.
var lookPath = exec.LookPath

// Doc-toolchain packages the virtualenv refresh always upgrades, independent
// of the requirements files.
var virtualenvUpgrades = []string{
	"'Sphinx>=1.4.4'",
	"numpydoc",
	"sphinx-better-theme",
	"beautifulsoup4",
}

// virtualenvKickstart returns the kickstart hook for the virtualenv species.
// The sandboxed variant only differs in isolating the environment from
// system site packages; virtualenv itself tolerates re-running on an
// existing env directory, which keeps the hook idempotent.
func virtualenvKickstart(sandboxed bool) species.Hook {
	return func(ctx context.Context, env *species.HookEnv) error {
		if _, err := lookPath("virtualenv"); err != nil {
			return &MissingSystemDependencyError{
				Tool: "virtualenv",
				Hint: "the anaconda species provisions without it",
			}
		}

		opts := "--system-site-packages"
		if sandboxed {
			opts = "--no-site-packages"
		}
		cmd := fmt.Sprintf("virtualenv %s env", opts)
		return env.Exec.Run(ctx, cmd, filepath.Join(env.LogDir, "log-virtualenv"))
	}
}

// virtualenvRefresh installs every requirements file through pip inside the
// environment, then applies the unconditional doc-toolchain upgrades.
func virtualenvRefresh(ctx context.Context, env *species.HookEnv) error {
	for _, fn := range depFilesInOrder(env.Species) {
		cmd := fmt.Sprintf("%s && pip install -r %s", env.Species.SourceCommand, fn)
		logPath := filepath.Join(env.LogDir, "log-virtualenv-pip-"+filepath.Base(fn))
		if err := env.Exec.Run(ctx, cmd, logPath); err != nil {
			return err
		}
	}

	cmd := fmt.Sprintf("%s && pip install -U %s",
		env.Species.SourceCommand, strings.Join(virtualenvUpgrades, " "))
	return env.Exec.Run(ctx, cmd, filepath.Join(env.LogDir, "log-virtualenv-pip"))
}

// condaKickstart installs the conda distribution from the configured
// installer artifact. When the species requests the legacy runtime, the
// dedicated legacy environment is created here because the runtime choice
// must happen at creation time.
func condaKickstart(ctx context.Context, env *species.HookEnv) error {
	if env.Installer == "" {
		return &MissingInstallerArtifactError{}
	}

	installer, err := expandPath(env.Installer)
	if err != nil {
		return err
	}
	if _, err := os.Stat(installer); err != nil {
		return &MissingInstallerArtifactError{Path: installer}
	}

	cmd := fmt.Sprintf("bash %s -b -p %s", installer, filepath.Join(env.Root, "env"))
	if err := env.Exec.Run(ctx, cmd, filepath.Join(env.LogDir, "log-anaconda-install")); err != nil {
		return err
	}

	if env.Species.LegacyRuntime {
		cmd := env.Species.SourceCommand + " && conda create python=2 -y -n py2"
		if err := env.Exec.Run(ctx, cmd, filepath.Join(env.LogDir, "log-anaconda-legacy")); err != nil {
			return err
		}
	}
	return nil
}

// condaRefresh installs the conda-managed requirements first and the
// pip-managed ones second, each file into its own log.
func condaRefresh(ctx context.Context, env *species.HookEnv) error {
	source := env.Species.SourceCommand
	if env.Species.LegacyRuntime {
		source = "source env/envs/py2/bin/activate py2"
	}

	groups := maps.Keys(env.Species.DepFiles)
	slices.Sort(groups)

	for _, group := range groups {
		for _, fn := range env.Species.DepFiles[group] {
			var cmd string
			switch group {
			case "conda":
				cmd = fmt.Sprintf("%s && conda install -y --file %s", source, fn)
			default:
				cmd = fmt.Sprintf("%s && pip install -r %s", source, fn)
			}
			logPath := filepath.Join(env.LogDir, fmt.Sprintf("log-anaconda-%s-%s", group, filepath.Base(fn)))
			if err := env.Exec.Run(ctx, cmd, logPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// welcomeMessage reports which interpreter the freshly provisioned
// environment resolves to. Purely observational.
func welcomeMessage(_ context.Context, env *species.HookEnv) error {
	python, err := lookPath("python")
	if err != nil {
		python = "(no python on PATH)"
	}
	_, err = fmt.Fprintf(env.Stdout, "ENVIRONMENT: %s\n", python)
	return err
}

// depFilesInOrder flattens a species' dependency-file groups in sorted group
// order, so hook commands run deterministically.
func depFilesInOrder(sp species.Species) []string {
	groups := maps.Keys(sp.DepFiles)
	slices.Sort(groups)

	var files []string
	for _, group := range groups {
		files = append(files, sp.DepFiles[group]...)
	}
	return files
}

// expandPath resolves a leading ~ against the user's home directory and
// makes the path absolute.
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}
