// SPDX-License-Identifier: MPL-2.0

package species

import (
	"context"
	"io"

	"golang.org/x/exp/maps"

	"foundry-cli/internal/shell"
)

type (
	// Kind identifies an environment back-end (e.g. "virtualenv").
	Kind string

	// GroupName names one dependency-file group within a species. Groups
	// exist so a species can track multiple installer inputs separately
	// (e.g. conda files vs. pip files); staleness is still all-or-nothing
	// across all groups.
	GroupName string

	// Hook is a provisioning operation bound to a species. Hooks are invoked
	// by direct function reference, never looked up by name.
	Hook func(ctx context.Context, env *HookEnv) error

	// HookSet holds the operations a species supports. Kickstart and Refresh
	// are required; Welcome may be nil.
	HookSet struct {
		// Kickstart creates the base environment. It must tolerate being
		// re-run on a directory where a previous attempt partially completed.
		Kickstart Hook
		// Refresh re-synchronizes installed packages against the current
		// dependency files.
		Refresh Hook
		// Welcome is an optional, purely observational hook invoked after
		// the environment reaches its ready state.
		Welcome Hook
	}

	// HookEnv carries the collaborators and resolved context a hook needs.
	// The provisioner builds one HookEnv per run and passes it to every hook.
	HookEnv struct {
		// Root is the working directory being provisioned.
		Root string
		// LogDir is where hook command logs are written.
		LogDir string
		// Exec runs external commands on behalf of the hook.
		Exec shell.Executor
		// Species is the fully-resolved species for this run.
		Species Species
		// Installer is the path to an installer artifact, when the species
		// needs one (empty otherwise).
		Installer string
		// Stdout receives observational hook output.
		Stdout io.Writer
	}

	// Species is one fully-resolved environment back-end. Values returned by
	// Registry.Lookup are snapshots; mutating one never affects the registry.
	Species struct {
		// Kind is the identifier the species was looked up under.
		Kind Kind
		// DepFiles maps group names to the file paths whose modification
		// times gate a refresh.
		DepFiles map[GroupName][]string
		// Hooks are the provisioning operations for this species.
		Hooks HookSet
		// ActivationCommand is recorded on successful registration so the
		// caller knows how to enter the environment.
		ActivationCommand string
		// SourceCommand is the shell prefix hooks use to run commands inside
		// the environment.
		SourceCommand string
		// Sandboxed isolates the environment from system site packages.
		Sandboxed bool
		// LegacyRuntime requests the alternate (legacy) language runtime at
		// environment-creation time.
		LegacyRuntime bool
	}

	// Override derives a new species from a base one. Zero-valued fields are
	// inherited from the base verbatim; only explicitly set fields replace it.
	Override struct {
		// Kind is the identifier of the derived species.
		Kind Kind
		// Base is the species the override starts from.
		Base Kind
		// Kickstart, Refresh and Welcome replace the base hooks when non-nil.
		Kickstart Hook
		Refresh   Hook
		Welcome   Hook
		// DepFiles replaces the base dependency-file groups when non-nil.
		DepFiles map[GroupName][]string
		// ActivationCommand and SourceCommand replace the base values when
		// non-nil.
		ActivationCommand *string
		SourceCommand     *string
		// Sandboxed and LegacyRuntime replace the base flags when non-nil.
		Sandboxed     *bool
		LegacyRuntime *bool
	}
)

// clone returns a copy of the species with its own DepFiles map, so lookups
// hand out independent snapshots.
func (s Species) clone() Species {
	out := s
	out.DepFiles = maps.Clone(s.DepFiles)
	return out
}

// resolve applies the override on top of the base species.
func (o Override) resolve(base Species) Species {
	out := base.clone()
	out.Kind = o.Kind
	if o.Kickstart != nil {
		out.Hooks.Kickstart = o.Kickstart
	}
	if o.Refresh != nil {
		out.Hooks.Refresh = o.Refresh
	}
	if o.Welcome != nil {
		out.Hooks.Welcome = o.Welcome
	}
	if o.DepFiles != nil {
		out.DepFiles = maps.Clone(o.DepFiles)
	}
	if o.ActivationCommand != nil {
		out.ActivationCommand = *o.ActivationCommand
	}
	if o.SourceCommand != nil {
		out.SourceCommand = *o.SourceCommand
	}
	if o.Sandboxed != nil {
		out.Sandboxed = *o.Sandboxed
	}
	if o.LegacyRuntime != nil {
		out.LegacyRuntime = *o.LegacyRuntime
	}
	return out
}
