// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"foundry-cli/internal/species"
)

// Builtin species kinds.
const (
	// KindVirtualenv provisions with virtualenv against system packages.
	KindVirtualenv species.Kind = "virtualenv"
	// KindVirtualenvSandbox is the virtualenv variant isolated from system
	// packages.
	KindVirtualenvSandbox species.Kind = "virtualenv_sandbox"
	// KindAnaconda provisions from a conda installer artifact.
	KindAnaconda species.Kind = "anaconda"
)

// DefaultRegistry assembles the builtin species registry: declarative
// metadata from the embedded table, hooks bound here by direct function
// reference.
func DefaultRegistry() (*species.Registry, error) {
	table, err := species.BuiltinTable()
	if err != nil {
		return nil, err
	}

	names := maps.Keys(table.Species)
	slices.Sort(names)

	base := make([]species.Species, 0, len(names))
	for _, name := range names {
		meta := table.Species[name]
		kind := species.Kind(name)

		hooks, err := builtinHooks(kind, meta)
		if err != nil {
			return nil, err
		}

		base = append(base, species.Species{
			Kind:              kind,
			DepFiles:          meta.DepFileGroups(),
			Hooks:             hooks,
			ActivationCommand: meta.Activate,
			SourceCommand:     meta.SourceCmd,
			Sandboxed:         meta.Sandboxed,
			LegacyRuntime:     meta.LegacyRuntime,
		})
	}

	overrideNames := maps.Keys(table.Overrides)
	slices.Sort(overrideNames)

	overrides := make([]species.Override, 0, len(overrideNames))
	for _, name := range overrideNames {
		meta := table.Overrides[name]
		o := species.Override{
			Kind:          species.Kind(name),
			Base:          species.Kind(meta.Base),
			Sandboxed:     meta.Sandboxed,
			LegacyRuntime: meta.LegacyRuntime,
		}
		// A sandboxed derivation of virtualenv substitutes its own kickstart
		// and inherits everything else from the base.
		if species.Kind(meta.Base) == KindVirtualenv && meta.Sandboxed != nil && *meta.Sandboxed {
			o.Kickstart = virtualenvKickstart(true)
		}
		overrides = append(overrides, o)
	}

	return species.NewRegistry(base, overrides)
}

// builtinHooks binds the hook implementations for a builtin kind.
func builtinHooks(kind species.Kind, meta species.Meta) (species.HookSet, error) {
	var hooks species.HookSet

	switch kind {
	case KindVirtualenv:
		hooks = species.HookSet{
			Kickstart: virtualenvKickstart(meta.Sandboxed),
			Refresh:   virtualenvRefresh,
		}
	case KindAnaconda:
		hooks = species.HookSet{
			Kickstart: condaKickstart,
			Refresh:   condaRefresh,
		}
	default:
		return species.HookSet{}, fmt.Errorf("no hooks bound for species %q", kind)
	}

	if meta.Welcome {
		hooks.Welcome = welcomeMessage
	}
	return hooks, nil
}
