// SPDX-License-Identifier: MPL-2.0

package species

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func noopHook(_ context.Context, _ *HookEnv) error { return nil }

func testSpecies(kind Kind) Species {
	return Species{
		Kind: kind,
		DepFiles: map[GroupName][]string{
			"base": {"reqs.txt"},
		},
		Hooks: HookSet{
			Kickstart: noopHook,
			Refresh:   noopHook,
		},
		ActivationCommand: "env/bin/activate",
		SourceCommand:     "source env/bin/activate",
	}
}

func TestRegistry_Lookup_Base(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry([]Species{testSpecies("alpha")}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	sp, err := r.Lookup("alpha")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if sp.Kind != "alpha" {
		t.Errorf("Kind = %q, want %q", sp.Kind, "alpha")
	}
	if sp.ActivationCommand != "env/bin/activate" {
		t.Errorf("ActivationCommand = %q", sp.ActivationCommand)
	}
}

func TestRegistry_Lookup_UnknownKind(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry([]Species{testSpecies("alpha")}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	_, err = r.Lookup("beta")
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Fatalf("Lookup(beta) error = %v, want ErrUnknownSpecies", err)
	}

	var unknown *UnknownSpeciesError
	if !errors.As(err, &unknown) {
		t.Fatalf("error is not *UnknownSpeciesError: %v", err)
	}
	if unknown.Kind != "beta" {
		t.Errorf("Kind = %q, want %q", unknown.Kind, "beta")
	}
	if len(unknown.Available) != 1 || unknown.Available[0] != "alpha" {
		t.Errorf("Available = %v, want [alpha]", unknown.Available)
	}
}

func TestRegistry_Lookup_EmptyKind(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry([]Species{testSpecies("alpha")}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	_, err = r.Lookup("")
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Fatalf("Lookup(\"\") error = %v, want ErrUnknownSpecies", err)
	}
}

func TestRegistry_Lookup_OverrideSubstitutesOnlyExplicitFields(t *testing.T) {
	t.Parallel()

	var baseKickstart, derivedKickstart, baseRefresh Hook
	baseKickstart = noopHook
	derivedKickstart = func(_ context.Context, _ *HookEnv) error { return nil }
	baseRefresh = func(_ context.Context, _ *HookEnv) error { return nil }

	base := testSpecies("alpha")
	base.Hooks.Kickstart = baseKickstart
	base.Hooks.Refresh = baseRefresh

	sandboxed := true
	r, err := NewRegistry([]Species{base}, []Override{{
		Kind:      "alpha_sandbox",
		Base:      "alpha",
		Kickstart: derivedKickstart,
		Sandboxed: &sandboxed,
	}})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	sp, err := r.Lookup("alpha_sandbox")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if sp.Kind != "alpha_sandbox" {
		t.Errorf("Kind = %q, want %q", sp.Kind, "alpha_sandbox")
	}
	if !sp.Sandboxed {
		t.Error("Sandboxed = false, want true")
	}
	// The kickstart is substituted; the refresh is inherited verbatim.
	if reflect.ValueOf(sp.Hooks.Kickstart).Pointer() != reflect.ValueOf(derivedKickstart).Pointer() {
		t.Error("Kickstart was not substituted by the override")
	}
	if reflect.ValueOf(sp.Hooks.Refresh).Pointer() != reflect.ValueOf(baseRefresh).Pointer() {
		t.Error("Refresh was not inherited from the base")
	}
	// Unset fields are inherited.
	if sp.ActivationCommand != base.ActivationCommand {
		t.Errorf("ActivationCommand = %q, want %q", sp.ActivationCommand, base.ActivationCommand)
	}
	if got := sp.DepFiles["base"]; len(got) != 1 || got[0] != "reqs.txt" {
		t.Errorf("DepFiles[base] = %v, want [reqs.txt]", got)
	}
}

func TestRegistry_Lookup_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry([]Species{testSpecies("alpha")}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	first, _ := r.Lookup("alpha")
	first.DepFiles["base"] = append(first.DepFiles["base"], "injected.txt")

	second, _ := r.Lookup("alpha")
	if len(second.DepFiles["base"]) != 1 {
		t.Errorf("registry species mutated through a lookup snapshot: %v", second.DepFiles["base"])
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	t.Parallel()

	missingHooks := testSpecies("alpha")
	missingHooks.Hooks.Refresh = nil

	tests := []struct {
		name      string
		base      []Species
		overrides []Override
	}{
		{name: "empty kind", base: []Species{testSpecies("")}},
		{name: "duplicate kind", base: []Species{testSpecies("alpha"), testSpecies("alpha")}},
		{name: "missing hooks", base: []Species{missingHooks}},
		{
			name:      "override unknown base",
			base:      []Species{testSpecies("alpha")},
			overrides: []Override{{Kind: "derived", Base: "ghost"}},
		},
		{
			name:      "override collides with base",
			base:      []Species{testSpecies("alpha")},
			overrides: []Override{{Kind: "alpha", Base: "alpha"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewRegistry(tt.base, tt.overrides); !errors.Is(err, ErrInvalidRegistry) {
				t.Errorf("NewRegistry error = %v, want ErrInvalidRegistry", err)
			}
		})
	}
}

func TestRegistry_Kinds_Sorted(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(
		[]Species{testSpecies("zeta"), testSpecies("alpha")},
		[]Override{{Kind: "mid", Base: "alpha"}},
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	kinds := r.Kinds()
	want := []Kind{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Kinds() = %v, want %v", kinds, want)
	}
}
