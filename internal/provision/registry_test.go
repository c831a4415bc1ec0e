// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"reflect"
	"testing"

	"foundry-cli/internal/species"
)

func TestDefaultRegistry_Kinds(t *testing.T) {
	t.Parallel()

	r, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}

	want := []species.Kind{KindAnaconda, KindVirtualenv, KindVirtualenvSandbox}
	if got := r.Kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
}

func TestDefaultRegistry_SandboxDerivation(t *testing.T) {
	t.Parallel()

	r, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}

	base, err := r.Lookup(KindVirtualenv)
	if err != nil {
		t.Fatalf("Lookup(virtualenv): %v", err)
	}
	derived, err := r.Lookup(KindVirtualenvSandbox)
	if err != nil {
		t.Fatalf("Lookup(virtualenv_sandbox): %v", err)
	}

	if !derived.Sandboxed {
		t.Error("sandbox variant is not sandboxed")
	}
	if base.Sandboxed {
		t.Error("base virtualenv must not be sandboxed")
	}

	// The derivation substitutes its own kickstart and inherits the refresh.
	if reflect.ValueOf(derived.Hooks.Kickstart).Pointer() == reflect.ValueOf(base.Hooks.Kickstart).Pointer() {
		t.Error("sandbox variant shares the base kickstart")
	}
	if reflect.ValueOf(derived.Hooks.Refresh).Pointer() != reflect.ValueOf(base.Hooks.Refresh).Pointer() {
		t.Error("sandbox variant does not inherit the base refresh")
	}

	if !reflect.DeepEqual(derived.DepFiles, base.DepFiles) {
		t.Errorf("sandbox DepFiles = %v, want base %v", derived.DepFiles, base.DepFiles)
	}
	if derived.ActivationCommand != base.ActivationCommand {
		t.Errorf("sandbox ActivationCommand = %q, want %q", derived.ActivationCommand, base.ActivationCommand)
	}
}

func TestDefaultRegistry_AnacondaShape(t *testing.T) {
	t.Parallel()

	r, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}

	conda, err := r.Lookup(KindAnaconda)
	if err != nil {
		t.Fatalf("Lookup(anaconda): %v", err)
	}

	if !conda.LegacyRuntime {
		t.Error("anaconda should request the legacy runtime")
	}
	if len(conda.DepFiles) != 2 {
		t.Errorf("anaconda DepFiles groups = %d, want 2", len(conda.DepFiles))
	}
	if conda.Hooks.Welcome == nil {
		t.Error("anaconda should have a welcome hook")
	}
}
