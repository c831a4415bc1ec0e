// SPDX-License-Identifier: MPL-2.0

package species

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var (
	// ErrUnknownSpecies is the sentinel error wrapped by UnknownSpeciesError.
	ErrUnknownSpecies = errors.New("unknown species")
	// ErrInvalidRegistry is returned when a registry is constructed from an
	// inconsistent species table.
	ErrInvalidRegistry = errors.New("invalid species registry")
)

// UnknownSpeciesError is returned by Registry.Lookup when the requested kind
// is empty or not present in the table. It carries the kinds that are
// available so callers can present them to the user.
type UnknownSpeciesError struct {
	Kind      Kind
	Available []Kind
}

// Error implements the error interface.
func (e *UnknownSpeciesError) Error() string {
	if e.Kind == "" {
		return "no species configured"
	}
	return fmt.Sprintf("unknown species %q", e.Kind)
}

// Unwrap returns ErrUnknownSpecies for use with errors.Is.
func (e *UnknownSpeciesError) Unwrap() error { return ErrUnknownSpecies }

// Registry is the immutable lookup table of species. It is populated once at
// startup and shared read-only across provisioner runs.
type Registry struct {
	base      map[Kind]Species
	overrides map[Kind]Override
}

// NewRegistry builds a registry from base species and overrides. Every
// override must reference an existing base species, kinds must be unique
// across both sets, and every base species must carry kickstart and refresh
// hooks.
func NewRegistry(base []Species, overrides []Override) (*Registry, error) {
	r := &Registry{
		base:      make(map[Kind]Species, len(base)),
		overrides: make(map[Kind]Override, len(overrides)),
	}

	for _, s := range base {
		if s.Kind == "" {
			return nil, fmt.Errorf("%w: species with empty kind", ErrInvalidRegistry)
		}
		if _, dup := r.base[s.Kind]; dup {
			return nil, fmt.Errorf("%w: duplicate species %q", ErrInvalidRegistry, s.Kind)
		}
		if s.Hooks.Kickstart == nil || s.Hooks.Refresh == nil {
			return nil, fmt.Errorf("%w: species %q is missing kickstart or refresh", ErrInvalidRegistry, s.Kind)
		}
		r.base[s.Kind] = s.clone()
	}

	for _, o := range overrides {
		if o.Kind == "" {
			return nil, fmt.Errorf("%w: override with empty kind", ErrInvalidRegistry)
		}
		if _, dup := r.base[o.Kind]; dup {
			return nil, fmt.Errorf("%w: override %q collides with a base species", ErrInvalidRegistry, o.Kind)
		}
		if _, dup := r.overrides[o.Kind]; dup {
			return nil, fmt.Errorf("%w: duplicate override %q", ErrInvalidRegistry, o.Kind)
		}
		if _, ok := r.base[o.Base]; !ok {
			return nil, fmt.Errorf("%w: override %q references unknown base %q", ErrInvalidRegistry, o.Kind, o.Base)
		}
		r.overrides[o.Kind] = o
	}

	return r, nil
}

// Lookup resolves kind to a fully-resolved species. Derived species are
// resolved here, at lookup time: the base species' field set is taken as-is
// and only explicitly overridden fields are replaced.
func (r *Registry) Lookup(kind Kind) (Species, error) {
	if kind == "" {
		return Species{}, &UnknownSpeciesError{Available: r.Kinds()}
	}
	if s, ok := r.base[kind]; ok {
		return s.clone(), nil
	}
	if o, ok := r.overrides[kind]; ok {
		return o.resolve(r.base[o.Base]), nil
	}
	return Species{}, &UnknownSpeciesError{Kind: kind, Available: r.Kinds()}
}

// Kinds returns every registered kind, base and derived, sorted.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.base)+len(r.overrides))
	for k := range r.base {
		kinds = append(kinds, k)
	}
	for k := range r.overrides {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
