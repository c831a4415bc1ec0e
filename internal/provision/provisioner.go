// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"foundry-cli/internal/envconf"
	"foundry-cli/internal/shell"
	"foundry-cli/internal/species"
)

type (
	// Provisioner runs the environment life-cycle state machine for one
	// working directory. It is single-use: construct, Run once, discard.
	Provisioner struct {
		store    envconf.Store
		registry *species.Registry
		exec     shell.Executor
		root     string

		forceRefresh bool
		clock        func() time.Time
		stdout       io.Writer

		state       State
		provisioned bool
	}

	// Option configures a Provisioner.
	Option func(*Provisioner)
)

// WithForceRefresh makes Run execute the refresh hook even when no
// dependency file is newer than the stored setup stamp.
func WithForceRefresh(force bool) Option {
	return func(p *Provisioner) {
		p.forceRefresh = force
	}
}

// WithClock overrides the clock used for registration stamps.
func WithClock(clock func() time.Time) Option {
	return func(p *Provisioner) {
		p.clock = clock
	}
}

// WithStdout redirects observational hook output.
func WithStdout(w io.Writer) Option {
	return func(p *Provisioner) {
		p.stdout = w
	}
}

// New creates a Provisioner for the working directory root. The registry is
// shared and read-only; the store and executor are owned by this run.
func New(store envconf.Store, registry *species.Registry, exec shell.Executor, root string, opts ...Option) *Provisioner {
	p := &Provisioner{
		store:    store,
		registry: registry,
		exec:     exec,
		root:     root,
		clock:    time.Now,
		stdout:   os.Stdout,
		state:    Uninitialized,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the life-cycle state the last Run reached.
func (p *Provisioner) State() State { return p.state }

// Provisioned reports whether the last Run actually executed hooks and
// registered, as opposed to finding the environment already fresh.
func (p *Provisioner) Provisioned() bool { return p.provisioned }

// Run executes one provisioning pass:
//
//  1. Ensure the scaffold directories exist and load the environment record.
//     An unconfigured species aborts with UnknownSpeciesError before any
//     hook runs.
//  2. Resolve the species.
//  3. Never registered: kickstart, then unconditionally refresh, then
//     register. Kickstart must fully succeed before refresh is attempted.
//  4. Registered: refresh and re-register only when stale or forced.
//  5. Run the welcome hook, if the species defines one, after the
//     environment is ready.
//
// Any error aborts immediately; persisted state changes only in
// registration, so a re-run after a failure redoes exactly the steps that
// did not complete.
func (p *Provisioner) Run(ctx context.Context) error {
	if err := EnsureScaffold(p.root); err != nil {
		return err
	}

	rec, err := loadRecord(p.store)
	if err != nil {
		return err
	}

	sp, err := p.registry.Lookup(rec.Species)
	if err != nil {
		return err
	}

	env := &species.HookEnv{
		Root:      p.root,
		LogDir:    filepath.Join(p.root, LogDirName),
		Exec:      p.exec,
		Species:   sp,
		Installer: rec.Installer,
		Stdout:    p.stdout,
	}

	if rec.SetupStamp.IsZero() {
		log.Debug("first run, kickstarting environment", "species", sp.Kind)
		if err := sp.Hooks.Kickstart(ctx, env); err != nil {
			return err
		}
		p.state = Kickstarted

		if err := p.refreshAndRegister(ctx, &rec, sp, env); err != nil {
			return err
		}
	} else {
		stale, err := p.stale(sp, rec.SetupStamp)
		if err != nil {
			return err
		}

		if stale || p.forceRefresh {
			log.Debug("refreshing environment", "species", sp.Kind, "stale", stale, "forced", p.forceRefresh)
			if err := p.refreshAndRegister(ctx, &rec, sp, env); err != nil {
				return err
			}
		}
	}

	p.state = Ready

	if sp.Hooks.Welcome != nil {
		if err := sp.Hooks.Welcome(ctx, env); err != nil {
			return err
		}
	}

	return nil
}

// refreshAndRegister runs the refresh hook and, only when it succeeds,
// registers the outcome.
func (p *Provisioner) refreshAndRegister(ctx context.Context, rec *EnvironmentRecord, sp species.Species, env *species.HookEnv) error {
	p.state = Refreshing
	if err := sp.Hooks.Refresh(ctx, env); err != nil {
		return err
	}
	if err := p.register(rec, sp); err != nil {
		return err
	}
	p.provisioned = true
	return nil
}

// stale reports whether any dependency file in any group has a modification
// time newer than stamp. Both sides are compared as Unix seconds, the
// representation registration persists. A refresh triggered here is always a
// full refresh; there is no per-group refresh.
func (p *Provisioner) stale(sp species.Species, stamp time.Time) (bool, error) {
	for _, files := range sp.DepFiles {
		for _, fn := range files {
			info, err := os.Stat(filepath.Join(p.root, fn))
			if err != nil {
				return false, fmt.Errorf("failed to stat dependency file %s: %w", fn, err)
			}
			if info.ModTime().Unix() > stamp.Unix() {
				return true, nil
			}
		}
	}
	return false, nil
}

// register records a fully successful run: it stamps the record with the
// current clock value, stores the species' activation command and persists
// the record. This is the sole point that mutates persisted state.
func (p *Provisioner) register(rec *EnvironmentRecord, sp species.Species) error {
	stamp := p.clock()
	// Stamps strictly increase across registrations even when two runs land
	// in the same clock second.
	if !rec.SetupStamp.IsZero() && !stamp.After(rec.SetupStamp) {
		stamp = rec.SetupStamp.Add(time.Second)
	}

	rec.SetupStamp = stamp
	rec.ActivationCommand = sp.ActivationCommand

	if err := p.store.Write(rec.storeForm()); err != nil {
		return err
	}

	log.Debug("registered environment", "species", sp.Kind, "stamp", stamp.Unix())
	return nil
}
