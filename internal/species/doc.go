// SPDX-License-Identifier: MPL-2.0

// Package species defines the environment back-ends the factory can be
// provisioned with.
//
// A Species bundles everything the provisioner needs to know about one
// back-end: the dependency-file groups whose modification times gate a
// refresh, the kickstart/refresh/welcome hooks, and the activation command
// recorded for the caller. Species compose: a derived species is a base
// species with individual fields overridden, resolved once at lookup time.
//
// The Registry is populated at startup and never mutated afterwards; it is
// safe to share across provisioner instances.
package species
