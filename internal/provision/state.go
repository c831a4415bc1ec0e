// SPDX-License-Identifier: MPL-2.0

package provision

// State is the life-cycle state of the environment as observed by one run.
type State int

const (
	// Uninitialized means no registration has ever completed.
	Uninitialized State = iota
	// Kickstarted means the base environment was created during this run but
	// the unconditional first refresh has not completed yet.
	Kickstarted
	// Refreshing means a refresh is in flight.
	Refreshing
	// Ready means the environment is registered and up to date.
	Ready
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Kickstarted:
		return "kickstarted"
	case Refreshing:
		return "refreshing"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}
