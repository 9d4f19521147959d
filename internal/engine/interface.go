// Package engine implements the roster draw engine: rotation and weighted
// selection over the personal and group rosters, honoring the leave list.
package engine

import (
	"github.com/KirkDiggler/name-picker/internal/entities"
)

// Engine owns all draw state for one loaded configuration.
//
// Implementations are not safe for concurrent use. Callers serialize access,
// normally by running every call on the dispatch loop.
type Engine interface {
	// Draw selects one entry from the roster using its configured mode.
	// Returns a ResourceExhausted error, without touching any state, when
	// every entry is on the leave list.
	Draw(kind entities.Kind) (*DrawResult, error)

	// Reset clears the state of the roster's active mode
	Reset(kind entities.Kind) error

	// SetMode switches the roster's mode; the state of both modes is kept
	SetMode(kind entities.Kind, mode entities.Mode) error
	Mode(kind entities.Kind) entities.Mode

	// SetLeaveList replaces the leave list and returns the entries that are
	// not members of either roster
	SetLeaveList(entries []string) (unknown []string)
	LeaveList() []string

	// Lookup finds an identifier in the personal roster, then the group roster
	Lookup(id string) (*entities.Entry, bool)

	// Snapshot returns a copy of the roster's draw state
	Snapshot(kind entities.Kind) (*Snapshot, error)

	// Reseed replaces the entropy source state; false when the source cannot be reseeded
	Reseed(seed uint64) bool
}
