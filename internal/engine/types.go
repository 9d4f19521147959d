package engine

import (
	"github.com/KirkDiggler/name-picker/internal/entities"
)

// baseWeight is the weight every entry starts with and returns to on reset
const baseWeight = 1.0

// DrawResult is the outcome of a successful draw
type DrawResult struct {
	Entry *entities.Entry
	Mode  entities.Mode

	// Discarded lists leave-listed entries removed from the rotation pool on the way
	Discarded []string

	// Refilled is set when the draw started a new rotation cycle
	Refilled bool
}

// Snapshot is a point-in-time copy of one roster's draw state
type Snapshot struct {
	Kind   entities.Kind
	Mode   entities.Mode
	Roster []string

	// Pool is the remaining rotation pool; empty means the next draw refills
	Pool []string

	Weights      map[string]float64
	LastSelected string

	// Eligible counts roster entries not on the leave list
	Eligible int
}
