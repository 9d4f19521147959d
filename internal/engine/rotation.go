package engine

import (
	"slices"

	"github.com/KirkDiggler/name-picker/internal/rng"
)

// rotationState is the remaining pool of one rotation cycle
type rotationState struct {
	pool []string
}

type rotationPick struct {
	entry     string
	discarded []string
	refilled  bool
}

// draw picks uniformly from the pool, discarding leave-listed picks, and
// only commits the new pool once an eligible entry was found.
func (r *rotationState) draw(roster []string, onLeave func(string) bool, src rng.Source) (*rotationPick, bool) {
	result := &rotationPick{}

	pool := slices.Clone(r.pool)
	if len(pool) == 0 {
		pool = slices.Clone(roster)
		result.refilled = true
	}

	if !slices.ContainsFunc(pool, notOn(onLeave)) {
		if result.refilled || !slices.ContainsFunc(roster, notOn(onLeave)) {
			return nil, false
		}
		// only leave-listed entries remain in this cycle
		result.discarded = append(result.discarded, pool...)
		pool = slices.Clone(roster)
		result.refilled = true
	}

	for {
		i := src.IntN(len(pool))
		picked := pool[i]
		pool = slices.Delete(pool, i, i+1)
		if onLeave(picked) {
			result.discarded = append(result.discarded, picked)
			continue
		}

		r.pool = pool
		result.entry = picked
		return result, true
	}
}

func (r *rotationState) reset() {
	r.pool = nil
}

func notOn(onLeave func(string) bool) func(string) bool {
	return func(entry string) bool {
		return !onLeave(entry)
	}
}
