package engine

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/name-picker/internal/rng"
)

// weightState holds the decaying weights of one roster
type weightState struct {
	weights map[string]float64
	last    string
	hasLast bool
}

func newWeightState(roster []string) weightState {
	w := weightState{}
	w.reset(roster)
	return w
}

func (w *weightState) reset(roster []string) {
	w.weights = make(map[string]float64, len(roster))
	for _, entry := range roster {
		w.weights[entry] = baseWeight
	}
	w.last = ""
	w.hasLast = false
}

// draw picks proportionally to weight among eligible entries, skipping the
// previous winner when another candidate exists, then halves the winner.
func (w *weightState) draw(roster []string, onLeave func(string) bool, src rng.Source) (string, bool) {
	valid := slices.DeleteFunc(slices.Clone(roster), onLeave)
	if len(valid) == 0 {
		return "", false
	}

	picked := valid[0]
	if len(valid) > 1 {
		candidates := valid
		if w.hasLast {
			without := slices.DeleteFunc(slices.Clone(valid), func(entry string) bool {
				return entry == w.last
			})
			if len(without) > 0 {
				candidates = without
			}
		}
		picked = w.pick(candidates, src)
	}

	// halving a subnormal can reach zero; weights stay strictly positive
	if next := w.weights[picked] / 2; next > 0 {
		w.weights[picked] = next
	}
	w.last = picked
	w.hasLast = true
	return picked, true
}

// pick scans cumulative weights in roster order against u*total
func (w *weightState) pick(candidates []string, src rng.Source) string {
	total := 0.0
	for _, entry := range candidates {
		total += w.weights[entry]
	}

	target := src.Float64() * total
	cumulative := 0.0
	for _, entry := range candidates {
		cumulative += w.weights[entry]
		if cumulative >= target {
			return entry
		}
	}
	return candidates[len(candidates)-1]
}

func (w *weightState) snapshot() map[string]float64 {
	return maps.Clone(w.weights)
}
