package engine

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/rng"
)

const errNoEligible = "no eligible entries"

// Config holds the rosters and policy an engine is built from
type Config struct {
	Names        []string
	Groups       []string
	PersonalMode entities.Mode
	GroupMode    entities.Mode
	Source       rng.Source
}

// Validate ensures the engine can be built
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Source == nil {
		vb.RequiredField("Source")
	}
	if len(cfg.Names) == 0 {
		vb.Field("Names", "must contain at least one entry")
	}
	errors.ValidateUnique("Names", cfg.Names, vb)
	errors.ValidateUnique("Groups", cfg.Groups, vb)
	if cfg.PersonalMode != "" && !cfg.PersonalMode.Valid() {
		vb.Fieldf("PersonalMode", "unknown mode %q", cfg.PersonalMode)
	}
	if cfg.GroupMode != "" && !cfg.GroupMode.Valid() {
		vb.Fieldf("GroupMode", "unknown mode %q", cfg.GroupMode)
	}

	return vb.Build()
}

// roster is one drawable list with the state of both modes
type roster struct {
	kind     entities.Kind
	entries  []string
	mode     entities.Mode
	rotation rotationState
	weighted weightState
}

type engine struct {
	rosters map[entities.Kind]*roster
	leave   map[string]struct{}
	order   []string
	source  rng.Source
}

// New creates an engine with fresh state for both rosters
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &engine{
		rosters: map[entities.Kind]*roster{
			entities.KindPersonal: newRoster(entities.KindPersonal, cfg.Names, cfg.PersonalMode),
			entities.KindGroup:    newRoster(entities.KindGroup, cfg.Groups, cfg.GroupMode),
		},
		leave:  make(map[string]struct{}),
		source: cfg.Source,
	}, nil
}

func newRoster(kind entities.Kind, entries []string, mode entities.Mode) *roster {
	if mode == "" {
		mode = entities.ModeRotation
	}
	return &roster{
		kind:     kind,
		entries:  slices.Clone(entries),
		mode:     mode,
		weighted: newWeightState(entries),
	}
}

func (e *engine) roster(kind entities.Kind) (*roster, error) {
	r, ok := e.rosters[kind]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown roster kind %q", kind)
	}
	return r, nil
}

func (e *engine) onLeave(entry string) bool {
	_, ok := e.leave[entry]
	return ok
}

// Draw selects one entry from the roster using its configured mode
func (e *engine) Draw(kind entities.Kind) (*DrawResult, error) {
	r, err := e.roster(kind)
	if err != nil {
		return nil, err
	}

	result := &DrawResult{Mode: r.mode}

	var picked string
	var ok bool
	switch r.mode {
	case entities.ModeWeighted:
		picked, ok = r.weighted.draw(r.entries, e.onLeave, e.source)
	default:
		var pick *rotationPick
		pick, ok = r.rotation.draw(r.entries, e.onLeave, e.source)
		if ok {
			picked = pick.entry
			result.Discarded = pick.discarded
			result.Refilled = pick.refilled
		}
	}
	if !ok {
		return nil, errors.ResourceExhausted(errNoEligible).
			WithMeta(errors.MetaKind, string(kind))
	}

	result.Entry = &entities.Entry{ID: picked, Kind: kind}
	return result, nil
}

// Reset clears the state of the roster's active mode
func (e *engine) Reset(kind entities.Kind) error {
	r, err := e.roster(kind)
	if err != nil {
		return err
	}

	switch r.mode {
	case entities.ModeWeighted:
		r.weighted.reset(r.entries)
	default:
		r.rotation.reset()
	}
	return nil
}

// SetMode switches the roster's mode without touching either state
func (e *engine) SetMode(kind entities.Kind, mode entities.Mode) error {
	if !mode.Valid() {
		return errors.InvalidArgumentf("unknown mode %q", mode)
	}
	r, err := e.roster(kind)
	if err != nil {
		return err
	}

	r.mode = mode
	return nil
}

// Mode returns the roster's mode, rotation for unknown kinds
func (e *engine) Mode(kind entities.Kind) entities.Mode {
	if r, ok := e.rosters[kind]; ok {
		return r.mode
	}
	return entities.ModeRotation
}

// SetLeaveList replaces the leave list. Entries are trimmed, blanks and
// duplicates are dropped, first occurrence order is kept.
func (e *engine) SetLeaveList(entries []string) []string {
	e.leave = make(map[string]struct{}, len(entries))
	e.order = e.order[:0]

	var unknown []string
	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		if _, dup := e.leave[entry]; dup {
			continue
		}
		e.leave[entry] = struct{}{}
		e.order = append(e.order, entry)
		if _, found := e.Lookup(entry); !found {
			unknown = append(unknown, entry)
		}
	}
	return unknown
}

// LeaveList returns the leave list in the order it was set
func (e *engine) LeaveList() []string {
	return slices.Clone(e.order)
}

// Lookup finds an identifier in the personal roster, then the group roster
func (e *engine) Lookup(id string) (*entities.Entry, bool) {
	for _, kind := range entities.Kinds {
		if slices.Contains(e.rosters[kind].entries, id) {
			return &entities.Entry{ID: id, Kind: kind}, true
		}
	}
	return nil, false
}

// Snapshot returns a copy of the roster's draw state
func (e *engine) Snapshot(kind entities.Kind) (*Snapshot, error) {
	r, err := e.roster(kind)
	if err != nil {
		return nil, err
	}

	eligible := 0
	for _, entry := range r.entries {
		if !e.onLeave(entry) {
			eligible++
		}
	}

	return &Snapshot{
		Kind:         kind,
		Mode:         r.mode,
		Roster:       slices.Clone(r.entries),
		Pool:         slices.Clone(r.rotation.pool),
		Weights:      r.weighted.snapshot(),
		LastSelected: r.weighted.last,
		Eligible:     eligible,
	}, nil
}

// Reseed replaces the entropy source state
func (e *engine) Reseed(seed uint64) bool {
	reseeder, ok := e.source.(rng.Reseeder)
	if !ok {
		return false
	}
	reseeder.Reseed(seed)
	return true
}
