package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Kind identifies which roster a draw works on
type Kind string

const (
	KindPersonal Kind = "personal"
	KindGroup    Kind = "group"
)

// Kinds lists every roster kind in display order
var Kinds = []Kind{KindPersonal, KindGroup}

// Valid reports whether k is a known roster kind
func (k Kind) Valid() bool {
	return k == KindPersonal || k == KindGroup
}

// String returns the wire name of the kind
func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts the wire names plus the "name"/"names"/"groups" aliases used by older configs
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "personal", "name", "names":
		return KindPersonal, true
	case "group", "groups":
		return KindGroup, true
	default:
		return "", false
	}
}

// Mode is the selection policy configured for a roster
type Mode string

const (
	// ModeRotation draws without replacement until the pool is empty
	ModeRotation Mode = "rotation"
	// ModeWeighted draws with replacement, halving the weight of each winner
	ModeWeighted Mode = "weighted"
)

// Modes lists every supported mode
var Modes = []string{string(ModeRotation), string(ModeWeighted)}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m == ModeRotation || m == ModeWeighted
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == ModeWeighted {
		return ModeRotation
	}
	return ModeWeighted
}

// String returns the wire name of the mode
func (m Mode) String() string {
	return string(m)
}

// Entry is a single roster member
type Entry struct {
	ID   string
	Kind Kind
}

// GetID returns the roster identifier
func (e *Entry) GetID() string {
	return e.ID
}

// GetType returns the roster kind the entry belongs to
func (e *Entry) GetType() string {
	return string(e.Kind)
}

var _ core.Entity = (*Entry)(nil)
