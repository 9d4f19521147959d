package picker

import (
	"time"

	"github.com/KirkDiggler/name-picker/internal/entities"
	drawhistory "github.com/KirkDiggler/name-picker/internal/repositories/draw_history"
)

// DrawInput selects the roster to draw from
type DrawInput struct {
	Kind entities.Kind
}

// DrawOutput describes a committed draw
type DrawOutput struct {
	Entry        *entities.Entry
	Mode         entities.Mode
	Presentation *entities.Presentation

	// Discarded lists leave-listed entries removed from the rotation pool
	Discarded []string
	// Refilled is set when the rotation pool started a new cycle
	Refilled bool

	RecordID string
}

// PreviewInput names an entry to resolve without drawing
type PreviewInput struct {
	ID       string
	Announce bool
}

// PreviewOutput holds the presentation the entry would get
type PreviewOutput struct {
	Entry        *entities.Entry
	Presentation *entities.Presentation
}

// ResetInput selects the roster to reset
type ResetInput struct {
	Kind entities.Kind
}

// ResetOutput reports which mode's state was cleared
type ResetOutput struct {
	Mode entities.Mode
}

// SetModeInput switches a roster's mode. An empty Mode toggles.
type SetModeInput struct {
	Kind entities.Kind
	Mode entities.Mode
}

// SetModeOutput reports the active mode
type SetModeOutput struct {
	Mode entities.Mode
}

// SetLeaveListInput replaces the leave list
type SetLeaveListInput struct {
	Entries []string
}

// SetLeaveListOutput returns the normalized list and the entries found in no roster
type SetLeaveListOutput struct {
	Entries []string
	Unknown []string
}

// GetLeaveListInput is the request for GetLeaveList
type GetLeaveListInput struct{}

// GetLeaveListOutput holds the current leave list
type GetLeaveListOutput struct {
	Entries []string
}

// SetEggsEnabledInput flips the global egg toggle
type SetEggsEnabledInput struct {
	Enabled bool
}

// SetEggsEnabledOutput reports the toggle
type SetEggsEnabledOutput struct {
	Enabled bool
}

// SetVoiceEnabledInput flips speech synthesis
type SetVoiceEnabledInput struct {
	Enabled bool
}

// SetVoiceEnabledOutput reports whether speech is on. It stays off once
// speech has been disabled for the session.
type SetVoiceEnabledOutput struct {
	Enabled bool
}

// ReseedInput optionally fixes the seed for a reproducible session
type ReseedInput struct {
	Seed *uint64
}

// ReseedOutput reports the applied seed
type ReseedOutput struct {
	Seed    uint64
	Applied bool
}

// ReloadInput is the request for Reload
type ReloadInput struct{}

// ReloadOutput summarizes the reloaded rosters
type ReloadOutput struct {
	Names  int
	Groups int
}

// GetStatusInput is the request for GetStatus
type GetStatusInput struct{}

// GetStatusOutput wraps the status snapshot
type GetStatusOutput struct {
	Status *Status
}

// RosterStatus is the draw state of one roster
type RosterStatus struct {
	Kind         entities.Kind
	Mode         entities.Mode
	Size         int
	Eligible     int
	PoolSize     int
	Weights      map[string]float64
	LastSelected string
}

// Status is a point in time view of the picker
type Status struct {
	ConfigPath   string
	EggsEnabled  bool
	VoiceEnabled bool
	AutoClose    bool
	SeedRefresh  time.Duration
	ReseededAt   time.Time
	LeaveList    []string
	Rosters      []*RosterStatus
}

// ListHistoryInput selects history records
type ListHistoryInput struct {
	Kind  entities.Kind
	Limit int
}

// ListHistoryOutput holds records newest first
type ListHistoryOutput struct {
	Records []*drawhistory.Record
}

// ClearHistoryInput selects history to remove
type ClearHistoryInput struct {
	Kind entities.Kind
}

// ClearHistoryOutput reports removed records
type ClearHistoryOutput struct {
	Removed int
}
