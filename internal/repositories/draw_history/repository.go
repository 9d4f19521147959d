// Package drawhistory stores a log of completed draws
package drawhistory

import (
	"context"
	"time"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=drawhistorymock github.com/KirkDiggler/name-picker/internal/repositories/draw_history Repository

const (
	// DefaultMaxRecords is the per-kind retention when none is configured
	DefaultMaxRecords = 500

	errRecordNil   = "record cannot be nil"
	errIDEmpty     = "record ID cannot be empty"
	errInvalidKind = "record kind is invalid"
	errEntryEmpty  = "record entry cannot be empty"
)

// Record is one draw as it was shown
type Record struct {
	ID          string         `json:"id"`
	Kind        entities.Kind  `json:"kind"`
	Entry       string         `json:"entry"`
	Mode        entities.Mode  `json:"mode"`
	DisplayText string         `json:"display_text"`
	Color       entities.Color `json:"color"`
	EggApplied  bool           `json:"egg_applied"`
	DrawnAt     time.Time      `json:"drawn_at"`

	// ResolveError is set when the draw committed but presentation failed
	ResolveError string `json:"resolve_error,omitempty"`
}

// AppendInput contains the record to store
type AppendInput struct {
	Record *Record
}

// AppendOutput is returned by Append
type AppendOutput struct{}

// ListInput selects records. An empty Kind lists every kind.
type ListInput struct {
	Kind  entities.Kind
	Limit int
}

// ListOutput holds records newest first
type ListOutput struct {
	Records []*Record
}

// ClearInput selects what to remove. An empty Kind clears every kind.
type ClearInput struct {
	Kind entities.Kind
}

// ClearOutput reports how many records were removed
type ClearOutput struct {
	Removed int
}

// Repository persists draw records
type Repository interface {
	// Append stores a record, dropping the oldest of its kind beyond the
	// retention limit
	Append(ctx context.Context, input *AppendInput) (*AppendOutput, error)

	// List returns records newest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Clear removes records
	Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error)
}

func validateAppend(input *AppendInput) error {
	if input == nil || input.Record == nil {
		return errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	if !input.Record.Kind.Valid() {
		return errors.InvalidArgument(errInvalidKind).WithMeta(errors.MetaKind, string(input.Record.Kind))
	}
	if input.Record.Entry == "" {
		return errors.InvalidArgument(errEntryEmpty)
	}
	return nil
}

// kindsFor expands an optional kind filter
func kindsFor(kind entities.Kind) ([]entities.Kind, error) {
	if kind == "" {
		return entities.Kinds, nil
	}
	if !kind.Valid() {
		return nil, errors.InvalidArgument(errInvalidKind).WithMeta(errors.MetaKind, string(kind))
	}
	return []entities.Kind{kind}, nil
}

func limitOrDefault(limit, maxRecords int) int {
	if limit <= 0 || limit > maxRecords {
		return maxRecords
	}
	return limit
}
