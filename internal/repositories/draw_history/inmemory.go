package drawhistory

import (
	"context"
	"slices"
	"sync"
)

// InMemoryRepository keeps records for the life of the process
type InMemoryRepository struct {
	mu         sync.RWMutex
	records    []*Record
	maxRecords int
}

// NewInMemory creates an in-memory repository. maxRecords <= 0 uses the default.
func NewInMemory(maxRecords int) *InMemoryRepository {
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	return &InMemoryRepository{maxRecords: maxRecords}
}

var _ Repository = (*InMemoryRepository)(nil)

// Append stores a copy of the record
func (r *InMemoryRepository) Append(_ context.Context, input *AppendInput) (*AppendOutput, error) {
	if err := validateAppend(input); err != nil {
		return nil, err
	}

	record := *input.Record

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, &record)

	count := 0
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Kind != record.Kind {
			continue
		}
		count++
		if count > r.maxRecords {
			r.records = slices.Delete(r.records, i, i+1)
		}
	}

	return &AppendOutput{}, nil
}

// List returns copies of the newest records
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}
	kinds, err := kindsFor(input.Kind)
	if err != nil {
		return nil, err
	}
	limit := limitOrDefault(input.Limit, r.maxRecords*len(kinds))

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Record, 0, min(limit, len(r.records)))
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		if !slices.Contains(kinds, r.records[i].Kind) {
			continue
		}
		record := *r.records[i]
		out = append(out, &record)
	}

	return &ListOutput{Records: out}, nil
}

// Clear removes records of the selected kinds
func (r *InMemoryRepository) Clear(_ context.Context, input *ClearInput) (*ClearOutput, error) {
	if input == nil {
		input = &ClearInput{}
	}
	kinds, err := kindsFor(input.Kind)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.records)
	r.records = slices.DeleteFunc(r.records, func(rec *Record) bool {
		return slices.Contains(kinds, rec.Kind)
	})

	return &ClearOutput{Removed: before - len(r.records)}, nil
}
