package drawhistory

import (
	"context"
	"database/sql"
	_ "embed"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
)

//go:embed schema.sql
var schema string

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	Path       string
	MaxRecords int
}

// Validate ensures the database path is set
func (c *SQLiteConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", c.Path, vb)
	if c.MaxRecords < 0 {
		vb.Field("MaxRecords", "cannot be negative")
	}
	return vb.Build()
}

// SQLiteRepository stores history in a local SQLite database
type SQLiteRepository struct {
	db         *sql.DB
	maxRecords int
}

var _ Repository = (*SQLiteRepository)(nil)

// OpenSQLite opens the database and applies the schema
func OpenSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxRecords := cfg.MaxRecords
	if maxRecords == 0 {
		maxRecords = DefaultMaxRecords
	}

	dsn := filepath.Clean(strings.TrimSpace(cfg.Path)) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply schema")
	}

	return &SQLiteRepository{db: db, maxRecords: maxRecords}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Append inserts the record and prunes the oldest of its kind
func (r *SQLiteRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if err := validateAppend(input); err != nil {
		return nil, err
	}
	rec := input.Record

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO draw_history (id, kind, entry, mode, display_text, color, egg_applied, drawn_at, resolve_error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		string(rec.Kind),
		rec.Entry,
		string(rec.Mode),
		rec.DisplayText,
		string(rec.Color),
		rec.EggApplied,
		rec.DrawnAt.UTC().UnixNano(),
		rec.ResolveError,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, errors.AlreadyExists("record already exists").WithMeta("id", rec.ID)
		}
		return nil, errors.Wrap(err, "failed to insert record")
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM draw_history
		 WHERE kind = ? AND seq NOT IN (
		   SELECT seq FROM draw_history WHERE kind = ? ORDER BY seq DESC LIMIT ?
		 )`,
		string(rec.Kind), string(rec.Kind), r.maxRecords,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prune records")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to commit record")
	}
	return &AppendOutput{}, nil
}

// List returns the newest records in insertion order
func (r *SQLiteRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}
	kinds, err := kindsFor(input.Kind)
	if err != nil {
		return nil, err
	}
	limit := limitOrDefault(input.Limit, r.maxRecords*len(kinds))

	query := `SELECT id, kind, entry, mode, display_text, color, egg_applied, drawn_at, resolve_error
	          FROM draw_history`
	args := []any{}
	if len(kinds) == 1 {
		query += ` WHERE kind = ?`
		args = append(args, string(kinds[0]))
	}
	query += ` ORDER BY seq DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query records")
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var (
			rec               Record
			kind, mode, color string
			drawnAt           int64
		)
		if err := rows.Scan(&rec.ID, &kind, &rec.Entry, &mode, &rec.DisplayText, &color,
			&rec.EggApplied, &drawnAt, &rec.ResolveError); err != nil {
			return nil, errors.Wrap(err, "failed to scan record")
		}
		rec.Kind = entities.Kind(kind)
		rec.Mode = entities.Mode(mode)
		rec.Color = entities.Color(color)
		rec.DrawnAt = time.Unix(0, drawnAt).UTC()
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read records")
	}

	return &ListOutput{Records: records}, nil
}

// Clear deletes records of the selected kinds
func (r *SQLiteRepository) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	if input == nil {
		input = &ClearInput{}
	}
	kinds, err := kindsFor(input.Kind)
	if err != nil {
		return nil, err
	}

	removed := 0
	for _, kind := range kinds {
		result, err := r.db.ExecContext(ctx, `DELETE FROM draw_history WHERE kind = ?`, string(kind))
		if err != nil {
			return nil, errors.Wrap(err, "failed to clear records")
		}
		n, err := result.RowsAffected()
		if err != nil {
			return nil, errors.Wrap(err, "failed to count cleared records")
		}
		removed += int(n)
	}

	return &ClearOutput{Removed: removed}, nil
}
