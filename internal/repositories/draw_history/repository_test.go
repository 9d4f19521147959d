package drawhistory_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	drawhistory "github.com/KirkDiggler/name-picker/internal/repositories/draw_history"
	"github.com/KirkDiggler/name-picker/internal/testutils"
)

const testMaxRecords = 3

// RepositoryTestSuite runs the same behavior checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() drawhistory.Repository
	repo    drawhistory.Repository
	ctx     context.Context
	start   time.Time
	seq     int
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() drawhistory.Repository { return drawhistory.NewInMemory(testMaxRecords) },
	})
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() drawhistory.Repository {
		client, _ := testutils.CreateTestRedisClient(s.T())
		repo, err := drawhistory.NewRedis(&drawhistory.RedisConfig{
			Client:     client,
			MaxRecords: testMaxRecords,
		})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func TestSQLiteRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() drawhistory.Repository {
		repo, err := drawhistory.OpenSQLite(&drawhistory.SQLiteConfig{
			Path:       filepath.Join(s.T().TempDir(), "history.db"),
			MaxRecords: testMaxRecords,
		})
		s.Require().NoError(err)
		s.T().Cleanup(func() { _ = repo.Close() })
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.start = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.seq = 0
	s.repo = s.newRepo()
}

func (s *RepositoryTestSuite) record(kind entities.Kind, entry string) *drawhistory.Record {
	s.seq++
	return &drawhistory.Record{
		ID:          fmt.Sprintf("draw_%d", s.seq),
		Kind:        kind,
		Entry:       entry,
		Mode:        entities.ModeRotation,
		DisplayText: entry,
		Color:       entities.ColorBlack,
		DrawnAt:     s.start.Add(time.Duration(s.seq) * time.Second),
	}
}

func (s *RepositoryTestSuite) append(records ...*drawhistory.Record) {
	for _, rec := range records {
		_, err := s.repo.Append(s.ctx, &drawhistory.AppendInput{Record: rec})
		s.Require().NoError(err)
	}
}

func (s *RepositoryTestSuite) entries(kind entities.Kind, limit int) []string {
	out, err := s.repo.List(s.ctx, &drawhistory.ListInput{Kind: kind, Limit: limit})
	s.Require().NoError(err)

	entries := make([]string, len(out.Records))
	for i, rec := range out.Records {
		entries[i] = rec.Entry
	}
	return entries
}

func (s *RepositoryTestSuite) TestListNewestFirst() {
	s.append(
		s.record(entities.KindPersonal, "Alice"),
		s.record(entities.KindPersonal, "Bob"),
	)

	s.Assert().Equal([]string{"Bob", "Alice"}, s.entries(entities.KindPersonal, 0))
}

func (s *RepositoryTestSuite) TestRoundTripKeepsFields() {
	rec := s.record(entities.KindGroup, "Red Team")
	rec.Mode = entities.ModeWeighted
	rec.DisplayText = "The Reds"
	rec.Color = entities.ColorRed
	rec.EggApplied = true
	rec.ResolveError = "missing image asset"
	s.append(rec)

	out, err := s.repo.List(s.ctx, &drawhistory.ListInput{Kind: entities.KindGroup})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 1)

	got := out.Records[0]
	s.Assert().Equal(rec.ID, got.ID)
	s.Assert().Equal(rec.Kind, got.Kind)
	s.Assert().Equal(rec.Mode, got.Mode)
	s.Assert().Equal(rec.DisplayText, got.DisplayText)
	s.Assert().Equal(rec.Color, got.Color)
	s.Assert().True(got.EggApplied)
	s.Assert().Equal(rec.ResolveError, got.ResolveError)
	s.Assert().True(rec.DrawnAt.Equal(got.DrawnAt))
}

func (s *RepositoryTestSuite) TestRetentionPerKind() {
	s.append(
		s.record(entities.KindPersonal, "A"),
		s.record(entities.KindGroup, "G"),
		s.record(entities.KindPersonal, "B"),
		s.record(entities.KindPersonal, "C"),
		s.record(entities.KindPersonal, "D"),
	)

	s.Assert().Equal([]string{"D", "C", "B"}, s.entries(entities.KindPersonal, 0))
	s.Assert().Equal([]string{"G"}, s.entries(entities.KindGroup, 0))
}

func (s *RepositoryTestSuite) TestListLimitAndAllKinds() {
	s.append(
		s.record(entities.KindPersonal, "A"),
		s.record(entities.KindGroup, "G"),
		s.record(entities.KindPersonal, "B"),
	)

	s.Assert().Equal([]string{"B"}, s.entries(entities.KindPersonal, 1))
	s.Assert().Equal([]string{"B", "G", "A"}, s.entries("", 0))
	s.Assert().Equal([]string{"B", "G"}, s.entries("", 2))
}

func (s *RepositoryTestSuite) TestClear() {
	s.append(
		s.record(entities.KindPersonal, "A"),
		s.record(entities.KindPersonal, "B"),
		s.record(entities.KindGroup, "G"),
	)

	out, err := s.repo.Clear(s.ctx, &drawhistory.ClearInput{Kind: entities.KindPersonal})
	s.Require().NoError(err)
	s.Assert().Equal(2, out.Removed)
	s.Assert().Empty(s.entries(entities.KindPersonal, 0))
	s.Assert().Equal([]string{"G"}, s.entries(entities.KindGroup, 0))

	out, err = s.repo.Clear(s.ctx, &drawhistory.ClearInput{})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Removed)
	s.Assert().Empty(s.entries("", 0))
}

func (s *RepositoryTestSuite) TestAppendValidation() {
	valid := s.record(entities.KindPersonal, "A")

	testCases := []struct {
		name  string
		input *drawhistory.AppendInput
	}{
		{"nil input", nil},
		{"nil record", &drawhistory.AppendInput{}},
		{"missing id", &drawhistory.AppendInput{Record: &drawhistory.Record{Kind: valid.Kind, Entry: "A"}}},
		{"bad kind", &drawhistory.AppendInput{Record: &drawhistory.Record{ID: "x", Kind: "teams", Entry: "A"}}},
		{"missing entry", &drawhistory.AppendInput{Record: &drawhistory.Record{ID: "x", Kind: valid.Kind}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Append(s.ctx, tc.input)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryTestSuite) TestUnknownKindFilter() {
	_, err := s.repo.List(s.ctx, &drawhistory.ListInput{Kind: "teams"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Clear(s.ctx, &drawhistory.ClearInput{Kind: "teams"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func TestRedisConfigValidation(t *testing.T) {
	_, err := drawhistory.NewRedis(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	_, err = drawhistory.NewRedis(&drawhistory.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestSQLiteConfigValidation(t *testing.T) {
	_, err := drawhistory.OpenSQLite(&drawhistory.SQLiteConfig{Path: "  "})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
