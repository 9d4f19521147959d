package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/name-picker/internal/engine"
	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/rng"
	"github.com/KirkDiggler/name-picker/internal/testutils"
)

type EngineTestSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) newEngine(names, groups []string, mode entities.Mode, src rng.Source) engine.Engine {
	e, err := engine.New(&engine.Config{
		Names:        names,
		Groups:       groups,
		PersonalMode: mode,
		GroupMode:    mode,
		Source:       src,
	})
	s.Require().NoError(err)
	return e
}

func (s *EngineTestSuite) draw(e engine.Engine, kind entities.Kind) string {
	result, err := e.Draw(kind)
	s.Require().NoError(err)
	return result.Entry.ID
}

func (s *EngineTestSuite) TestConfigValidation() {
	testCases := []struct {
		name  string
		cfg   *engine.Config
		field string
	}{
		{
			name:  "missing source",
			cfg:   &engine.Config{Names: []string{"A"}},
			field: "Source",
		},
		{
			name:  "empty names",
			cfg:   &engine.Config{Source: rng.NewPCG(1)},
			field: "Names",
		},
		{
			name:  "duplicate groups",
			cfg:   &engine.Config{Names: []string{"A"}, Groups: []string{"G", "G"}, Source: rng.NewPCG(1)},
			field: "Groups",
		},
		{
			name:  "unknown mode",
			cfg:   &engine.Config{Names: []string{"A"}, PersonalMode: "shuffle", Source: rng.NewPCG(1)},
			field: "PersonalMode",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := engine.New(tc.cfg)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(errors.ValidationErrors(err), tc.field)
		})
	}
}

func (s *EngineTestSuite) TestRotationReturnsEachEntryOncePerCycle() {
	names := []string{"A", "B", "C", "D", "E"}
	e := s.newEngine(names, nil, entities.ModeRotation, rng.NewPCG(11))

	for cycle := 0; cycle < 3; cycle++ {
		seen := make([]string, 0, len(names))
		for i := 0; i < len(names); i++ {
			seen = append(seen, s.draw(e, entities.KindPersonal))
		}
		s.Assert().ElementsMatch(names, seen, "cycle %d", cycle)
	}
}

func (s *EngineTestSuite) TestRotationRefillsAfterExhaustion() {
	e := s.newEngine([]string{"A", "B"}, nil, entities.ModeRotation, rng.NewPCG(3))

	first, err := e.Draw(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().True(first.Refilled)

	second, err := e.Draw(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().False(second.Refilled)

	snap, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Empty(snap.Pool)

	third, err := e.Draw(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().True(third.Refilled)
}

func (s *EngineTestSuite) TestRotationNeverReturnsLeaveListedEntries() {
	e := s.newEngine([]string{"A", "B", "C"}, nil, entities.ModeRotation, rng.NewPCG(5))
	e.SetLeaveList([]string{"B"})

	for pair := 0; pair < 50; pair++ {
		first := s.draw(e, entities.KindPersonal)
		second := s.draw(e, entities.KindPersonal)
		s.Assert().ElementsMatch([]string{"A", "C"}, []string{first, second}, "pair %d", pair)
	}
}

func (s *EngineTestSuite) TestRotationDiscardsLeaveListedPick() {
	src := &testutils.ScriptedSource{Ints: []int{1, 0}}
	e := s.newEngine([]string{"A", "B", "C"}, nil, entities.ModeRotation, src)
	e.SetLeaveList([]string{"B"})

	result, err := e.Draw(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Equal("A", result.Entry.ID)
	s.Assert().Equal([]string{"B"}, result.Discarded)

	snap, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"C"}, snap.Pool, "discarded entries stay out of the pool for this cycle")
}

func (s *EngineTestSuite) TestRotationStartsNewCycleWhenOnlyLeaveListedEntriesRemain() {
	src := &testutils.ScriptedSource{Ints: []int{0, 0}}
	e := s.newEngine([]string{"A", "B"}, nil, entities.ModeRotation, src)

	s.Assert().Equal("A", s.draw(e, entities.KindPersonal))
	e.SetLeaveList([]string{"B"})

	result, err := e.Draw(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Equal("A", result.Entry.ID)
	s.Assert().True(result.Refilled)
	s.Assert().Equal([]string{"B"}, result.Discarded)
}

// The looping behavior of an all-on-leave rotation draw is replaced by an
// explicit error that leaves the pool untouched.
func (s *EngineTestSuite) TestRotationAllOnLeaveFailsWithoutConsuming() {
	e := s.newEngine([]string{"A", "B", "C"}, nil, entities.ModeRotation, rng.NewPCG(9))
	s.draw(e, entities.KindPersonal)

	before, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)

	e.SetLeaveList([]string{"A", "B", "C"})
	_, err = e.Draw(entities.KindPersonal)
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))
	s.Assert().Equal("no eligible entries", errors.GetMessage(err))
	s.Assert().Equal("personal", errors.GetMeta(err)[errors.MetaKind])

	after, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Equal(before.Pool, after.Pool)
	s.Assert().Equal(0, after.Eligible)
}

func (s *EngineTestSuite) TestRotationAllOnLeaveFromEmptyPool() {
	e := s.newEngine([]string{"A"}, nil, entities.ModeRotation, rng.NewPCG(9))
	e.SetLeaveList([]string{"A"})

	_, err := e.Draw(entities.KindPersonal)
	s.Assert().True(errors.IsResourceExhausted(err))

	snap, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Empty(snap.Pool)
}

func (s *EngineTestSuite) TestEmptyGroupRosterIsExhausted() {
	e := s.newEngine([]string{"A"}, nil, entities.ModeRotation, rng.NewPCG(1))

	_, err := e.Draw(entities.KindGroup)
	s.Assert().True(errors.IsResourceExhausted(err))
}

func (s *EngineTestSuite) TestWeightedDecayHalvesOnlyTheWinner() {
	src := &testutils.ScriptedSource{Floats: []float64{0.5}}
	e := s.newEngine([]string{"A", "B", "C"}, nil, entities.ModeWeighted, src)

	s.Assert().Equal("B", s.draw(e, entities.KindPersonal))

	snap, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Equal(map[string]float64{"A": 1.0, "B": 0.5, "C": 1.0}, snap.Weights)
	s.Assert().Equal("B", snap.LastSelected)
}

func (s *EngineTestSuite) TestWeightedCumulativeScanInRosterOrder() {
	src := &testutils.ScriptedSource{Floats: []float64{0.5, 0.5, 0.4}}
	e := s.newEngine([]string{"A", "B", "C"}, nil, entities.ModeWeighted, src)

	// total 3, target 1.5: A reaches 1, B reaches 2
	s.Assert().Equal("B", s.draw(e, entities.KindPersonal))
	// B suppressed, candidates A(1) C(1), target 1.0: A reaches it exactly
	s.Assert().Equal("A", s.draw(e, entities.KindPersonal))
	// A suppressed, candidates B(0.5) C(1), target 0.6
	s.Assert().Equal("C", s.draw(e, entities.KindPersonal))
}

func (s *EngineTestSuite) TestWeightedNeverRepeatsWithTwoOrMoreEligible() {
	e := s.newEngine([]string{"A", "B", "C", "D"}, nil, entities.ModeWeighted, rng.NewPCG(21))

	previous := s.draw(e, entities.KindPersonal)
	for i := 0; i < 200; i++ {
		current := s.draw(e, entities.KindPersonal)
		s.Require().NotEqual(previous, current, "draw %d", i)
		previous = current
	}
}

func (s *EngineTestSuite) TestWeightedTwoEntryScenario() {
	src := &testutils.ScriptedSource{Floats: []float64{0.25, 0.0}}
	e := s.newEngine([]string{"A", "B"}, nil, entities.ModeWeighted, src)

	s.Assert().Equal("A", s.draw(e, entities.KindPersonal))
	snap, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Equal(0.5, snap.Weights["A"])

	s.Assert().Equal("B", s.draw(e, entities.KindPersonal), "suppression forces the other entry")
}

func (s *EngineTestSuite) TestWeightedFirstDrawIsEvenlySplit() {
	e := s.newEngine([]string{"A", "B"}, nil, entities.ModeWeighted, rng.NewPCG(1234))

	countA := 0
	const trials = 4000
	for i := 0; i < trials; i++ {
		s.Require().NoError(e.Reset(entities.KindPersonal))
		if s.draw(e, entities.KindPersonal) == "A" {
			countA++
		}
	}

	s.Assert().InDelta(trials/2, countA, 200)
}

func (s *EngineTestSuite) TestWeightedSingleCandidateStillDecays() {
	e := s.newEngine([]string{"A", "B", "C"}, nil, entities.ModeWeighted, rng.NewPCG(2))
	e.SetLeaveList([]string{"A", "C"})

	for i := 1; i <= 3; i++ {
		s.Assert().Equal("B", s.draw(e, entities.KindPersonal))
	}

	snap, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Equal(0.125, snap.Weights["B"])
	s.Assert().Equal(1.0, snap.Weights["A"])
}

func (s *EngineTestSuite) TestWeightedSuppressionRelaxesWhenOthersGoOnLeave() {
	src := &testutils.ScriptedSource{Floats: []float64{0.0}}
	e := s.newEngine([]string{"A", "B"}, nil, entities.ModeWeighted, src)

	s.Assert().Equal("A", s.draw(e, entities.KindPersonal))
	e.SetLeaveList([]string{"B"})
	s.Assert().Equal("A", s.draw(e, entities.KindPersonal))
}

func (s *EngineTestSuite) TestWeightedAllOnLeaveFailsWithoutConsuming() {
	e := s.newEngine([]string{"A", "B"}, nil, entities.ModeWeighted, rng.NewPCG(2))
	s.draw(e, entities.KindPersonal)
	before, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)

	e.SetLeaveList([]string{"A", "B"})
	_, err = e.Draw(entities.KindPersonal)
	s.Assert().True(errors.IsResourceExhausted(err))

	after, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Equal(before.Weights, after.Weights)
	s.Assert().Equal(before.LastSelected, after.LastSelected)
}

func (s *EngineTestSuite) TestWeightsStayPositive() {
	e := s.newEngine([]string{"A"}, nil, entities.ModeWeighted, rng.NewPCG(2))

	for i := 0; i < 1200; i++ {
		s.draw(e, entities.KindPersonal)
	}

	snap, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Greater(snap.Weights["A"], 0.0)
}

func (s *EngineTestSuite) TestResetIsIdempotent() {
	s.Run("rotation", func() {
		e := s.newEngine([]string{"A", "B", "C"}, nil, entities.ModeRotation, rng.NewPCG(4))
		s.draw(e, entities.KindPersonal)

		s.Require().NoError(e.Reset(entities.KindPersonal))
		once, err := e.Snapshot(entities.KindPersonal)
		s.Require().NoError(err)
		s.Require().NoError(e.Reset(entities.KindPersonal))
		twice, err := e.Snapshot(entities.KindPersonal)
		s.Require().NoError(err)

		s.Assert().Empty(once.Pool)
		s.Assert().Equal(once, twice)
	})

	s.Run("weighted", func() {
		e := s.newEngine([]string{"A", "B", "C"}, nil, entities.ModeWeighted, rng.NewPCG(4))
		s.draw(e, entities.KindPersonal)
		s.draw(e, entities.KindPersonal)

		s.Require().NoError(e.Reset(entities.KindPersonal))
		once, err := e.Snapshot(entities.KindPersonal)
		s.Require().NoError(err)
		s.Require().NoError(e.Reset(entities.KindPersonal))
		twice, err := e.Snapshot(entities.KindPersonal)
		s.Require().NoError(err)

		s.Assert().Equal(map[string]float64{"A": 1, "B": 1, "C": 1}, once.Weights)
		s.Assert().Empty(once.LastSelected)
		s.Assert().Equal(once, twice)
	})
}

func (s *EngineTestSuite) TestResetOnlyTouchesTheActiveMode() {
	src := &testutils.ScriptedSource{Ints: []int{0}, Floats: []float64{0.0}}
	e := s.newEngine([]string{"A", "B"}, nil, entities.ModeRotation, src)

	s.draw(e, entities.KindPersonal)
	s.Require().NoError(e.SetMode(entities.KindPersonal, entities.ModeWeighted))
	s.draw(e, entities.KindPersonal)
	s.Require().NoError(e.Reset(entities.KindPersonal))

	snap, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Equal(map[string]float64{"A": 1, "B": 1}, snap.Weights)
	s.Assert().Equal([]string{"B"}, snap.Pool, "rotation pool survives a weighted reset")
}

func (s *EngineTestSuite) TestModeSwitchPreservesState() {
	src := &testutils.ScriptedSource{Ints: []int{0, 0}, Floats: []float64{0.0}}
	e := s.newEngine([]string{"A", "B", "C"}, nil, entities.ModeRotation, src)

	s.Assert().Equal("A", s.draw(e, entities.KindPersonal))

	s.Require().NoError(e.SetMode(entities.KindPersonal, entities.ModeWeighted))
	s.Assert().Equal(entities.ModeWeighted, e.Mode(entities.KindPersonal))
	s.Assert().Equal("A", s.draw(e, entities.KindPersonal))

	s.Require().NoError(e.SetMode(entities.KindPersonal, entities.ModeRotation))
	s.Assert().Equal("B", s.draw(e, entities.KindPersonal), "rotation resumes its old pool")

	s.Require().NoError(e.SetMode(entities.KindPersonal, entities.ModeWeighted))
	snap, err := e.Snapshot(entities.KindPersonal)
	s.Require().NoError(err)
	s.Assert().Equal(0.5, snap.Weights["A"])
	s.Assert().Equal("A", snap.LastSelected)
	s.Assert().Equal(entities.ModeRotation, e.Mode(entities.KindGroup), "modes are per roster")
}

func (s *EngineTestSuite) TestSetModeRejectsUnknownValues() {
	e := s.newEngine([]string{"A"}, nil, entities.ModeRotation, rng.NewPCG(1))

	s.Assert().True(errors.IsInvalidArgument(e.SetMode(entities.KindPersonal, "shuffle")))
	s.Assert().True(errors.IsInvalidArgument(e.SetMode("teams", entities.ModeWeighted)))

	_, err := e.Draw("teams")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestSetLeaveListNormalizes() {
	e := s.newEngine([]string{"A", "B"}, []string{"G1"}, entities.ModeRotation, rng.NewPCG(1))

	unknown := e.SetLeaveList([]string{" A ", "", "G1", "A", "Zed", "   "})

	s.Assert().Equal([]string{"A", "G1", "Zed"}, e.LeaveList())
	s.Assert().Equal([]string{"Zed"}, unknown)

	e.SetLeaveList(nil)
	s.Assert().Empty(e.LeaveList())
}

func (s *EngineTestSuite) TestLeaveListAppliesToGroups() {
	e := s.newEngine([]string{"A"}, []string{"G1", "G2"}, entities.ModeRotation, rng.NewPCG(8))
	e.SetLeaveList([]string{"G1"})

	for i := 0; i < 10; i++ {
		s.Assert().Equal("G2", s.draw(e, entities.KindGroup))
	}
}

func (s *EngineTestSuite) TestLookup() {
	e := s.newEngine([]string{"A"}, []string{"G1"}, entities.ModeRotation, rng.NewPCG(1))

	entry, ok := e.Lookup("G1")
	s.Require().True(ok)
	s.Assert().Equal(entities.KindGroup, entry.Kind)
	s.Assert().Equal("group", entry.GetType())

	_, ok = e.Lookup("nobody")
	s.Assert().False(ok)
}

func (s *EngineTestSuite) TestReseed() {
	s.Run("reseedable source", func() {
		a := s.newEngine([]string{"A", "B", "C", "D"}, nil, entities.ModeRotation, rng.NewPCG(1))
		b := s.newEngine([]string{"A", "B", "C", "D"}, nil, entities.ModeRotation, rng.NewPCG(2))

		s.Assert().True(a.Reseed(77))
		s.Assert().True(b.Reseed(77))
		for i := 0; i < 8; i++ {
			s.Assert().Equal(s.draw(a, entities.KindPersonal), s.draw(b, entities.KindPersonal))
		}
	})

	s.Run("fixed source", func() {
		e := s.newEngine([]string{"A"}, nil, entities.ModeRotation, &testutils.ScriptedSource{})
		s.Assert().False(e.Reseed(1))
	})
}
