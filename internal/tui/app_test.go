package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
	pickermock "github.com/KirkDiggler/name-picker/internal/orchestrators/picker/mock"
)

const (
	testResultTimeout = 3 * time.Second
	testIdleTimeout   = 5 * time.Second
)

type scheduledTick struct {
	after time.Duration
	fire  func(time.Time) tea.Msg
}

type AppTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *pickermock.MockService
	app         *App
	ticks       []scheduledTick
	quit        bool
	status      *picker.Status
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = pickermock.NewMockService(s.ctrl)
	s.ticks = nil
	s.quit = false
	s.status = &picker.Status{
		AutoClose:   true,
		EggsEnabled: true,
		LeaveList:   []string{"Carol"},
		Rosters: []*picker.RosterStatus{
			{Kind: entities.KindPersonal, Mode: entities.ModeRotation, Size: 3, Eligible: 2, PoolSize: 3},
			{Kind: entities.KindGroup, Mode: entities.ModeWeighted, Size: 2, Eligible: 2},
		},
	}
	s.mockService.EXPECT().
		GetStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *picker.GetStatusInput) (*picker.GetStatusOutput, error) {
			return &picker.GetStatusOutput{Status: s.status}, nil
		}).
		AnyTimes()

	app, err := New(&Config{
		PickerService: s.mockService,
		AutoClose:     true,
		ResultTimeout: testResultTimeout,
		IdleTimeout:   testIdleTimeout,
		Tick: func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
			s.ticks = append(s.ticks, scheduledTick{after: d, fire: fn})
			return nil
		},
	})
	s.Require().NoError(err)
	s.app = app
	s.run(s.app.Init())
}

func (s *AppTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AppTestSuite) send(msg tea.Msg) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.quit = true
		return
	}
	model, cmd := s.app.Update(msg)
	s.app = model.(*App)
	s.run(cmd)
}

func (s *AppTestSuite) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			s.run(c)
		}
	default:
		s.send(msg)
	}
}

func (s *AppTestSuite) press(keys string) {
	s.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
}

func (s *AppTestSuite) pressType(t tea.KeyType) {
	s.send(tea.KeyMsg{Type: t})
}

// fireLast delivers the newest tick scheduled for d
func (s *AppTestSuite) fireLast(d time.Duration) {
	for i := len(s.ticks) - 1; i >= 0; i-- {
		if s.ticks[i].after == d {
			s.send(s.ticks[i].fire(time.Now()))
			return
		}
	}
	s.Fail("no tick scheduled", "duration %s", d)
}

func (s *AppTestSuite) fireAll(d time.Duration) {
	ticks := append([]scheduledTick(nil), s.ticks...)
	for _, t := range ticks {
		if t.after == d {
			s.send(t.fire(time.Now()))
		}
	}
}

func (s *AppTestSuite) expectDraw(kind entities.Kind, id string, color entities.Color) {
	s.mockService.EXPECT().
		Draw(gomock.Any(), &picker.DrawInput{Kind: kind}).
		Return(&picker.DrawOutput{
			Entry: &entities.Entry{ID: id, Kind: kind},
			Mode:  entities.ModeRotation,
			Presentation: &entities.Presentation{
				Entry:       id,
				Kind:        kind,
				DisplayText: id,
				Color:       color,
				SpokenText:  id,
			},
		}, nil)
}

func (s *AppTestSuite) TestNewRequiresService() {
	_, err := New(&Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *AppTestSuite) TestInitLoadsStatus() {
	s.Require().NotNil(s.app.status)
	s.Contains(s.app.View(), "names: rotation 2/3")
	s.Contains(s.app.View(), "away: Carol")
}

func (s *AppTestSuite) TestDrawShowsResult() {
	s.expectDraw(entities.KindPersonal, "Alice", entities.ColorBlack)

	s.press("n")

	s.Equal(screenResult, s.app.screen)
	s.Require().NotNil(s.app.result)
	s.Equal("Alice", s.app.result.presentation.DisplayText)
	s.Contains(s.app.View(), "Alice")
}

func (s *AppTestSuite) TestResultClosesAfterTimeout() {
	s.expectDraw(entities.KindGroup, "Red Team", entities.ColorRed)

	s.press("g")
	s.Require().Equal(screenResult, s.app.screen)

	s.fireLast(testResultTimeout)
	s.Equal(screenMain, s.app.screen)
	s.Nil(s.app.result)
}

func (s *AppTestSuite) TestUserActionCancelsAutoClose() {
	s.expectDraw(entities.KindPersonal, "Alice", entities.ColorBlack)

	s.press("n")
	s.Require().Equal(screenResult, s.app.screen)

	s.press("?")
	s.fireAll(testResultTimeout)
	s.Equal(screenResult, s.app.screen)
}

func (s *AppTestSuite) TestNewDrawRestartsAutoClose() {
	s.expectDraw(entities.KindPersonal, "Alice", entities.ColorBlack)
	s.expectDraw(entities.KindPersonal, "Bob", entities.ColorBlack)

	s.press("n")
	s.press("n")
	s.Equal("Bob", s.app.result.presentation.DisplayText)

	s.fireLast(testResultTimeout)
	s.Equal(screenMain, s.app.screen)
}

func (s *AppTestSuite) TestAutoCloseDisabled() {
	s.status.AutoClose = false
	s.run(s.app.fetchStatus())
	s.expectDraw(entities.KindPersonal, "Alice", entities.ColorBlack)

	before := len(s.ticks)
	s.press("n")

	for _, t := range s.ticks[before:] {
		s.NotEqual(testResultTimeout, t.after)
	}
	s.Equal(screenResult, s.app.screen)
}

func (s *AppTestSuite) TestDismissKeys() {
	testCases := []struct {
		name string
		key  tea.KeyType
	}{
		{name: "escape", key: tea.KeyEsc},
		{name: "space", key: tea.KeySpace},
		{name: "enter", key: tea.KeyEnter},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectDraw(entities.KindPersonal, "Alice", entities.ColorBlack)
			s.press("n")
			s.Require().Equal(screenResult, s.app.screen)

			s.pressType(tc.key)
			s.Equal(screenMain, s.app.screen)
		})
	}
}

func (s *AppTestSuite) TestIdleDimsUntilNextKey() {
	s.fireLast(testIdleTimeout)
	s.True(s.app.idle)

	s.press("?")
	s.False(s.app.idle)

	// the tick armed before the key press is stale
	s.send(idleMsg{seq: s.app.idleSeq - 1})
	s.False(s.app.idle)
}

func (s *AppTestSuite) TestExhaustedRosterShowsNotice() {
	s.mockService.EXPECT().
		Draw(gomock.Any(), gomock.Any()).
		Return(nil, errors.ResourceExhausted("every entry is on the leave list"))

	s.press("g")

	s.Equal(screenMain, s.app.screen)
	s.Contains(s.app.View(), "Everyone is on the leave list")
}

func (s *AppTestSuite) TestCommittedFailureNamesEntry() {
	s.mockService.EXPECT().
		Draw(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("draw committed but presentation failed").
			WithMeta(errors.MetaCommitted, true).
			WithMeta(errors.MetaEntry, "Alice"))

	s.press("n")

	s.Contains(describeError(s.app.err), "Drew Alice")
}

func (s *AppTestSuite) TestResetAndModeKeys() {
	gomock.InOrder(
		s.mockService.EXPECT().
			Reset(gomock.Any(), &picker.ResetInput{Kind: entities.KindGroup}).
			Return(&picker.ResetOutput{Mode: entities.ModeWeighted}, nil),
		s.mockService.EXPECT().
			SetMode(gomock.Any(), &picker.SetModeInput{Kind: entities.KindPersonal}).
			Return(&picker.SetModeOutput{Mode: entities.ModeWeighted}, nil),
	)

	s.press("R")
	s.Equal("Reset groups weighted state", s.app.notice)

	s.press("m")
	s.Equal("names now use weighted", s.app.notice)
}

func (s *AppTestSuite) TestEggAndVoiceToggles() {
	s.mockService.EXPECT().
		SetEggsEnabled(gomock.Any(), &picker.SetEggsEnabledInput{Enabled: false}).
		Return(&picker.SetEggsEnabledOutput{Enabled: false}, nil)
	s.mockService.EXPECT().
		SetVoiceEnabled(gomock.Any(), &picker.SetVoiceEnabledInput{Enabled: true}).
		Return(&picker.SetVoiceEnabledOutput{Enabled: false}, nil)

	s.press("e")
	s.Equal("Eggs off", s.app.notice)

	s.press("v")
	s.Equal("Voice unavailable for this session", s.app.notice)
}

func (s *AppTestSuite) TestLeaveEditor() {
	s.mockService.EXPECT().
		SetLeaveList(gomock.Any(), &picker.SetLeaveListInput{Entries: []string{"Bob", "Zed"}}).
		Return(&picker.SetLeaveListOutput{Entries: []string{"Bob", "Zed"}, Unknown: []string{"Zed"}}, nil)

	s.press("l")
	s.Require().Equal(screenLeave, s.app.screen)
	s.Equal("Carol", s.app.leave.Value())

	// keys go to the editor, not the main bindings
	s.press("n")
	s.Equal(screenLeave, s.app.screen)

	s.app.leave.SetValue("Bob\nZed")
	s.pressType(tea.KeyCtrlS)

	s.Equal(screenMain, s.app.screen)
	s.Equal("Leave list: 2 (not in any roster: Zed)", s.app.notice)
}

func (s *AppTestSuite) TestLeaveEditorCancel() {
	s.press("l")
	s.pressType(tea.KeyEsc)
	s.Equal(screenMain, s.app.screen)
}

func (s *AppTestSuite) TestPreviewMode() {
	s.mockService.EXPECT().
		Preview(gomock.Any(), &picker.PreviewInput{ID: "Blue Team", Announce: true}).
		Return(&picker.PreviewOutput{
			Entry: &entities.Entry{ID: "Blue Team", Kind: entities.KindGroup},
			Presentation: &entities.Presentation{
				Entry:       "Blue Team",
				Kind:        entities.KindGroup,
				DisplayText: "Blue Team",
				Color:       entities.ColorBlue,
				EggApplied:  true,
			},
		}, nil)

	s.press("t")
	s.Require().Equal(screenPreview, s.app.screen)

	s.app.probe.SetValue("  Blue Team ")
	s.pressType(tea.KeyEnter)

	s.Equal(screenResult, s.app.screen)
	s.True(s.app.result.preview)
	s.Contains(s.app.View(), "TEST")
}

func (s *AppTestSuite) TestPreviewUnknownEntry() {
	s.mockService.EXPECT().
		Preview(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("entry is not in any roster"))

	s.press("t")
	s.app.probe.SetValue("Zed")
	s.pressType(tea.KeyEnter)

	s.Equal(screenMain, s.app.screen)
	s.True(errors.IsNotFound(s.app.err))
}

func (s *AppTestSuite) TestReloadAndReseed() {
	s.mockService.EXPECT().
		Reload(gomock.Any(), gomock.Any()).
		Return(&picker.ReloadOutput{Names: 4, Groups: 2}, nil)
	s.mockService.EXPECT().
		Reseed(gomock.Any(), gomock.Any()).
		Return(&picker.ReseedOutput{Seed: 7, Applied: true}, nil)

	s.pressType(tea.KeyCtrlR)
	s.Equal("Reloaded 4 names and 2 groups", s.app.notice)

	s.press("s")
	s.Equal("Reseeded (7)", s.app.notice)
}

func (s *AppTestSuite) TestQuit() {
	s.press("q")
	s.True(s.quit)
}

func (s *AppTestSuite) TestDefaultTimeouts() {
	app, err := New(&Config{PickerService: s.mockService})
	s.Require().NoError(err)
	s.Equal(ResultTimeout, app.resultTimeout)
	s.Equal(IdleTimeout, app.idleTimeout)
}

func (s *AppTestSuite) TestTextColorContrast() {
	s.Equal("#000000", string(textColor(entities.ColorYellow)))
	s.Equal("#FFFFFF", string(textColor(entities.ColorBlue)))
}
