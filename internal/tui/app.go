// Package tui is the terminal front end of the picker. It follows the
// bubbletea model: every service call runs as a tea.Cmd and reports back
// through a message, and both screen timers are sequence-numbered ticks so
// a stale tick is ignored.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

const (
	// ResultTimeout is how long a result stays up before it closes itself
	ResultTimeout = 10 * time.Second
	// IdleTimeout is how long the screen waits for input before dimming
	IdleTimeout = 10 * time.Second
)

type screen int

const (
	screenMain screen = iota
	screenResult
	screenLeave
	screenPreview
)

// Config holds the dependencies of the terminal UI
type Config struct {
	PickerService picker.Service

	// Context is passed to every service call
	Context context.Context

	// AutoClose is used until the first status arrives
	AutoClose bool

	ResultTimeout time.Duration
	IdleTimeout   time.Duration
	Tick          TickFunc
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil || c.PickerService == nil {
		return errors.InvalidArgument("picker service is required")
	}
	return nil
}

// result is what the result card shows
type result struct {
	kind         entities.Kind
	mode         entities.Mode
	presentation *entities.Presentation
	preview      bool
	refilled     bool
	discarded    []string
}

// App is the bubbletea model
type App struct {
	service picker.Service
	ctx     context.Context
	tick    TickFunc

	resultTimeout time.Duration
	idleTimeout   time.Duration

	keys  keyMap
	help  help.Model
	leave textarea.Model
	probe textinput.Model

	screen    screen
	result    *result
	status    *picker.Status
	autoClose bool
	notice    string
	err       error

	// closeSeq and idleSeq identify the only tick each timer still honors
	closeSeq int
	idleSeq  int
	idle     bool

	width  int
	height int
}

// New creates the terminal UI model
func New(cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tick := cfg.Tick
	if tick == nil {
		tick = tea.Tick
	}
	resultTimeout := cfg.ResultTimeout
	if resultTimeout <= 0 {
		resultTimeout = ResultTimeout
	}
	idleTimeout := cfg.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = IdleTimeout
	}

	leave := textarea.New()
	leave.Placeholder = "One entry per line"
	leave.ShowLineNumbers = false
	leave.Cursor.SetMode(cursor.CursorStatic)

	probe := textinput.New()
	probe.Placeholder = "Name or group to preview"
	probe.Prompt = "test> "
	probe.Cursor.SetMode(cursor.CursorStatic)

	return &App{
		service:       cfg.PickerService,
		ctx:           ctx,
		tick:          tick,
		resultTimeout: resultTimeout,
		idleTimeout:   idleTimeout,
		keys:          defaultKeyMap(),
		help:          help.New(),
		leave:         leave,
		probe:         probe,
		autoClose:     cfg.AutoClose,
	}, nil
}

// Init loads the status and starts the idle timer
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchStatus(), a.armIdle())
}

func (a *App) armIdle() tea.Cmd {
	a.idleSeq++
	seq := a.idleSeq
	return a.tick(a.idleTimeout, func(time.Time) tea.Msg { return idleMsg{seq: seq} })
}

func (a *App) armAutoClose() tea.Cmd {
	a.closeSeq++
	if !a.autoClose {
		return nil
	}
	seq := a.closeSeq
	return a.tick(a.resultTimeout, func(time.Time) tea.Msg { return autoCloseMsg{seq: seq} })
}

// cancelAutoClose makes any pending auto-close tick stale
func (a *App) cancelAutoClose() {
	a.closeSeq++
}

// Update handles a message and returns the next command
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.leave.SetWidth(max(20, msg.Width-4))
		a.probe.Width = max(20, msg.Width-10)
		return a, nil

	case tea.KeyMsg:
		a.idle = false
		idle := a.armIdle()
		cmd := a.handleKey(msg)
		return a, tea.Batch(cmd, idle)

	case idleMsg:
		if msg.seq == a.idleSeq {
			a.idle = true
		}
		return a, nil

	case autoCloseMsg:
		if msg.seq == a.closeSeq && a.screen == screenResult {
			a.screen = screenMain
			a.result = nil
		}
		return a, nil

	case drawnMsg:
		return a, a.handleDrawn(msg)

	case previewedMsg:
		return a, a.handlePreviewed(msg)

	case opMsg:
		a.err = msg.err
		if msg.notice != "" {
			a.notice = msg.notice
		}
		if msg.status != nil {
			a.setStatus(msg.status)
		}
		return a, nil

	case statusMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.setStatus(msg.status)
		return a, nil
	}

	return a, nil
}

func (a *App) setStatus(st *picker.Status) {
	a.status = st
	a.autoClose = st.AutoClose
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	switch a.screen {
	case screenLeave:
		return a.handleLeaveKey(msg)
	case screenPreview:
		return a.handlePreviewKey(msg)
	case screenResult:
		if key.Matches(msg, a.keys.Dismiss) {
			a.cancelAutoClose()
			a.screen = screenMain
			a.result = nil
			return nil
		}
		// any other key keeps the result up
		a.cancelAutoClose()
	}

	return a.handleMainKey(msg)
}

func (a *App) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.DrawName):
		return a.draw(entities.KindPersonal)
	case key.Matches(msg, a.keys.DrawGroup):
		return a.draw(entities.KindGroup)
	case key.Matches(msg, a.keys.ResetName):
		return a.reset(entities.KindPersonal)
	case key.Matches(msg, a.keys.ResetGroup):
		return a.reset(entities.KindGroup)
	case key.Matches(msg, a.keys.ModeName):
		return a.toggleMode(entities.KindPersonal)
	case key.Matches(msg, a.keys.ModeGroup):
		return a.toggleMode(entities.KindGroup)
	case key.Matches(msg, a.keys.Eggs):
		return a.setEggs(a.status == nil || !a.status.EggsEnabled)
	case key.Matches(msg, a.keys.Voice):
		return a.setVoice(a.status == nil || !a.status.VoiceEnabled)
	case key.Matches(msg, a.keys.Reseed):
		return a.reseed()
	case key.Matches(msg, a.keys.Reload):
		return a.reload()
	case key.Matches(msg, a.keys.ToggleHelp):
		a.help.ShowAll = !a.help.ShowAll
		return nil
	case key.Matches(msg, a.keys.Leave):
		return a.openLeaveEditor()
	case key.Matches(msg, a.keys.Test):
		return a.openPreview()
	}
	return nil
}

func (a *App) openLeaveEditor() tea.Cmd {
	a.screen = screenLeave
	a.result = nil
	if a.status != nil {
		a.leave.SetValue(strings.Join(a.status.LeaveList, "\n"))
	} else {
		a.leave.Reset()
	}
	return a.leave.Focus()
}

func (a *App) handleLeaveKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.leave.Blur()
		a.screen = screenMain
		return nil
	case key.Matches(msg, a.keys.Save):
		a.leave.Blur()
		a.screen = screenMain
		return a.saveLeaveList(a.leave.Value())
	}

	var cmd tea.Cmd
	a.leave, cmd = a.leave.Update(msg)
	return cmd
}

func (a *App) openPreview() tea.Cmd {
	a.screen = screenPreview
	a.result = nil
	a.probe.Reset()
	return a.probe.Focus()
}

func (a *App) handlePreviewKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.probe.Blur()
		a.screen = screenMain
		return nil
	case key.Matches(msg, a.keys.Submit):
		id := strings.TrimSpace(a.probe.Value())
		if id == "" {
			return nil
		}
		a.probe.Blur()
		a.screen = screenMain
		return a.preview(id)
	}

	var cmd tea.Cmd
	a.probe, cmd = a.probe.Update(msg)
	return cmd
}

func (a *App) handleDrawn(msg drawnMsg) tea.Cmd {
	if msg.err != nil {
		a.err = msg.err
		return a.fetchStatus()
	}

	a.err = nil
	a.notice = ""
	a.result = &result{
		kind:         msg.kind,
		mode:         msg.out.Mode,
		presentation: msg.out.Presentation,
		refilled:     msg.out.Refilled,
		discarded:    msg.out.Discarded,
	}
	a.screen = screenResult
	return tea.Batch(a.armAutoClose(), a.fetchStatus())
}

func (a *App) handlePreviewed(msg previewedMsg) tea.Cmd {
	if msg.err != nil {
		a.err = msg.err
		return nil
	}

	a.err = nil
	a.result = &result{
		kind:         msg.out.Entry.Kind,
		presentation: msg.out.Presentation,
		preview:      true,
	}
	a.screen = screenResult
	return a.armAutoClose()
}
