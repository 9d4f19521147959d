package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

// TickFunc schedules a message after a delay. tea.Tick is used by default.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

type drawnMsg struct {
	kind entities.Kind
	out  *picker.DrawOutput
	err  error
}

type previewedMsg struct {
	out *picker.PreviewOutput
	err error
}

// opMsg reports a finished state change together with the refreshed status
type opMsg struct {
	notice string
	status *picker.Status
	err    error
}

type statusMsg struct {
	status *picker.Status
	err    error
}

type autoCloseMsg struct{ seq int }

type idleMsg struct{ seq int }

func (a *App) fetchStatus() tea.Cmd {
	return func() tea.Msg {
		out, err := a.service.GetStatus(a.ctx, &picker.GetStatusInput{})
		if err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{status: out.Status}
	}
}

func (a *App) draw(kind entities.Kind) tea.Cmd {
	return func() tea.Msg {
		out, err := a.service.Draw(a.ctx, &picker.DrawInput{Kind: kind})
		return drawnMsg{kind: kind, out: out, err: err}
	}
}

func (a *App) preview(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := a.service.Preview(a.ctx, &picker.PreviewInput{ID: id, Announce: true})
		return previewedMsg{out: out, err: err}
	}
}

// op runs a state change and refreshes the status in the same command
func (a *App) op(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		notice, err := fn(a.ctx)
		if err != nil {
			return opMsg{err: err}
		}

		out, err := a.service.GetStatus(a.ctx, &picker.GetStatusInput{})
		if err != nil {
			return opMsg{notice: notice, err: err}
		}
		return opMsg{notice: notice, status: out.Status}
	}
}

func (a *App) reset(kind entities.Kind) tea.Cmd {
	return a.op(func(ctx context.Context) (string, error) {
		out, err := a.service.Reset(ctx, &picker.ResetInput{Kind: kind})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Reset %s %s state", rosterLabel(kind), out.Mode), nil
	})
}

func (a *App) toggleMode(kind entities.Kind) tea.Cmd {
	return a.op(func(ctx context.Context) (string, error) {
		out, err := a.service.SetMode(ctx, &picker.SetModeInput{Kind: kind})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s now use %s", rosterLabel(kind), out.Mode), nil
	})
}

func (a *App) setEggs(enabled bool) tea.Cmd {
	return a.op(func(ctx context.Context) (string, error) {
		out, err := a.service.SetEggsEnabled(ctx, &picker.SetEggsEnabledInput{Enabled: enabled})
		if err != nil {
			return "", err
		}
		return "Eggs " + onOff(out.Enabled), nil
	})
}

func (a *App) setVoice(enabled bool) tea.Cmd {
	return a.op(func(ctx context.Context) (string, error) {
		out, err := a.service.SetVoiceEnabled(ctx, &picker.SetVoiceEnabledInput{Enabled: enabled})
		if err != nil {
			return "", err
		}
		if enabled && !out.Enabled {
			return "Voice unavailable for this session", nil
		}
		return "Voice " + onOff(out.Enabled), nil
	})
}

func (a *App) saveLeaveList(text string) tea.Cmd {
	entries := strings.Split(text, "\n")
	return a.op(func(ctx context.Context) (string, error) {
		out, err := a.service.SetLeaveList(ctx, &picker.SetLeaveListInput{Entries: entries})
		if err != nil {
			return "", err
		}
		notice := fmt.Sprintf("Leave list: %d", len(out.Entries))
		if len(out.Unknown) > 0 {
			notice += " (not in any roster: " + strings.Join(out.Unknown, ", ") + ")"
		}
		return notice, nil
	})
}

func (a *App) reseed() tea.Cmd {
	return a.op(func(ctx context.Context) (string, error) {
		out, err := a.service.Reseed(ctx, &picker.ReseedInput{})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Reseeded (%d)", out.Seed), nil
	})
}

func (a *App) reload() tea.Cmd {
	return a.op(func(ctx context.Context) (string, error) {
		out, err := a.service.Reload(ctx, &picker.ReloadInput{})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Reloaded %d names and %d groups", out.Names, out.Groups), nil
	})
}

// describeError turns service errors into one line for the notice bar
func describeError(err error) string {
	switch {
	case errors.IsResourceExhausted(err):
		return "Everyone is on the leave list"
	case errors.IsCommitted(err):
		entry, _ := errors.GetMeta(err)[errors.MetaEntry].(string)
		return fmt.Sprintf("Drew %s but could not show it (%v)", entry, err)
	default:
		return err.Error()
	}
}

func rosterLabel(kind entities.Kind) string {
	if kind == entities.KindGroup {
		return "groups"
	}
	return "names"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
