package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5A4FCF")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FD67F"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")).Italic(true)

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 6).
			Margin(1, 0).
			Border(lipgloss.RoundedBorder())

	dimStyle = lipgloss.NewStyle().Faint(true)
)

// View renders the current screen
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Name Picker"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(renderStatus(a.status)))
	b.WriteString("\n")

	switch a.screen {
	case screenResult:
		b.WriteString(renderResult(a.result))
	case screenLeave:
		b.WriteString("\nLeave list\n")
		b.WriteString(a.leave.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("ctrl+s save, esc cancel"))
	case screenPreview:
		b.WriteString("\n")
		b.WriteString(a.probe.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter preview, esc cancel. Previews are not recorded."))
	default:
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if a.err != nil {
		b.WriteString(errorStyle.Render(describeError(a.err)))
		b.WriteString("\n")
	} else if a.notice != "" {
		b.WriteString(noticeStyle.Render(a.notice))
		b.WriteString("\n")
	}

	b.WriteString(a.help.View(a.keys))

	if a.idle {
		return dimStyle.Render(b.String())
	}
	return b.String()
}

func renderStatus(st *picker.Status) string {
	if st == nil {
		return "loading..."
	}

	parts := make([]string, 0, len(st.Rosters)+3)
	for _, r := range st.Rosters {
		part := fmt.Sprintf("%s: %s %d/%d", rosterLabel(r.Kind), r.Mode, r.Eligible, r.Size)
		if r.Mode == entities.ModeRotation {
			part += fmt.Sprintf(" (pool %d)", r.PoolSize)
		}
		parts = append(parts, part)
	}
	parts = append(parts,
		"eggs "+onOff(st.EggsEnabled),
		"voice "+onOff(st.VoiceEnabled),
	)
	if len(st.LeaveList) > 0 {
		leave := append([]string(nil), st.LeaveList...)
		sort.Strings(leave)
		parts = append(parts, "away: "+strings.Join(leave, ", "))
	}
	return strings.Join(parts, "  |  ")
}

// textColor keeps the result readable on light backgrounds
func textColor(c entities.Color) lipgloss.Color {
	switch c {
	case entities.ColorWhite, entities.ColorYellow:
		return lipgloss.Color(entities.ColorBlack.Hex())
	default:
		return lipgloss.Color(entities.ColorWhite.Hex())
	}
}

func renderResult(r *result) string {
	if r == nil || r.presentation == nil {
		return ""
	}
	p := r.presentation

	card := cardStyle.
		Background(lipgloss.Color(p.Color.Hex())).
		Foreground(textColor(p.Color)).
		BorderForeground(lipgloss.Color(p.Color.Hex())).
		Render(p.DisplayText)

	var lines []string
	lines = append(lines, card)

	var tags []string
	if r.preview {
		tags = append(tags, "TEST")
	} else if r.mode != "" {
		tags = append(tags, string(r.mode))
	}
	if p.EggApplied {
		tags = append(tags, "egg")
	}
	if r.refilled {
		tags = append(tags, "new round")
	}
	if len(tags) > 0 {
		lines = append(lines, hintStyle.Render("["+strings.Join(tags, "] [")+"]"))
	}
	if p.ImagePath != "" {
		lines = append(lines, hintStyle.Render("image: "+p.ImagePath))
	}
	if len(r.discarded) > 0 {
		lines = append(lines, hintStyle.Render("skipped: "+strings.Join(r.discarded, ", ")))
	}
	return strings.Join(lines, "\n")
}
