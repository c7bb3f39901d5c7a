package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/raindrop/internal/history"
	"github.com/mark3labs/raindrop/internal/locale"
)

// View implements tea.Model.
func (w *Widget) View() tea.View {
	return tea.NewView(w.Render())
}

// Render draws the whole widget. It reads the model and never changes it.
//
// Layout:
//
//	🌧️ Rain Translator
//	☔ input
//	████████░░░░░░░  8/10
//
//	╭ history (newest first) ─╮
//	╰─────────────────────────╯
//	hint
//	endpoint · health · n in flight     help
func (w *Widget) Render() string {
	theme := GetTheme()

	parts := []string{
		StyleHeader(theme).Render(w.catalog.T(locale.Title)),
		w.input.View(),
		w.renderProgress(),
		"",
		w.renderHistory(),
	}
	if hint := w.renderHint(); hint != "" {
		parts = append(parts, hint)
	}
	parts = append(parts, w.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (w *Widget) renderProgress() string {
	theme := GetTheme()
	percent := min(w.Percentage(), 100) / 100

	count := fmt.Sprintf("%2d/%d", w.length, Threshold)
	countStyle := lipgloss.NewStyle().Foreground(theme.Muted)
	if w.complete {
		countStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		count += " ✓"
	}
	return w.bar.ViewAs(percent) + "  " + countStyle.Render(count)
}

func (w *Widget) renderHistory() string {
	theme := GetTheme()
	if w.history.Empty() {
		return StyleMuted(theme).Render(w.catalog.T(locale.EmptyState))
	}

	entries := w.history.Entries()
	cards := make([]string, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, w.renderEntry(e))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (w *Widget) renderEntry(e *history.Entry) string {
	theme := GetTheme()
	inner := w.contentWidth()

	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(w.catalog.T(locale.InputLabel) + ": " + e.Original)
	stamp := lipgloss.NewStyle().Foreground(theme.Muted).Render(e.Timestamp)
	gap := max(inner-lipgloss.Width(label)-lipgloss.Width(stamp), 1)
	header := label + strings.Repeat(" ", gap) + stamp

	var body string
	switch e.State {
	case history.Pending:
		body = lipgloss.NewStyle().Foreground(theme.Rain).
			Render(w.spinner.View() + " " + w.catalog.T(locale.Translating))
	case history.Failed:
		body = StyleError(theme).Render(e.Output)
	case history.Resolved:
		body = w.rendered[e.ID]
		if body == "" {
			body = e.Output
		}
	}

	return StyleCard(w.cardWidth(), theme).Render(header + "\n" + body)
}

func (w *Widget) renderHint() string {
	if !w.hint.visible() {
		return ""
	}
	theme := GetTheme()
	style := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	if w.hint.faded() {
		style = style.Foreground(theme.Muted).Faint(true)
	}
	return style.Render(w.catalog.T(locale.Hint))
}

// renderStatusBar shows the endpoint, server health and the number of
// translations in flight on the left and key help on the right.
func (w *Widget) renderStatusBar() string {
	theme := GetTheme()

	left := lipgloss.NewStyle().Foreground(theme.Muted).Render(w.endpoint)
	if w.health != "" {
		color := theme.Success
		switch w.healthState {
		case healthDegraded:
			color = theme.Accent
		case healthDown:
			color = theme.Error
		}
		left += lipgloss.NewStyle().Foreground(theme.Muted).Render(" · ") +
			lipgloss.NewStyle().Foreground(color).Render(w.health)
	}
	if n := w.history.Pending(); n > 0 {
		left += lipgloss.NewStyle().Foreground(theme.Muted).Render(" · ") +
			lipgloss.NewStyle().Foreground(theme.Rain).Render(w.catalog.Count(locale.InFlight, n))
	}

	right := lipgloss.NewStyle().Foreground(theme.Muted).Render(w.catalog.T(locale.QuitHelp))
	gap := max(w.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
