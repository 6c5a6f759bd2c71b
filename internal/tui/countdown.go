package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/offwork/internal/countdown"
)

// countdownModel renders the engine state; it holds no logic of its own.
type countdownModel struct {
	width  int
	height int

	state countdown.State
}

func newCountdownModel(st countdown.State) countdownModel {
	return countdownModel{state: st}
}

func (c *countdownModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c countdownModel) view() string {
	w := c.width - 4
	if w < 20 {
		w = 20
	}

	title := titleStyle.Render("Until off work")
	target := subtitleStyle.Render("Target ") + highlightStyle.Bold(true).Render(c.state.Target.String())

	r := c.state.Remaining
	blocks := lipgloss.JoinHorizontal(lipgloss.Top,
		renderBlock(r.Hours, "hours", r.IsZero()),
		"  ",
		renderBlock(r.Minutes, "minutes", r.IsZero()),
		"  ",
		renderBlock(r.Seconds, "seconds", r.IsZero()),
	)

	rows := []string{title, target, "", blocks}

	if c.state.Celebration.Active() {
		rows = append(rows, "", bannerStyle.Render("🎉 Time to clock out! 🎉"))
	}

	rows = append(rows, "", c.renderToday())
	rows = append(rows, "", mutedStyle.Render("t: set time  tab: history"))

	return panelStyle.Width(w).Render(
		lipgloss.PlaceHorizontal(w-6, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, rows...)),
	)
}

func renderBlock(v int, label string, zero bool) string {
	style := digitBlockStyle
	if zero {
		style = digitBlockZeroStyle
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		style.Render(fmt.Sprintf("%02d", v)),
		blockLabelStyle.Render(label),
	)
}

func (c countdownModel) renderToday() string {
	n := len(c.state.Records)
	if n == 0 {
		return mutedStyle.Render("No off-work records yet")
	}
	last := c.state.Records[n-1]
	return mutedStyle.Render(fmt.Sprintf("Last off work %s at %s  ·  %d day(s) logged", last.Date, last.Time, n))
}
