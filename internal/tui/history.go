package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/offwork/internal/countdown"
)

// maxChartBars caps how many recent days the chart shows.
const maxChartBars = 14

type historyModel struct {
	width  int
	height int

	records []countdown.Record
	target  countdown.TargetTime
	now     time.Time

	list  viewport.Model
	chart barchart.Model
}

func newHistoryModel() historyModel {
	return historyModel{
		list:  viewport.New(60, 10),
		chart: barchart.New(60, 10),
	}
}

func (h *historyModel) setSize(w, hgt int) {
	h.width = w
	h.height = hgt
	h.rebuild()
}

// setData replaces the records and redraws. Records are kept oldest first
// and rendered newest-last.
func (h *historyModel) setData(records []countdown.Record, target countdown.TargetTime, now time.Time) {
	grew := len(records) != len(h.records)
	h.records = records
	h.target = target
	h.now = now
	h.rebuild()
	if grew {
		h.list.GotoBottom()
	}
}

func (h *historyModel) rebuild() {
	chartWidth := h.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if h.height > 36 {
		chartHeight = 14
	}
	h.buildChart(chartWidth, chartHeight)

	listHeight := h.height - chartHeight - 10
	if listHeight < 3 {
		listHeight = 3
	}
	h.list.Width = chartWidth
	h.list.Height = listHeight
	h.list.SetContent(h.renderList())
}

func (h *historyModel) buildChart(w, hgt int) {
	h.chart = barchart.New(w, hgt)

	recent := h.records
	if len(recent) > maxChartBars {
		recent = recent[len(recent)-maxChartBars:]
	}

	var bars []barchart.BarData
	for _, r := range recent {
		hours, ok := clockHours(r.Time)
		if !ok {
			continue
		}
		style := successStyle
		if r.Time > h.target.String() {
			style = warningStyle
		}
		label := r.Date
		if d := r.Day(time.Local); !d.IsZero() {
			label = d.Format("Mon 02")
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  r.Time,
				Value: hours,
				Style: style,
			}},
		})
	}

	if len(bars) > 0 {
		h.chart.PushAll(bars)
		h.chart.Draw()
	}
}

func (h historyModel) renderList() string {
	if len(h.records) == 0 {
		return mutedStyle.Render("  No off-work records yet")
	}
	var rows []string
	for _, r := range h.records {
		date := lipgloss.NewStyle().Width(12).Render(r.Date)
		clock := highlightStyle.Render(r.Time)
		rows = append(rows, fmt.Sprintf("  %s %s  %s", date, clock, mutedStyle.Render(r.Age(h.now))))
	}
	return strings.Join(rows, "\n")
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	// The viewport's own key map already scrolls on ↑/k and ↓/j.
	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return h, cmd
}

func (h historyModel) view() string {
	w := h.width - 4
	if w < 20 {
		w = 20
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("History"), "  ",
		mutedStyle.Render(fmt.Sprintf("%d day(s) · target %s", len(h.records), h.target)),
	)

	chartView := mutedStyle.Render("  Nothing to chart yet")
	if len(h.records) > 0 {
		chartView = h.chart.View()
	}

	nav := mutedStyle.Render("  ↑/↓: scroll  x: export")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", h.list.View(), "", nav,
		),
	)
}
