package tui

import (
	"fmt"
	"time"
)

// viewState represents the currently active view.
type viewState int

const (
	viewCountdown viewState = iota
	viewHistory
)

var viewNames = []string{"Countdown", "History"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

// celebrationDoneMsg ends the celebration it was scheduled for.
type celebrationDoneMsg struct {
	gen int
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// clockHours converts "HH:MM" to fractional hours for charting.
func clockHours(hhmm string) (float64, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, false
	}
	return float64(t.Hour()) + float64(t.Minute())/60, true
}
