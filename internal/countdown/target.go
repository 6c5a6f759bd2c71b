package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTarget is returned when a target string is not a valid HH:MM time of day.
var ErrInvalidTarget = errors.New("invalid target time")

// DefaultTarget is used when nothing has been stored yet.
var DefaultTarget = TargetTime{Hour: 18, Minute: 0}

// TargetTime is the configured off-work time of day in local wall-clock time.
type TargetTime struct {
	Hour   int
	Minute int
}

// ParseTarget parses "HH:MM". Single-digit hours ("9:05") are accepted.
func ParseTarget(s string) (TargetTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || hh == "" || len(mm) != 2 {
		return TargetTime{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || len(hh) > 2 {
		return TargetTime{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return TargetTime{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
	t := TargetTime{Hour: h, Minute: m}
	if !t.Valid() {
		return TargetTime{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
	return t, nil
}

// Valid reports whether the hour and minute are in range.
func (t TargetTime) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

func (t TargetTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
