package countdown

import (
	"slices"
	"time"
)

// State is everything the countdown screen needs. Tick is pure: it never
// touches storage or sound, it only reports what happened in an Outcome.
type State struct {
	Target      TargetTime
	Records     []Record
	Remaining   Remaining
	Celebration Celebration

	// CelebrationLength defaults to DefaultCelebration when zero.
	CelebrationLength time.Duration
}

// Outcome describes the side effects a tick asks for.
type Outcome struct {
	// Crossed is set when the countdown hit zero and a celebration started.
	Crossed bool
	// Appended is set when Record is new and the log must be persisted.
	Appended bool
	Record   Record
}

// NewState returns a state for target with a copy of records.
func NewState(target TargetTime, records []Record) State {
	return State{
		Target:  target,
		Records: slices.Clone(records),
	}
}

// Tick recomputes the remaining time for now and detects the zero-crossing.
func (s State) Tick(now time.Time) (State, Outcome) {
	var out Outcome

	s.Celebration = s.Celebration.Expire(now)
	s.Remaining = Compute(s.Target, now)

	if !s.Remaining.IsZero() || s.Celebration.Active() {
		return s, out
	}

	s.Celebration, out.Crossed = s.Celebration.Start(now, s.celebrationLength())

	var appended bool
	s.Records, appended = AppendDaily(s.Records, now)
	if appended {
		out.Appended = true
		out.Record = s.Records[len(s.Records)-1]
	}
	return s, out
}

// WithTarget switches the target and recomputes the remaining time without
// triggering a crossing; the next tick does that.
func (s State) WithTarget(t TargetTime, now time.Time) State {
	s.Target = t
	s.Remaining = Compute(t, now)
	return s
}

func (s State) celebrationLength() time.Duration {
	if s.CelebrationLength <= 0 {
		return DefaultCelebration
	}
	return s.CelebrationLength
}
