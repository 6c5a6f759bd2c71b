package countdown

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Remaining is the whole-second time left until the next target instant.
type Remaining struct {
	Hours   int
	Minutes int
	Seconds int
}

// Compute returns the time left from now until target on now's calendar day,
// or until the same time tomorrow when today's target has already passed.
// Fractions of a second are truncated.
func Compute(target TargetTime, now time.Time) Remaining {
	targetAt := time.Date(now.Year(), now.Month(), now.Day(), target.Hour, target.Minute, 0, 0, now.Location())

	diff := targetAt.Sub(now)
	if diff < 0 {
		diff += day
	}

	return Remaining{
		Hours:   int(diff / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
		Seconds: int(diff % time.Minute / time.Second),
	}
}

// IsZero reports whether the countdown has reached the target.
func (r Remaining) IsZero() bool {
	return r.Hours == 0 && r.Minutes == 0 && r.Seconds == 0
}

func (r Remaining) Duration() time.Duration {
	return time.Duration(r.Hours)*time.Hour +
		time.Duration(r.Minutes)*time.Minute +
		time.Duration(r.Seconds)*time.Second
}

func (r Remaining) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", r.Hours, r.Minutes, r.Seconds)
}
