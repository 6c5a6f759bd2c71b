package countdown

import "time"

// DefaultCelebration is how long the celebration stays up.
const DefaultCelebration = 10 * time.Second

// Celebration is the Idle/Celebrating lifecycle started on a zero-crossing.
type Celebration struct {
	active bool
	until  time.Time
	gen    int
}

// Start moves to Celebrating. It is a no-op while already celebrating.
func (c Celebration) Start(now time.Time, d time.Duration) (Celebration, bool) {
	if c.active {
		return c, false
	}
	return Celebration{active: true, until: now.Add(d), gen: c.gen + 1}, true
}

// Active reports whether the celebration is on.
func (c Celebration) Active() bool { return c.active }

// Deadline is when the current celebration ends.
func (c Celebration) Deadline() time.Time { return c.until }

// Generation identifies the current celebration so a stale timer cannot end a newer one.
func (c Celebration) Generation() int { return c.gen }

// Expire returns to Idle once now has reached the deadline.
func (c Celebration) Expire(now time.Time) Celebration {
	if c.active && !now.Before(c.until) {
		c.active = false
	}
	return c
}

// End returns to Idle if gen still names the current celebration.
func (c Celebration) End(gen int) Celebration {
	if c.active && c.gen == gen {
		c.active = false
	}
	return c
}
