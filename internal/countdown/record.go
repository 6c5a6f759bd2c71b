package countdown

import (
	"time"

	"github.com/dustin/go-humanize"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	day24 = 24 * time.Hour
)

// Record marks that the target was reached on a calendar day.
type Record struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// NewRecord stamps now in local date and HH:MM form.
func NewRecord(now time.Time) Record {
	return Record{
		Date: now.Format(DateLayout),
		Time: now.Format(TimeLayout),
	}
}

// Day parses the record date in loc. A malformed date returns the zero time.
func (r Record) Day(loc *time.Location) time.Time {
	d, err := time.ParseInLocation(DateLayout, r.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return d
}

// Age renders how many calendar days ago the record was made relative to
// now: "today", "yesterday", or humanize's "n days ago". Both dates are
// rebuilt in UTC so daylight-saving shifts cannot change the day count.
func (r Record) Age(now time.Time) string {
	if now.IsZero() {
		return ""
	}
	day := r.Day(time.UTC)
	if day.IsZero() {
		return ""
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch days := int(today.Sub(day) / day24); days {
	case 0:
		return "today"
	case 1:
		return "yesterday"
	default:
		return humanize.RelTime(day, today, "ago", "from now")
	}
}

// HasDate reports whether records already contain an entry for date.
func HasDate(records []Record, date string) bool {
	for _, r := range records {
		if r.Date == date {
			return true
		}
	}
	return false
}

// AppendDaily appends a record for now unless one exists for the same date.
// The returned slice never aliases the input.
func AppendDaily(records []Record, now time.Time) ([]Record, bool) {
	rec := NewRecord(now)
	if HasDate(records, rec.Date) {
		return records, false
	}
	out := make([]Record, len(records), len(records)+1)
	copy(out, records)
	return append(out, rec), true
}
