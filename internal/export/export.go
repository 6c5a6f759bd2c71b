// Package export writes the off-work record log to CSV or JSON files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sadopc/offwork/internal/countdown"
)

type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

var Formats = []Format{CSV, JSON}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, JSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want csv or json)", s)
}

// Filename is the default export file name for format on the day of now.
func Filename(dir string, format Format, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("offwork-export-%s.%s", now.Format("2006-01-02"), format))
}

// Write exports records in format to path.
func Write(format Format, records []countdown.Record, target countdown.TargetTime, path string) error {
	switch format {
	case CSV:
		return ToCSV(records, path)
	case JSON:
		return ToJSON(records, target, path)
	}
	return fmt.Errorf("unknown export format %q", format)
}

func weekday(r countdown.Record) string {
	d := r.Day(time.Local)
	if d.IsZero() {
		return ""
	}
	return d.Weekday().String()
}
