package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/offwork/internal/countdown"
)

type jsonExport struct {
	ExportedAt string       `json:"exported_at"`
	Target     string       `json:"target"`
	Count      int          `json:"count"`
	Records    []jsonRecord `json:"records"`
}

type jsonRecord struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday,omitempty"`
	Time    string `json:"time"`
}

func ToJSON(records []countdown.Record, target countdown.TargetTime, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Target:     target.String(),
		Count:      len(records),
	}

	for _, r := range records {
		export.Records = append(export.Records, jsonRecord{
			Date:    r.Date,
			Weekday: weekday(r),
			Time:    r.Time,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
