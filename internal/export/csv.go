package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/offwork/internal/countdown"
)

func ToCSV(records []countdown.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Date", "Weekday", "Time"}); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{r.Date, weekday(r), r.Time}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
