package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sadopc/offwork/internal/countdown"
)

// Keys used for the countdown state.
const (
	KeyTarget  = "offWorkTarget"
	KeyRecords = "offWorkRecords"
)

// LoadTarget returns the stored target string, or "" if none is stored.
func (s *Store) LoadTarget() (string, error) {
	v, err := s.Get(KeyTarget)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return v, err
}

func (s *Store) SaveTarget(v string) error {
	return s.Set(KeyTarget, v)
}

// LoadRecords decodes the JSON record array. A missing key is an empty log.
func (s *Store) LoadRecords() ([]countdown.Record, error) {
	raw, err := s.Get(KeyRecords)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var recs []countdown.Record
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return recs, nil
}

// SaveRecords overwrites the stored log with recs encoded as a JSON array.
func (s *Store) SaveRecords(recs []countdown.Record) error {
	if recs == nil {
		recs = []countdown.Record{}
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return s.Set(KeyRecords, string(data))
}
