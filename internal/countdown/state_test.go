package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStateTickCrossesZeroOnce(t *testing.T) {
	s := NewState(TargetTime{9, 0}, nil)

	s, out := s.Tick(at(8, 59, 59))
	require.Equal(t, Remaining{0, 0, 1}, s.Remaining)
	require.False(t, out.Crossed)
	require.False(t, s.Celebration.Active())

	s, out = s.Tick(at(9, 0, 0))
	require.True(t, s.Remaining.IsZero())
	require.True(t, out.Crossed)
	require.True(t, out.Appended)
	require.Equal(t, Record{Date: "2024-01-01", Time: "09:00"}, out.Record)
	require.True(t, s.Celebration.Active())
	require.Len(t, s.Records, 1)

	// A drifting timer can land in the zero second twice.
	s, out = s.Tick(at(9, 0, 0).Add(400 * time.Millisecond))
	require.False(t, out.Crossed)
	require.Len(t, s.Records, 1)

	s, _ = s.Tick(at(9, 0, 1))
	require.Equal(t, Remaining{23, 59, 59}, s.Remaining)
	require.True(t, s.Celebration.Active())
}

func TestStateFirstLoadAfterTarget(t *testing.T) {
	s := NewState(TargetTime{9, 0}, nil)
	s, out := s.Tick(at(9, 0, 1))
	require.Equal(t, Remaining{23, 59, 59}, s.Remaining)
	require.False(t, out.Crossed)
	require.False(t, s.Celebration.Active())
	require.Empty(t, s.Records)
}

func TestStateCelebrationExpiresAfterTenSeconds(t *testing.T) {
	s := NewState(TargetTime{9, 0}, nil)
	s, _ = s.Tick(at(9, 0, 0))

	for sec := 1; sec < 10; sec++ {
		s, _ = s.Tick(at(9, 0, sec))
		require.True(t, s.Celebration.Active(), "second %d", sec)
	}
	s, _ = s.Tick(at(9, 0, 10))
	require.False(t, s.Celebration.Active())
}

func TestStateCustomCelebrationLength(t *testing.T) {
	s := NewState(TargetTime{9, 0}, nil)
	s.CelebrationLength = 3 * time.Second
	s, _ = s.Tick(at(9, 0, 0))
	s, _ = s.Tick(at(9, 0, 2))
	require.True(t, s.Celebration.Active())
	s, _ = s.Tick(at(9, 0, 3))
	require.False(t, s.Celebration.Active())
}

func TestStateSecondCrossingSameDayDoesNotDuplicate(t *testing.T) {
	s := NewState(TargetTime{9, 0}, nil)
	s, out := s.Tick(at(9, 0, 0))
	require.True(t, out.Appended)

	s = s.WithTarget(TargetTime{9, 5}, at(9, 1, 0))
	require.Equal(t, Remaining{0, 4, 0}, s.Remaining)

	s, out = s.Tick(at(9, 5, 0))
	require.True(t, out.Crossed, "celebration replays")
	require.False(t, out.Appended)
	require.Len(t, s.Records, 1)
}

func TestStateReloadAtZeroSecond(t *testing.T) {
	existing := []Record{{Date: "2024-01-01", Time: "09:00"}}
	s := NewState(TargetTime{9, 0}, existing)

	s, out := s.Tick(at(9, 0, 0))
	require.True(t, out.Crossed)
	require.False(t, out.Appended)
	require.Equal(t, existing, s.Records)
}

func TestStateOneRecordPerDayAcrossDays(t *testing.T) {
	s := NewState(TargetTime{0, 30}, nil)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	for now := start; now.Before(start.AddDate(0, 0, 5)); now = now.Add(time.Second) {
		s, _ = s.Tick(now)
		if now.Hour() == 0 && now.Minute() == 31 && now.Second() == 0 {
			// Edit the target so the same day crosses zero again.
			s = s.WithTarget(TargetTime{0, 45}, now)
		}
		if now.Hour() == 1 && now.Minute() == 0 && now.Second() == 0 {
			s = s.WithTarget(TargetTime{0, 30}, now)
		}
	}

	seen := map[string]bool{}
	for _, r := range s.Records {
		require.False(t, seen[r.Date], "duplicate %s", r.Date)
		seen[r.Date] = true
	}
	require.Len(t, s.Records, 5)
}

func TestNewStateCopiesRecords(t *testing.T) {
	recs := []Record{{Date: "2024-01-01", Time: "09:00"}}
	s := NewState(DefaultTarget, recs)
	s.Records[0].Time = "x"
	require.Equal(t, "09:00", recs[0].Time)
}
