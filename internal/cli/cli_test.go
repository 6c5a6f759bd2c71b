package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/offwork/internal/countdown"
	"github.com/sadopc/offwork/internal/store"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OFFWORK_DEBUG_LOG", "")
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "offwork.db"),
	}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTargetShowDefault(t *testing.T) {
	out, err := run(t, t.TempDir(), "target")
	require.NoError(t, err)
	require.Equal(t, "18:00\n", out)
}

func TestTargetSetAndShow(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "target", "9:15")
	require.NoError(t, err)
	require.Contains(t, out, "09:15")

	out, err = run(t, dir, "target")
	require.NoError(t, err)
	require.Equal(t, "09:15\n", out)
}

func TestTargetRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "target", "26:00")
	require.ErrorIs(t, err, countdown.ErrInvalidTarget)

	out, err := run(t, dir, "target")
	require.NoError(t, err)
	require.Equal(t, "18:00\n", out)
}

func TestConfigDefaultTarget(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("default_target: \"17:00\"\n"), 0o644))
	out, err := run(t, dir, "target")
	require.NoError(t, err)
	require.Equal(t, "17:00\n", out)
}

func TestInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("celebration_seconds: -5\n"), 0o644))
	_, err := run(t, dir, "target")
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	fixedNow(t, time.Date(2024, 1, 1, 16, 30, 15, 0, time.Local))
	out, err := run(t, t.TempDir(), "status")
	require.NoError(t, err)
	require.Equal(t, "01:29:45 until 18:00\n", out)
}

func seedRecords(t *testing.T, dir string, recs []countdown.Record) {
	t.Helper()
	s, err := store.New(filepath.Join(dir, "offwork.db"))
	require.NoError(t, err)
	require.NoError(t, s.SaveRecords(recs))
	require.NoError(t, s.Close())
}

func TestStatusAlreadyOffWork(t *testing.T) {
	dir := t.TempDir()
	seedRecords(t, dir, []countdown.Record{{Date: "2024-01-01", Time: "18:00"}})
	fixedNow(t, time.Date(2024, 1, 1, 19, 0, 0, 0, time.Local))
	out, err := run(t, dir, "status")
	require.NoError(t, err)
	require.Contains(t, out, "Already off work today.")
}

func TestRecords(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "records")
	require.NoError(t, err)
	require.Equal(t, "No records yet.\n", out)

	seedRecords(t, dir, []countdown.Record{
		{Date: "2024-01-01", Time: "18:00"},
		{Date: "2024-01-02", Time: "18:02"},
	})
	fixedNow(t, time.Date(2024, 1, 4, 12, 0, 0, 0, time.Local))
	out, err = run(t, dir, "records")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "2024-01-01  18:00"))
	require.True(t, strings.HasPrefix(lines[1], "2024-01-02  18:02"))
	require.Equal(t, "2 day(s)", lines[2])
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	seedRecords(t, dir, []countdown.Record{{Date: "2024-01-01", Time: "18:00"}})

	target := filepath.Join(dir, "out.json")
	out, err := run(t, dir, "export", "--format", "json", "--out", target)
	require.NoError(t, err)
	require.Contains(t, out, "Exported 1 record(s)")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(data), `"date": "2024-01-01"`)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := run(t, t.TempDir(), "export", "--format", "xml")
	require.Error(t, err)
}

func TestTargetReset(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("default_target: \"17:15\"\n"), 0o644))

	_, err := run(t, dir, "target", "08:30")
	require.NoError(t, err)

	out, err := run(t, dir, "target", "--reset")
	require.NoError(t, err)
	require.Equal(t, "Off-work time reset to 17:15\n", out)

	out, err = run(t, dir, "target")
	require.NoError(t, err)
	require.Equal(t, "17:15\n", out)

	_, err = run(t, dir, "target", "--reset", "09:00")
	require.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	out, err := run(t, dir, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "default_target:")
	require.Contains(t, string(data), "18:00")
	require.Contains(t, string(data), "celebration_seconds: 10")

	_, err = run(t, dir, "config", "init")
	require.Error(t, err, "existing file must not be overwritten")

	_, err = run(t, dir, "config", "init", "--force")
	require.NoError(t, err)

	out, err = run(t, dir, "target")
	require.NoError(t, err)
	require.Equal(t, "18:00\n", out)
}
