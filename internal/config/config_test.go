package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sadopc/offwork/internal/countdown"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv(EnvDebugLog, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "18:00", cfg.DefaultTarget)
	require.Equal(t, 10, cfg.CelebrationSeconds)
	require.True(t, cfg.SoundEnabled())
	require.NotEmpty(t, cfg.DatabasePath)
	require.NoError(t, cfg.Validate())
}

func TestLoadFillsMissingValues(t *testing.T) {
	t.Setenv(EnvDebugLog, "")
	path := writeConfig(t, "default_target: \"17:30\"\nsound: false\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, countdown.TargetTime{Hour: 17, Minute: 30}, cfg.Target())
	require.False(t, cfg.SoundEnabled())
	require.Equal(t, 10*time.Second, cfg.Celebration())
	require.NotEmpty(t, cfg.DatabasePath)
}

func TestLoadExpandsHome(t *testing.T) {
	t.Setenv(EnvDebugLog, "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(writeConfig(t, "database_path: ~/work/offwork.db\n"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "work", "offwork.db"), cfg.DatabasePath)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "default_target: [unterminated\n"))
	require.Error(t, err)
}

func TestDebugLogFromEnv(t *testing.T) {
	t.Setenv(EnvDebugLog, "/tmp/offwork-debug.log")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "/tmp/offwork-debug.log", cfg.DebugLog)
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "/etc/offwork.yaml")
	require.Equal(t, "/etc/offwork.yaml", Path())
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv(EnvDebugLog, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.DefaultTarget = "16:45"
	cfg.CelebrationSeconds = 3
	require.NoError(t, Save(cfg, path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "16:45", got.DefaultTarget)
	require.Equal(t, 3, got.CelebrationSeconds)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Config)
		field string
	}{
		{"empty db path", func(c *Config) { c.DatabasePath = "" }, "database_path"},
		{"bad target", func(c *Config) { c.DefaultTarget = "25:99" }, "default_target"},
		{"negative celebration", func(c *Config) { c.CelebrationSeconds = -1 }, "celebration_seconds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(cfg)
			err := cfg.Validate()
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			require.Equal(t, tt.field, ve.Field)
		})
	}
}
