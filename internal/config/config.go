package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sadopc/offwork/internal/countdown"
	"github.com/sadopc/offwork/internal/store"
	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config file location.
const EnvPath = "OFFWORK_CONFIG"

// EnvDebugLog overrides DebugLog.
const EnvDebugLog = "OFFWORK_DEBUG_LOG"

type Config struct {
	DatabasePath       string `yaml:"database_path"`
	DefaultTarget      string `yaml:"default_target"`
	CelebrationSeconds int    `yaml:"celebration_seconds"`
	Sound              *bool  `yaml:"sound,omitempty"`
	DebugLog           string `yaml:"debug_log,omitempty"`
}

// Load reads the config at path, or the default location when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Apply defaults for missing values
	def := Default()
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = def.DatabasePath
	}
	if cfg.DefaultTarget == "" {
		cfg.DefaultTarget = def.DefaultTarget
	}
	if cfg.CelebrationSeconds == 0 {
		cfg.CelebrationSeconds = def.CelebrationSeconds
	}
	if cfg.Sound == nil {
		cfg.Sound = def.Sound
	}

	cfg.DatabasePath = expandHome(cfg.DatabasePath)
	cfg.DebugLog = expandHome(cfg.DebugLog)
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDebugLog); v != "" {
		c.DebugLog = expandHome(v)
	}
}

// Save writes cfg to path, creating the directory if needed.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = Path()
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Path returns $OFFWORK_CONFIG or ~/.config/offwork/config.yaml.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "offwork", "config.yaml")
}

func Default() *Config {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		home, _ := os.UserHomeDir()
		dbPath = filepath.Join(home, ".offwork", "offwork.db")
	}
	sound := true
	return &Config{
		DatabasePath:       dbPath,
		DefaultTarget:      countdown.DefaultTarget.String(),
		CelebrationSeconds: int(countdown.DefaultCelebration / time.Second),
		Sound:              &sound,
	}
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, p[2:])
	}
	return p
}

// SoundEnabled reports whether the zero-crossing bell should ring.
func (c *Config) SoundEnabled() bool {
	return c.Sound == nil || *c.Sound
}

// Celebration returns the celebration length as a duration.
func (c *Config) Celebration() time.Duration {
	return time.Duration(c.CelebrationSeconds) * time.Second
}

// Target returns the parsed default target. Call Validate first.
func (c *Config) Target() countdown.TargetTime {
	t, err := countdown.ParseTarget(c.DefaultTarget)
	if err != nil {
		return countdown.DefaultTarget
	}
	return t
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s - %s", e.Field, e.Message)
}

// Validate checks the configuration for common issues
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return &ValidationError{Field: "database_path", Message: "database path is required"}
	}
	if _, err := countdown.ParseTarget(c.DefaultTarget); err != nil {
		return &ValidationError{Field: "default_target", Message: "must be HH:MM, e.g. 18:00"}
	}
	if c.CelebrationSeconds <= 0 {
		return &ValidationError{Field: "celebration_seconds", Message: "must be positive"}
	}
	return nil
}
