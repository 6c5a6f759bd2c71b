// Package cli wires config, storage and the countdown engine behind cobra commands.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/offwork/internal/config"
	"github.com/sadopc/offwork/internal/countdown"
	"github.com/sadopc/offwork/internal/notify"
	"github.com/sadopc/offwork/internal/store"
	"github.com/sadopc/offwork/internal/tui"
	"github.com/spf13/cobra"
)

// env is what every command needs once flags are parsed.
type env struct {
	configPath string
	dbPath     string

	cfg     *config.Config
	store   *store.Store
	logFile io.Closer
}

func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	if e.dbPath != "" {
		cfg.DatabasePath = e.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg

	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "offwork")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		e.logFile = f
	} else {
		log.SetOutput(io.Discard)
	}

	s, err := store.New(cfg.DatabasePath)
	if err != nil {
		// Storage unavailable: keep going for this session only.
		log.Printf("open store %s: %v", cfg.DatabasePath, err)
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; changes will not be saved\n", err)
		s, err = store.NewMemory()
		if err != nil {
			return fmt.Errorf("open in-memory store: %w", err)
		}
	}
	e.store = s
	return nil
}

func (e *env) teardown() error {
	var err error
	if e.store != nil {
		err = e.store.Close()
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
	return err
}

func (e *env) engine() *countdown.Engine {
	var n countdown.Notifier = notify.Silent{}
	if e.cfg.SoundEnabled() {
		n = notify.NewBell()
	}
	return countdown.New(e.store, e.store,
		countdown.WithDefaultTarget(e.cfg.Target()),
		countdown.WithCelebration(e.cfg.Celebration()),
		countdown.WithNotifier(n),
		countdown.WithLogger(log.Default()),
	)
}

// NewRootCmd builds the command tree. Running it without a subcommand starts the TUI.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "offwork",
		Short: "Count down to the end of the work day",
		Long: `offwork shows how long is left until your off-work time, rings once when
it is reached and keeps a log of the days you made it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return e.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := tui.NewApp(e.engine())
			p := tea.NewProgram(app, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	root.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/offwork/config.yaml)")
	root.PersistentFlags().StringVar(&e.dbPath, "db", "", "database path (overrides config)")

	root.AddCommand(newStatusCmd(e))
	root.AddCommand(newTargetCmd(e))
	root.AddCommand(newRecordsCmd(e))
	root.AddCommand(newExportCmd(e))
	root.AddCommand(newConfigCmd(e))
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
