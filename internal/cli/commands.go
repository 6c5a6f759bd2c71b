package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sadopc/offwork/internal/config"
	"github.com/sadopc/offwork/internal/countdown"
	"github.com/sadopc/offwork/internal/export"
	"github.com/sadopc/offwork/internal/store"
	"github.com/spf13/cobra"
)

// now is swapped in tests.
var now = time.Now

func newStatusCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the time left until off work",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := e.engine()
			t := now()
			r := countdown.Compute(eng.Target(), t)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s until %s\n", r, eng.Target())
			if countdown.HasDate(eng.Records(), t.Format(countdown.DateLayout)) {
				fmt.Fprintln(out, "Already off work today.")
			}
			return nil
		},
	}
}

func newTargetCmd(e *env) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "target [HH:MM]",
		Short: "Show or set the off-work time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reset {
				if len(args) > 0 {
					return fmt.Errorf("--reset takes no time argument")
				}
				if err := e.store.Delete(store.KeyTarget); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Off-work time reset to %s\n", e.engine().Target())
				return nil
			}
			eng := e.engine()
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), eng.Target())
				return nil
			}
			if err := eng.SetTarget(args[0], now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Off-work time set to %s\n", eng.Target())
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "forget the stored time and use the configured default")
	return cmd
}

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := e.configPath
			if path == "" {
				path = config.Path()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(e.cfg, path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func newRecordsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "records",
		Aliases: []string{"log", "history"},
		Short:   "List the days you reached your off-work time",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs := e.engine().Records()
			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No records yet.")
				return nil
			}
			t := now()
			for _, r := range recs {
				fmt.Fprintf(out, "%s  %s  %s\n", r.Date, r.Time, r.Age(t))
			}
			fmt.Fprintf(out, "%s day(s)\n", humanize.Comma(int64(len(recs))))
			return nil
		},
	}
}

func newExportCmd(e *env) *cobra.Command {
	var (
		format string
		path   string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records to CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if path == "" {
				dir, err := os.Getwd()
				if err != nil {
					return err
				}
				path = export.Filename(dir, f, now())
			}
			eng := e.engine()
			if err := export.Write(f, eng.Records(), eng.Target(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d record(s) to %s\n", len(eng.Records()), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv or json")
	cmd.Flags().StringVarP(&path, "out", "o", "", "output file (default ./offwork-export-DATE.FORMAT)")
	return cmd
}
