// Package cmd implements the todowatch CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/todowatch/internal/clierr"
	"github.com/twiced-technology-gmbh/todowatch/internal/config"
	"github.com/twiced-technology-gmbh/todowatch/internal/cycle"
	"github.com/twiced-technology-gmbh/todowatch/internal/daemon"
	"github.com/twiced-technology-gmbh/todowatch/internal/notify"
	"github.com/twiced-technology-gmbh/todowatch/internal/output"
	"github.com/twiced-technology-gmbh/todowatch/internal/tracker"
	"github.com/twiced-technology-gmbh/todowatch/internal/watcher"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagConfig  string
	flagJSON    bool
	flagTable   bool
	flagCompact bool
	flagNoColor bool
)

// Daemon flags.
var (
	flagInterval int
	flagOnce     bool
	flagWatch    bool
	flagProject  string
	flagLogFile  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "todowatch [directories...]",
	Short: "Watch markdown files for TODO annotations and raise notifications",
	Long: `todowatch periodically scans directory trees for TODO:<text>@due(YYYY-MM-DD)
annotations, notifies about overdue and due-soon items via notify-send, and
syncs new items to Taskwarrior.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runDaemon,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			output.DisableColor()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")

	rootCmd.Flags().IntVarP(&flagInterval, "interval", "i", config.DefaultInterval, "check interval in seconds")
	rootCmd.Flags().BoolVar(&flagOnce, "once", false, "run a single cycle and exit")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "also rescan when markdown files change")
	rootCmd.Flags().StringVar(&flagProject, "project", config.DefaultProject, "tracker project label for synced tasks")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "also write JSON logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// Determine if JSON mode is active.
	jsonMode := flagJSON || os.Getenv("TODOWATCH_OUTPUT") == "json"

	var cliErr *clierr.Error
	if jsonMode {
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message)
			os.Exit(cliErr.ExitCode())
		}
		// Unknown error — wrap as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error())
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	fmt.Fprintln(os.Stderr, err)
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// loadConfig builds the effective configuration: the config file (explicit
// path, or the default location when present), overridden by flags and by
// positional directory arguments.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := baseConfig()
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		dirs := make([]string, len(args))
		for i, arg := range args {
			dirs[i] = config.ExpandHome(arg)
		}
		cfg.Directories = dirs
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = flagInterval
	}
	if cmd.Flags().Changed("project") {
		cfg.Project = flagProject
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = flagWatch
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		if len(cfg.Directories) == 0 {
			return nil, clierr.New(clierr.NoDirectories,
				"no directories to watch (pass one or more paths or set them in the config file)")
		}
		return nil, clierr.Newf(clierr.InvalidInput, "%v", err)
	}

	return cfg, nil
}

// baseConfig loads the config file layer. A missing default config file is
// not an error; a missing explicit --config path is.
func baseConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.Load(config.ExpandHome(flagConfig))
	}

	path, err := config.DefaultPath()
	if err != nil {
		return config.NewDefault(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return config.NewDefault(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, cleanup := config.SetupLogger(cfg.LogFile, config.ParseLevel(cfg.LogLevel))
	defer cleanup() //nolint:errcheck // log file close on exit

	runner := &cycle.Runner{
		Roots:    cfg.Directories,
		Project:  cfg.Project,
		Notifier: notify.NewDesktop(),
		Tracker:  tracker.NewTaskwarrior(),
		Logger:   logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagOnce {
		runner.Run(ctx)
		return nil
	}

	logger.Info("watching directories", "directories", cfg.Directories)

	var kick chan struct{}
	if cfg.Watch {
		kick = make(chan struct{}, 1)
		w, err := watcher.New(cfg.Directories, func() {
			select {
			case kick <- struct{}{}:
			default:
			}
		})
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer w.Close() //nolint:errcheck // watcher close on exit
		go w.Run(ctx, func(err error) {
			logger.Error("watcher error", "error", err)
		})
	}

	d := &daemon.Daemon{
		Runner:   daemon.RunnerFunc(func(ctx context.Context) { runner.Run(ctx) }),
		Interval: cfg.IntervalDuration(),
		Logger:   logger,
		Kick:     kick,
	}
	d.Run(ctx)
	return nil
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact)
}
