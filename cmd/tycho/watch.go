package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"ledgerhq/tycho/pkg/harness"
	"ledgerhq/tycho/pkg/harness/history"
)

var watchFlags struct {
	dir         string
	debounce    time.Duration
	metricsAddr string
	schedule    string
	dbPath      string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-lint scripts on change",
	Long: `Watch a directory of test scripts and re-lint each script when it
changes.

Optionally the watch daemon can:
  - expose Prometheus metrics over HTTP (--metrics-addr)
  - run a full re-lint of the directory on a cron schedule (--schedule)
  - record every lint run to a SQLite history database (--db)

Examples:
  # Watch a directory
  tycho watch --dir tests/

  # Watch with metrics and hourly full re-lints
  tycho watch --dir tests/ --metrics-addr :9464 --schedule "0 * * * *"

  # Record lint history
  tycho watch --dir tests/ --db lint-history.db`,
	RunE: watchScripts,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.dir, "dir", "d", "", "directory of script files (required)")
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 100*time.Millisecond, "quiet period before re-linting")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "address for the Prometheus /metrics endpoint")
	watchCmd.Flags().StringVar(&watchFlags.schedule, "schedule", "", "cron schedule for full directory re-lints")
	watchCmd.Flags().StringVar(&watchFlags.dbPath, "db", "", "SQLite database to record lint runs")
	_ = watchCmd.MarkFlagRequired("dir")
}

func watchScripts(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	global, err := loadRegistry()
	if err != nil {
		return err
	}

	metrics := harness.NewMetrics(nil)
	linter := harness.NewLinter(global, logger).WithMetrics(metrics)

	var store *history.Store
	if watchFlags.dbPath != "" {
		store, err = history.Open(watchFlags.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	record := func(report *harness.Report) {
		if store == nil {
			return
		}
		if err := store.RecordReport(ctx, report); err != nil {
			logger.Error("failed to record lint run", "error", err)
		}
	}

	relintFile := func(path string) error {
		record(linter.LintFile(path))
		return nil
	}

	relintDir := func() {
		files, err := collectScripts("", watchFlags.dir)
		if err != nil {
			logger.Error("failed to list scripts", "error", err)
			return
		}
		for _, file := range files {
			record(linter.LintFile(file))
		}
		logger.Info("full re-lint completed", "scripts", len(files))
	}

	// Initial pass over the whole directory.
	relintDir()

	if watchFlags.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		server := &http.Server{Addr: watchFlags.metricsAddr, Handler: mux}
		go func() {
			logger.Info("metrics endpoint listening", "addr", watchFlags.metricsAddr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(shutdownCtx)
		}()
	}

	if watchFlags.schedule != "" {
		if _, err := cron.ParseStandard(watchFlags.schedule); err != nil {
			return fmt.Errorf("invalid cron schedule %q: %w", watchFlags.schedule, err)
		}
		c := cron.New()
		if _, err := c.AddFunc(watchFlags.schedule, relintDir); err != nil {
			return fmt.Errorf("failed to schedule re-lint: %w", err)
		}
		c.Start()
		defer c.Stop()
		logger.Info("scheduled re-lint enabled", "schedule", watchFlags.schedule)
	}

	config := harness.DefaultWatcherConfig()
	config.Path = watchFlags.dir
	config.DebounceInterval = watchFlags.debounce

	watcher, err := harness.NewScriptWatcher(config, logger)
	if err != nil {
		return err
	}

	return watcher.Watch(ctx, relintFile)
}
