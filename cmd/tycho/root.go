package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ledgerhq/tycho/pkg/registry"
)

var (
	// Global flags
	accountsFile string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "tycho",
	Short: "Tycho - functional test script directive linter",
	Long: `Tycho validates the //! directives embedded in ledger functional
test scripts.

Each transaction block in a test script can carry directives that tune
how the harness runs it:

  //! new-transaction
  //! sender: alice
  //! args: {{bob}}, 42
  //! no-run: verifier, runtime
  //! max-gas: 1000
  //! sequence-number: 7

Tycho parses these directives, resolves account references against an
account manifest, and reports malformed or inconsistent configuration
before the scripts reach the harness.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&accountsFile, "accounts", "a", "accounts.yaml", "account manifest path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogger installs the process-wide slog default and returns it.
func setupLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// loadRegistry loads the account manifest named by --accounts.
func loadRegistry() (*registry.Global, error) {
	g, err := registry.LoadFile(accountsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load account manifest: %w", err)
	}
	return g, nil
}
