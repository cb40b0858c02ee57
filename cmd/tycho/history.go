package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledgerhq/tycho/pkg/harness/history"
)

var historyFlags struct {
	dbPath string
	limit  int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lint runs",
	Long: `Show recent lint runs recorded by the watch daemon.

Examples:
  # Show the 20 most recent runs
  tycho history --db lint-history.db

  # Show the 100 most recent runs
  tycho history --db lint-history.db --limit 100`,
	RunE: showHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyFlags.dbPath, "db", "", "SQLite history database (required)")
	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "maximum number of runs to show")
	_ = historyCmd.MarkFlagRequired("db")
}

func showHistory(cmd *cobra.Command, args []string) error {
	setupLogger()

	store, err := history.Open(historyFlags.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(cmd.Context(), historyFlags.limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no lint runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tSCRIPT\tBLOCKS\tFAILURES\tFIRST ERROR")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Script,
			run.Blocks,
			run.Failures,
			run.FirstError,
		)
	}
	return w.Flush()
}
