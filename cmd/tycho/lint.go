package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ledgerhq/tycho/pkg/harness"
)

var lintFlags struct {
	file   string
	dir    string
	format string
}

var scriptGlobs = []string{"*.mvir", "*.move", "*.test"}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate test script directives",
	Long: `Validate the //! directives in functional test scripts.

The lint command splits each script into transaction blocks, parses
every directive, and builds each block's transaction config against the
account manifest. It reports:
  - Malformed directives (unknown keywords, bad argument tokens)
  - Options set more than once per block
  - Stages disabled twice
  - References to unregistered accounts

Examples:
  # Lint a single script
  tycho lint --file tests/payments.mvir

  # Lint a directory
  tycho lint --dir tests/

  # JSON output for CI
  tycho lint --dir tests/ --format json`,
	RunE: lintScripts,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "script file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of script files")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

func lintScripts(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	files, err := collectScripts(lintFlags.file, lintFlags.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no script files found")
	}

	global, err := loadRegistry()
	if err != nil {
		return err
	}

	linter := harness.NewLinter(global, logger)
	reports := make([]*harness.Report, 0, len(files))
	for _, file := range files {
		reports = append(reports, linter.LintFile(file))
	}

	if lintFlags.format == "json" {
		if err := outputJSON(reports); err != nil {
			return err
		}
	} else {
		outputText(reports)
	}

	failed := 0
	for _, r := range reports {
		if !r.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed lint", failed, len(reports))
	}
	return nil
}

// collectScripts gathers the script files named by --file and --dir.
func collectScripts(file, dir string) ([]string, error) {
	var files []string
	if file != "" {
		files = append(files, file)
	}
	if dir != "" {
		for _, glob := range scriptGlobs {
			matches, err := filepath.Glob(filepath.Join(dir, glob))
			if err != nil {
				return nil, fmt.Errorf("failed to list script files: %w", err)
			}
			files = append(files, matches...)
		}
	}
	return files, nil
}

func outputJSON(reports []*harness.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func outputText(reports []*harness.Report) {
	for _, r := range reports {
		if r.OK() {
			fmt.Printf("%s: OK (%d blocks)\n", r.Script, len(r.Blocks))
			continue
		}
		if r.Error != "" {
			fmt.Printf("%s: FAILED\n  %s\n", r.Script, r.Error)
			continue
		}
		fmt.Printf("%s: FAILED\n", r.Script)
		for _, b := range r.Blocks {
			if b.Error != "" {
				fmt.Printf("  %s\n", b.Error)
			}
		}
	}
}
