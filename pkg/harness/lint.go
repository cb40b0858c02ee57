package harness

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"ledgerhq/tycho/pkg/registry"
	"ledgerhq/tycho/pkg/txnconfig"
)

// BlockResult is the lint outcome for one transaction block.
type BlockResult struct {
	Index int    `json:"index"`
	Line  int    `json:"line"`
	Error string `json:"error,omitempty"`

	// Config is the built configuration; nil when Error is set.
	Config *txnconfig.Config `json:"-"`
}

// Report is the outcome of linting one script.
type Report struct {
	RunID     string        `json:"run_id"`
	Script    string        `json:"script"`
	Blocks    []BlockResult `json:"blocks,omitempty"`
	Error     string        `json:"error,omitempty"` // script-level failure (I/O or split)
	StartedAt time.Time     `json:"started_at"`
}

// OK reports whether the script linted cleanly.
func (r *Report) OK() bool {
	if r.Error != "" {
		return false
	}
	for _, b := range r.Blocks {
		if b.Error != "" {
			return false
		}
	}
	return true
}

// Failures counts the blocks that failed, including a script-level
// failure as one.
func (r *Report) Failures() int {
	n := 0
	if r.Error != "" {
		n++
	}
	for _, b := range r.Blocks {
		if b.Error != "" {
			n++
		}
	}
	return n
}

// FirstError returns the first error message in the report, or "".
func (r *Report) FirstError() string {
	if r.Error != "" {
		return r.Error
	}
	for _, b := range r.Blocks {
		if b.Error != "" {
			return b.Error
		}
	}
	return ""
}

// Linter lints test scripts against a fixed account registry.
type Linter struct {
	global  *registry.Global
	logger  *slog.Logger
	metrics *Metrics
}

// NewLinter creates a linter. A nil logger falls back to slog.Default.
func NewLinter(global *registry.Global, logger *slog.Logger) *Linter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Linter{global: global, logger: logger}
}

// WithMetrics attaches a metrics collector to the linter.
func (l *Linter) WithMetrics(m *Metrics) *Linter {
	l.metrics = m
	return l
}

// Lint splits the script and builds every block's config. Parse and
// build failures are captured in the report rather than returned; the
// report carries a fresh run ID.
func (l *Linter) Lint(script string, r io.Reader) *Report {
	report := &Report{
		RunID:     uuid.New().String(),
		Script:    script,
		StartedAt: time.Now().UTC(),
	}

	blocks, err := Split(r)
	if err != nil {
		report.Error = err.Error()
		l.observe(report)
		return report
	}

	for i, block := range blocks {
		result := BlockResult{Index: i, Line: block.Line}
		cfg, err := txnconfig.Build(l.global, block.Entries)
		if err != nil {
			result.Error = fmt.Sprintf("block starting at line %d: %v", block.Line, err)
		} else {
			result.Config = cfg
		}
		report.Blocks = append(report.Blocks, result)
	}

	l.observe(report)
	return report
}

// LintFile lints the script at the given path.
func (l *Linter) LintFile(path string) *Report {
	f, err := os.Open(path)
	if err != nil {
		report := &Report{
			RunID:     uuid.New().String(),
			Script:    path,
			Error:     fmt.Sprintf("failed to open script: %v", err),
			StartedAt: time.Now().UTC(),
		}
		l.observe(report)
		return report
	}
	defer f.Close()

	return l.Lint(path, f)
}

func (l *Linter) observe(report *Report) {
	if report.OK() {
		l.logger.Debug("script linted",
			"script", report.Script,
			"run_id", report.RunID,
			"blocks", len(report.Blocks),
		)
	} else {
		l.logger.Warn("script failed lint",
			"script", report.Script,
			"run_id", report.RunID,
			"failures", report.Failures(),
			"first_error", report.FirstError(),
		)
	}

	if l.metrics != nil {
		l.metrics.RecordReport(report)
	}
}
