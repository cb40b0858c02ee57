package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ledgerhq/tycho/pkg/literal"
	"ledgerhq/tycho/pkg/registry"
)

func lintRegistry(t *testing.T) *registry.Global {
	t.Helper()
	g := registry.New()
	addr, err := literal.ParseAddress("0x1")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddAccount("alice", &registry.AccountData{Address: addr}); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestLinter_Lint_OK(t *testing.T) {
	script := `//! sender: alice
//! args: {{alice}}, 42
main() {}

//! new-transaction
//! no-run: runtime
main() {}
`

	linter := NewLinter(lintRegistry(t), nil)
	report := linter.Lint("test.mvir", strings.NewReader(script))

	if !report.OK() {
		t.Fatalf("report not OK: %+v", report)
	}
	if report.RunID == "" {
		t.Error("RunID should be set")
	}
	if len(report.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d, want 2", len(report.Blocks))
	}
	if report.Blocks[0].Config == nil {
		t.Fatal("Blocks[0].Config is nil")
	}
	if got := report.Blocks[0].Config.Sender(); got != "alice" {
		t.Errorf("Sender() = %q, want %q", got, "alice")
	}
	if report.Failures() != 0 {
		t.Errorf("Failures() = %d, want 0", report.Failures())
	}
}

func TestLinter_Lint_BuildFailure(t *testing.T) {
	script := `//! sender: bob
main() {}
`

	linter := NewLinter(lintRegistry(t), nil)
	report := linter.Lint("test.mvir", strings.NewReader(script))

	if report.OK() {
		t.Fatal("report should not be OK")
	}
	if len(report.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(report.Blocks))
	}
	if !strings.Contains(report.Blocks[0].Error, "'bob'") {
		t.Errorf("block error %q should name the missing account", report.Blocks[0].Error)
	}
	if report.Blocks[0].Config != nil {
		t.Error("failed block should carry no config")
	}
	if got := report.FirstError(); !strings.Contains(got, "'bob'") {
		t.Errorf("FirstError() = %q, want the bob error", got)
	}
}

func TestLinter_Lint_SplitFailure(t *testing.T) {
	linter := NewLinter(lintRegistry(t), nil)
	report := linter.Lint("test.mvir", strings.NewReader("//! nonsense\n"))

	if report.OK() {
		t.Fatal("report should not be OK")
	}
	if report.Error == "" {
		t.Error("script-level error should be set")
	}
	if report.Failures() != 1 {
		t.Errorf("Failures() = %d, want 1", report.Failures())
	}
}

func TestLinter_LintFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.mvir")
	if err := os.WriteFile(path, []byte("//! sender: alice\nmain() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	linter := NewLinter(lintRegistry(t), nil)
	report := linter.LintFile(path)
	if !report.OK() {
		t.Fatalf("report not OK: %+v", report)
	}
	if report.Script != path {
		t.Errorf("Script = %q, want %q", report.Script, path)
	}
}

func TestLinter_LintFile_Missing(t *testing.T) {
	linter := NewLinter(lintRegistry(t), nil)
	report := linter.LintFile(filepath.Join(t.TempDir(), "nope.mvir"))
	if report.OK() {
		t.Fatal("report should not be OK for a missing file")
	}
	if report.Error == "" {
		t.Error("script-level error should be set")
	}
}
