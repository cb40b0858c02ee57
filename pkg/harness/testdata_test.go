package harness

import (
	"strings"
	"testing"

	"ledgerhq/tycho/pkg/registry"
	"ledgerhq/tycho/pkg/stage"
)

func TestLinter_LintFile_Testdata(t *testing.T) {
	global, err := registry.LoadFile("../../internal/testdata/accounts.yaml")
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	linter := NewLinter(global, nil)

	report := linter.LintFile("../../internal/testdata/valid.mvir")
	if !report.OK() {
		t.Fatalf("valid.mvir failed lint: %+v", report)
	}
	if len(report.Blocks) != 3 {
		t.Fatalf("len(Blocks) = %d, want 3", len(report.Blocks))
	}

	first := report.Blocks[0].Config
	if first.Sender() != "alice" {
		t.Errorf("block 0 Sender() = %q, want %q", first.Sender(), "alice")
	}
	if len(first.Args()) != 2 {
		t.Errorf("block 0 len(Args()) = %d, want 2", len(first.Args()))
	}
	if gas, ok := first.MaxGas(); !ok || gas != 1000 {
		t.Errorf("block 0 MaxGas() = %d,%v, want 1000,true", gas, ok)
	}

	second := report.Blocks[1].Config
	if !second.IsStageDisabled(stage.Verifier) || !second.IsStageDisabled(stage.Runtime) {
		t.Error("block 1 should disable verifier and runtime")
	}
	if sn, ok := second.SequenceNumber(); !ok || sn != 2 {
		t.Errorf("block 1 SequenceNumber() = %d,%v, want 2,true", sn, ok)
	}

	third := report.Blocks[2].Config
	if third.Sender() != "default" {
		t.Errorf("block 2 Sender() = %q, want %q", third.Sender(), "default")
	}

	report = linter.LintFile("../../internal/testdata/duplicate_gas.mvir")
	if report.OK() {
		t.Fatal("duplicate_gas.mvir should fail lint")
	}
	if got := report.FirstError(); !strings.Contains(got, "max gas amount already set") {
		t.Errorf("FirstError() = %q, want max-gas duplicate error", got)
	}
}
