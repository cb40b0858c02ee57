package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectScripts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mvir", "b.move", "c.test", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("main() {}\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := collectScripts("", dir)
	if err != nil {
		t.Fatalf("collectScripts() failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("len(files) = %d, want 3 (markdown excluded): %v", len(files), files)
	}
}

func TestCollectScripts_ExplicitFile(t *testing.T) {
	files, err := collectScripts("tests/x.mvir", "")
	if err != nil {
		t.Fatalf("collectScripts() failed: %v", err)
	}
	if len(files) != 1 || files[0] != "tests/x.mvir" {
		t.Errorf("files = %v, want [tests/x.mvir]", files)
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"lint", "watch", "history", "version"} {
		if !names[want] {
			t.Errorf("command %q is not registered", want)
		}
	}
}
