package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []byte(`
accounts:
  alice:
    address: "0x1"
    balance: 1000000
    sequence_number: 3
  bob:
    address: "0x2"
genesis_accounts:
  association:
    address: "0xa550c18"
`)

	g, err := Load(data, "memory://manifest")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	alice, ok := g.Account("alice")
	if !ok {
		t.Fatal("Account(alice) not found")
	}
	if alice.Balance != 1000000 {
		t.Errorf("Balance = %d, want 1000000", alice.Balance)
	}
	if alice.SequenceNumber != 3 {
		t.Errorf("SequenceNumber = %d, want 3", alice.SequenceNumber)
	}

	if _, ok := g.GenesisAccount("association"); !ok {
		t.Error("GenesisAccount(association) not found")
	}
	if len(g.Accounts) != 2 {
		t.Errorf("len(Accounts) = %d, want 2", len(g.Accounts))
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "accounts: [not: a: map"},
		{"missing address", "accounts:\n  alice:\n    balance: 5\n"},
		{"bad address", "accounts:\n  alice:\n    address: \"xyz\"\n"},
		{"duplicate across tables", "accounts:\n  a:\n    address: \"0x1\"\ngenesis_accounts:\n  a:\n    address: \"0x2\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load([]byte(tt.data), "memory://bad"); err == nil {
				t.Errorf("Load() should fail for %s", tt.name)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	content := "accounts:\n  alice:\n    address: \"0x1\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	g, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if !g.Has("alice") {
		t.Error("Has(alice) = false, want true")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFile() should fail on a missing file")
	}
}
