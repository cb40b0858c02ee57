package txnconfig

import (
	"testing"

	"ledgerhq/tycho/pkg/literal"
)

func TestParseArgument_SelfContained(t *testing.T) {
	tests := []struct {
		input string
		want  literal.Value
	}{
		{"42", literal.U64(42)},
		{"true", literal.Bool(true)},
		{"false", literal.Bool(false)},
		{`b"cafe"`, literal.BytesValue([]byte{0xca, 0xfe})},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			arg, err := ParseArgument(tt.input)
			if err != nil {
				t.Fatalf("ParseArgument(%q) failed: %v", tt.input, err)
			}
			sc, ok := arg.(SelfContained)
			if !ok {
				t.Fatalf("ParseArgument(%q) = %T, want SelfContained", tt.input, arg)
			}
			if !sc.Value.Equal(tt.want) {
				t.Errorf("Value = %v, want %v", sc.Value, tt.want)
			}
		})
	}
}

func TestParseArgument_AddressOf(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"{{alice}}", "alice"},
		{"{{bob}}", "bob"},
		{"{{}}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			arg, err := ParseArgument(tt.input)
			if err != nil {
				t.Fatalf("ParseArgument(%q) failed: %v", tt.input, err)
			}
			ref, ok := arg.(AddressOf)
			if !ok {
				t.Fatalf("ParseArgument(%q) = %T, want AddressOf", tt.input, arg)
			}
			if ref.Name != tt.want {
				t.Errorf("Name = %q, want %q", ref.Name, tt.want)
			}
		})
	}
}

func TestParseArgument_LiteralWinsTies(t *testing.T) {
	// Any token the literal grammar accepts is self-contained, even if
	// it would also shape-match something else.
	arg, err := ParseArgument("0x1")
	if err != nil {
		t.Fatalf("ParseArgument(0x1) failed: %v", err)
	}
	if _, ok := arg.(SelfContained); !ok {
		t.Errorf("ParseArgument(0x1) = %T, want SelfContained", arg)
	}
}

func TestParseArgument_Errors(t *testing.T) {
	inputs := []string{"", "alice", "{{alice", "alice}}", "-3", "{alice}"}

	for _, input := range inputs {
		if _, err := ParseArgument(input); err == nil {
			t.Errorf("ParseArgument(%q) should fail", input)
		}
	}
}
