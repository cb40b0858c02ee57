package txnconfig

import (
	"fmt"
	"strings"

	"ledgerhq/tycho/pkg/literal"
)

// Argument is a partially parsed transaction argument: either a
// self-contained literal or a symbolic reference to a registered
// account, resolved against the global registry at build time.
// The variant set is closed; Build switches over it exhaustively.
type Argument interface {
	isArgument()
}

// SelfContained is a fully parsed literal argument.
type SelfContained struct {
	Value literal.Value
}

// AddressOf references an account by name; the account's address is
// substituted when the config is built.
type AddressOf struct {
	Name string
}

func (SelfContained) isArgument() {}
func (AddressOf) isArgument()     {}

// ParseArgument parses a whitespace-trimmed token as a transaction
// argument. The literal grammar takes priority over the {{name}}
// reference form.
func ParseArgument(s string) (Argument, error) {
	if v, err := literal.Parse(s); err == nil {
		return SelfContained{Value: v}, nil
	}
	if strings.HasPrefix(s, "{{") && strings.HasSuffix(s, "}}") {
		return AddressOf{Name: s[2 : len(s)-2]}, nil
	}
	return nil, fmt.Errorf("failed to parse '%s' as argument", s)
}
