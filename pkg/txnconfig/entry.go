package txnconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"ledgerhq/tycho/pkg/stage"
)

// directiveMarker opens every directive line in a test script.
const directiveMarker = "//!"

// Entry is one parsed directive line. Entries are transient: the
// harness collects them per transaction block and folds them into a
// Config with Build.
type Entry interface {
	isEntry()
}

// DisableStages excludes the transaction from the listed pipeline
// stages (the no-run: directive).
type DisableStages struct {
	Stages []stage.Stage
}

// Sender names the account sending the transaction.
type Sender struct {
	Name string
}

// Arguments carries the transaction's argument list, unresolved.
type Arguments struct {
	Args []Argument
}

// MaxGas caps the gas the transaction may spend.
type MaxGas struct {
	Amount uint64
}

// SequenceNumber pins the transaction's sequence number.
type SequenceNumber struct {
	Number uint64
}

func (DisableStages) isEntry()  {}
func (Sender) isEntry()         {}
func (Arguments) isEntry()      {}
func (MaxGas) isEntry()         {}
func (SequenceNumber) isEntry() {}

// IsNewTransaction reports whether the line marks the start of a new
// transaction block. Unlike entry parsing, only leading and trailing
// whitespace is trimmed; internal spacing is significant.
func IsNewTransaction(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, directiveMarker) {
		return false
	}
	return strings.TrimLeftFunc(s[len(directiveMarker):], unicode.IsSpace) == "new-transaction"
}

// ParseEntry parses one directive line into an Entry. All whitespace in
// the line is removed before keyword matching, so spacing never affects
// which directive a line denotes.
func ParseEntry(line string) (Entry, error) {
	s := strings.Join(strings.Fields(line), "")
	if !strings.HasPrefix(s, directiveMarker) {
		return nil, errors.New("txn config entry must start with //!")
	}
	s = s[len(directiveMarker):]

	switch {
	case strings.HasPrefix(s, "sender:"):
		name := s[len("sender:"):]
		if name == "" {
			return nil, errors.New("sender cannot be empty")
		}
		return Sender{Name: strings.ToLower(name)}, nil

	case strings.HasPrefix(s, "args:"):
		var args []Argument
		for _, tok := range splitList(s[len("args:"):]) {
			arg, err := ParseArgument(tok)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return Arguments{Args: args}, nil

	case strings.HasPrefix(s, "no-run:"):
		var stages []stage.Stage
		for _, tok := range splitList(s[len("no-run:"):]) {
			st, err := stage.Parse(tok)
			if err != nil {
				return nil, err
			}
			stages = append(stages, st)
		}
		return DisableStages{Stages: stages}, nil

	case strings.HasPrefix(s, "max-gas:"):
		n, err := strconv.ParseUint(s[len("max-gas:"):], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid max-gas amount: %w", err)
		}
		return MaxGas{Amount: n}, nil

	case strings.HasPrefix(s, "sequence-number:"):
		n, err := strconv.ParseUint(s[len("sequence-number:"):], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sequence number: %w", err)
		}
		return SequenceNumber{Number: n}, nil
	}

	return nil, fmt.Errorf("failed to parse '%s' as transaction config entry", s)
}

// TryParseEntry parses a line that may or may not be a directive.
// Lines that do not start with //! return (nil, nil); directive lines
// surface parse errors from ParseEntry.
func TryParseEntry(line string) (Entry, error) {
	if !strings.HasPrefix(line, directiveMarker) {
		return nil, nil
	}
	return ParseEntry(line)
}

// splitList splits a comma-separated list, trims each piece, and drops
// empty pieces.
func splitList(s string) []string {
	var out []string
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}
