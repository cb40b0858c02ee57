package harness

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ledgerhq/tycho/pkg/txnconfig"
)

// Block is one transaction block of a test script: the directives that
// configure it and the payload (source) lines that make it up.
type Block struct {
	// Line is the 1-based line number where the block starts.
	Line int

	// Entries are the block's parsed config directives, in order.
	Entries []txnconfig.Entry

	// Payload holds the block's non-directive, non-blank lines.
	Payload []string
}

// Split partitions a test script into transaction blocks at
// "//! new-transaction" boundaries. Directives before the first
// boundary belong to the first block. A malformed directive aborts the
// split with the line number attached.
func Split(r io.Reader) ([]Block, error) {
	var blocks []Block
	var cur Block
	started := false

	flush := func() {
		if started {
			blocks = append(blocks, cur)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if txnconfig.IsNewTransaction(line) {
			flush()
			cur = Block{Line: lineNo}
			started = true
			continue
		}

		trimmed := strings.TrimSpace(line)
		entry, err := txnconfig.TryParseEntry(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if entry == nil && trimmed == "" {
			continue
		}
		if !started {
			started = true
			cur.Line = lineNo
		}
		if entry != nil {
			cur.Entries = append(cur.Entries, entry)
		} else {
			cur.Payload = append(cur.Payload, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	flush()
	return blocks, nil
}

// SplitString is Split over an in-memory script.
func SplitString(s string) ([]Block, error) {
	return Split(strings.NewReader(s))
}
