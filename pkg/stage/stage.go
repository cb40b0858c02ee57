// Package stage defines the pipeline stages a transaction passes
// through in the functional test harness. Stages are ordered by their
// position in the pipeline and parse from the lowercase tokens used in
// no-run directives.
package stage

import "fmt"

// Stage identifies one phase of the transaction pipeline.
// The numeric order matches the pipeline order.
type Stage uint8

const (
	Parser Stage = iota
	Compiler
	Verifier
	Serializer
	Runtime
)

var names = [...]string{
	Parser:     "parser",
	Compiler:   "compiler",
	Verifier:   "verifier",
	Serializer: "serializer",
	Runtime:    "runtime",
}

// String returns the token form of the stage.
func (s Stage) String() string {
	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// Parse parses a stage from its token form.
func Parse(s string) (Stage, error) {
	for i, name := range names {
		if s == name {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("unrecognized stage '%s'", s)
}

// All returns all stages in pipeline order.
func All() []Stage {
	all := make([]Stage, len(names))
	for i := range names {
		all[i] = Stage(i)
	}
	return all
}
