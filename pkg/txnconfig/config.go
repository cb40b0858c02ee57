package txnconfig

import (
	"errors"
	"fmt"
	"sort"

	"ledgerhq/tycho/pkg/literal"
	"ledgerhq/tycho/pkg/registry"
	"ledgerhq/tycho/pkg/stage"
)

// DefaultSender is the sender name assumed when a block carries no
// sender: directive. Whether an account by this name actually exists is
// the harness's concern, not the builder's.
const DefaultSender = "default"

// Config is the per-transaction option table built from a block's
// directives. It is immutable once built.
type Config struct {
	disabledStages map[stage.Stage]struct{}
	sender         string
	args           []literal.Value
	maxGas         *uint64
	sequenceNumber *uint64
}

// Build folds an ordered list of entries into a Config, resolving
// account references against the global registry. Every option may be
// set at most once; the first violation, unknown account, or duplicate
// disabled stage aborts the build.
func Build(global *registry.Global, entries []Entry) (*Config, error) {
	disabled := make(map[stage.Stage]struct{})
	var (
		sender         *string
		args           []literal.Value
		argsSet        bool
		maxGas         *uint64
		sequenceNumber *uint64
	)

	for _, entry := range entries {
		switch e := entry.(type) {
		case Sender:
			if sender != nil {
				return nil, errors.New("sender already set")
			}
			if !global.Has(e.Name) {
				return nil, fmt.Errorf("account '%s' does not exist", e.Name)
			}
			name := e.Name
			sender = &name

		case Arguments:
			if argsSet {
				return nil, errors.New("transaction arguments already set")
			}
			resolved := make([]literal.Value, 0, len(e.Args))
			for _, arg := range e.Args {
				switch a := arg.(type) {
				case AddressOf:
					data, ok := global.Account(a.Name)
					if !ok {
						return nil, fmt.Errorf("account '%s' does not exist", a.Name)
					}
					resolved = append(resolved, literal.AddressValue(data.Address))
				case SelfContained:
					resolved = append(resolved, a.Value)
				}
			}
			args = resolved
			argsSet = true

		case DisableStages:
			for _, st := range e.Stages {
				if _, dup := disabled[st]; dup {
					return nil, fmt.Errorf("duplicate stage '%s' in black list", st)
				}
				disabled[st] = struct{}{}
			}

		case MaxGas:
			if maxGas != nil {
				return nil, errors.New("max gas amount already set")
			}
			n := e.Amount
			maxGas = &n

		case SequenceNumber:
			if sequenceNumber != nil {
				return nil, errors.New("sequence number already set")
			}
			n := e.Number
			sequenceNumber = &n
		}
	}

	cfg := &Config{
		disabledStages: disabled,
		sender:         DefaultSender,
		args:           []literal.Value{},
		maxGas:         maxGas,
		sequenceNumber: sequenceNumber,
	}
	if sender != nil {
		cfg.sender = *sender
	}
	if argsSet {
		cfg.args = args
	}
	return cfg, nil
}

// Sender returns the sending account's name.
func (c *Config) Sender() string {
	return c.sender
}

// Args returns the resolved argument list in directive order. The
// returned slice must be treated as read-only.
func (c *Config) Args() []literal.Value {
	return c.args
}

// MaxGas returns the gas cap, if one was set.
func (c *Config) MaxGas() (uint64, bool) {
	if c.maxGas == nil {
		return 0, false
	}
	return *c.maxGas, true
}

// SequenceNumber returns the pinned sequence number, if one was set.
func (c *Config) SequenceNumber() (uint64, bool) {
	if c.sequenceNumber == nil {
		return 0, false
	}
	return *c.sequenceNumber, true
}

// IsStageDisabled reports whether the transaction is excluded from the
// given pipeline stage.
func (c *Config) IsStageDisabled(st stage.Stage) bool {
	_, ok := c.disabledStages[st]
	return ok
}

// DisabledStages returns the disabled stages in pipeline order.
func (c *Config) DisabledStages() []stage.Stage {
	out := make([]stage.Stage, 0, len(c.disabledStages))
	for st := range c.disabledStages {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
