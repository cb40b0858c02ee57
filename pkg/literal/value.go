package literal

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the type of a literal value.
type Kind string

const (
	KindU64     Kind = "u64"
	KindBool    Kind = "bool"
	KindAddress Kind = "address"
	KindBytes   Kind = "bytes"
)

// Value is a typed transaction argument literal. Kind selects which
// payload field is meaningful; the others hold their zero values.
type Value struct {
	Kind    Kind
	U64     uint64
	Bool    bool
	Address Address
	Bytes   []byte
}

// U64 creates an unsigned integer value.
func U64(n uint64) Value {
	return Value{Kind: KindU64, U64: n}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// AddressValue creates an address value.
func AddressValue(a Address) Value {
	return Value{Kind: KindAddress, Address: a}
}

// BytesValue creates a byte-vector value.
func BytesValue(b []byte) Value {
	return Value{Kind: KindBytes, Bytes: b}
}

// Parse parses a whitespace-trimmed token as a self-contained literal.
// The sub-grammars are disjoint, so the attempt order is not observable:
// booleans, then decimal u64, then 0x addresses, then b"<hex>" vectors.
func Parse(s string) (Value, error) {
	switch s {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}

	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return U64(n), nil
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		addr, err := ParseAddress(s)
		if err != nil {
			return Value{}, err
		}
		return AddressValue(addr), nil
	}

	if strings.HasPrefix(s, `b"`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		raw, err := hex.DecodeString(s[2 : len(s)-1])
		if err != nil {
			return Value{}, fmt.Errorf("byte vector %q is not valid hex: %w", s, err)
		}
		return BytesValue(raw), nil
	}

	return Value{}, fmt.Errorf("cannot parse %q as transaction argument", s)
}

// String renders the value in its script form.
func (v Value) String() string {
	switch v.Kind {
	case KindU64:
		return strconv.FormatUint(v.U64, 10)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindAddress:
		return v.Address.String()
	case KindBytes:
		return `b"` + hex.EncodeToString(v.Bytes) + `"`
	}
	return fmt.Sprintf("<invalid literal kind %q>", string(v.Kind))
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindU64:
		return v.U64 == o.U64
	case KindBool:
		return v.Bool == o.Bool
	case KindAddress:
		return v.Address == o.Address
	case KindBytes:
		return bytes.Equal(v.Bytes, o.Bytes)
	}
	return false
}
