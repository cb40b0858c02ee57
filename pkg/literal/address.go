package literal

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the length of an account address in bytes.
const AddressLength = 16

// Address is a 16-byte account address.
type Address [AddressLength]byte

// ParseAddress parses an address from its script form: "0x" followed by
// up to 32 hex digits. Short forms are left-padded with zeros, so "0x1"
// and "0x0001" denote the same address.
func ParseAddress(s string) (Address, error) {
	var addr Address

	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return addr, fmt.Errorf("address %q must start with 0x", s)
	}

	digits := s[2:]
	if digits == "" {
		return addr, fmt.Errorf("address %q has no hex digits", s)
	}
	if len(digits) > 2*AddressLength {
		return addr, fmt.Errorf("address %q exceeds %d bytes", s, AddressLength)
	}

	// Odd-length hex strings get a leading zero before decoding.
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return addr, fmt.Errorf("address %q is not valid hex: %w", s, err)
	}

	copy(addr[AddressLength-len(raw):], raw)
	return addr, nil
}

// String returns the short canonical script form of the address:
// "0x" followed by lowercase hex with leading zeros removed.
// The zero address renders as "0x0".
func (a Address) String() string {
	full := hex.EncodeToString(a[:])
	trimmed := strings.TrimLeft(full, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return "0x" + trimmed
}

// Equal reports whether two addresses are the same.
func (a Address) Equal(b Address) bool {
	return a == b
}
