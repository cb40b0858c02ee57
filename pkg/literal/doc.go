// Package literal implements the self-contained transaction argument
// grammar used in functional test scripts.
//
// A literal is a value that fully describes itself, needing no further
// resolution against the test environment:
//
//	42              unsigned 64-bit integer
//	true, false     boolean
//	0x1, 0xcafe     account address (16 bytes, left-padded)
//	b"0a0b"         byte vector (hex encoded)
//
// # Basic Usage
//
// Parse a token into a typed value:
//
//	v, err := literal.Parse("0xcafe")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v.Kind, v.Address) // address 0xcafe
//
// Values render back to their script form via String, so a parsed value
// round-trips through the grammar:
//
//	v, _ := literal.Parse(`b"0a0b"`)
//	fmt.Println(v) // b"0a0b"
package literal
