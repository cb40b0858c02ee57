// Package txnconfig parses the //! directives embedded in functional
// test scripts into a validated per-transaction configuration.
//
// Each transaction block in a test script may carry directives tuning
// how the harness handles it:
//
//	//! new-transaction
//	//! sender: alice
//	//! args: {{bob}}, 42, true
//	//! no-run: verifier, runtime
//	//! max-gas: 1000
//	//! sequence-number: 7
//
// # Basic Usage
//
// Parse directive lines one at a time, then build the config for the
// block once all entries are collected:
//
//	var entries []txnconfig.Entry
//	for _, line := range blockLines {
//	    entry, err := txnconfig.TryParseEntry(line)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if entry != nil {
//	        entries = append(entries, entry)
//	    }
//	}
//
//	cfg, err := txnconfig.Build(global, entries)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if cfg.IsStageDisabled(stage.Runtime) {
//	    // skip execution
//	}
//
// # Grammar
//
// Keyword matching ignores all whitespace inside the line, so
// "//! max-gas:1000" and "//!   max - gas :  1000" parse identically.
// Arguments are either self-contained literals (see package literal) or
// {{name}} references to registered accounts, resolved at build time.
//
// # Validation
//
// Build enforces that sender, args, max-gas and sequence-number are
// each set at most once per block, that no stage is disabled twice, and
// that every referenced account exists in the global registry. The
// first violation aborts the build.
package txnconfig
