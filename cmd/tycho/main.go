// Tycho is a linter and watch daemon for ledger functional test
// scripts.
//
// Test scripts embed //! directives that configure how the harness
// runs each transaction block (sender, arguments, gas limits, skipped
// pipeline stages). Tycho parses and validates those directives against
// an account manifest before the scripts ever reach the harness.
//
// Usage:
//
//	# Lint a single script
//	tycho lint --accounts accounts.yaml --file tests/payments.mvir
//
//	# Lint a directory, JSON output for CI
//	tycho lint --accounts accounts.yaml --dir tests/ --format json
//
//	# Re-lint on every change, exposing Prometheus metrics
//	tycho watch --accounts accounts.yaml --dir tests/ --metrics-addr :9464
//
//	# Show recent lint runs recorded by the watch daemon
//	tycho history --db lint-history.db
//
//	# Show version information
//	tycho version
package main

func main() {
	Execute()
}
