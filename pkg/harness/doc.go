// Package harness provides the script-level tooling around the
// directive parser: splitting a test script into transaction blocks,
// linting every block against an account registry, Prometheus metrics
// for lint runs, and a file watcher for continuous re-linting.
package harness
