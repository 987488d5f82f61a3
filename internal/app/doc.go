// Package app runs a range count end to end: it drives the collatz scanner,
// logs start/progress/finish, records metrics, and emits the result.
//
// Responsibilities:
// - Turn a validated run config into a wired Runner.
// - Throttle progress logging so long scans stay quiet on stderr.
// - Render results and export the metrics textfile.
//
// Non-responsibilities:
// - Argument parsing and exit codes (cmd/collatz-count).
// - Sequence arithmetic (internal/collatz).
package app
