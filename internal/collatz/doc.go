// Package collatz evaluates Collatz sequence lengths and counts the start
// values below a limit whose sequence has exactly TargetLength terms.
//
// Responsibilities:
// - Evaluate sequence length (terms from the start value down to 1, inclusive).
// - Scan [1, limit) sequentially and summarize matches.
// - Parse and bound the limit accepted from the command line.
//
// Non-responsibilities:
// - Output formatting, logging, metrics export (see internal/report, internal/app).
//
// All arithmetic is uint64. Start values are bounded by MaxLimit (2^32, the
// original unsigned int domain); every trajectory from that range peaks below
// 2^64, so no intermediate value can wrap.
package collatz
