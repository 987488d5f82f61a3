package collatz

// Longest identifies the start value with the longest sequence seen in a scan.
type Longest struct {
	Start  uint64
	Length int
}

// Summary is the outcome of a single pass over [1, Limit).
type Summary struct {
	Limit       uint64
	Target      int
	Scanned     uint64
	Matches     int
	Longest     Longest
	Fingerprint string
}

// Progress is a running snapshot handed to a progress callback.
type Progress struct {
	Limit   uint64
	Scanned uint64
	Matches int
}

type scanConfig struct {
	every    uint64
	progress func(Progress)
}

// ScanOption customizes Scan.
type ScanOption func(*scanConfig)

// WithProgress calls fn after every `every` scanned values. fn runs on the
// scanning goroutine; a zero interval or nil fn disables the callback.
func WithProgress(every uint64, fn func(Progress)) ScanOption {
	return func(c *scanConfig) {
		if every == 0 || fn == nil {
			return
		}
		c.every = every
		c.progress = fn
	}
}

// CountMatches returns how many n in [1, limit) have SequenceLength(n) == TargetLength.
// limit <= 1 is an empty range.
func CountMatches(limit uint64) int {
	return Scan(limit).Matches
}

// Scan evaluates every start value in [1, limit) and summarizes the result.
func Scan(limit uint64, opts ...ScanOption) Summary {
	var cfg scanConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	fp := newFingerprinter()
	out := Summary{Limit: limit, Target: TargetLength}
	for n := uint64(1); n < limit; n++ {
		length := SequenceLength(n)
		if length == TargetLength {
			out.Matches++
			fp.add(n)
		}
		if length > out.Longest.Length {
			out.Longest = Longest{Start: n, Length: length}
		}
		out.Scanned++
		if cfg.progress != nil && out.Scanned%cfg.every == 0 {
			cfg.progress(Progress{Limit: limit, Scanned: out.Scanned, Matches: out.Matches})
		}
	}
	out.Fingerprint = fp.sum()
	return out
}
