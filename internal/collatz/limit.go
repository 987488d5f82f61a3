package collatz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxLimit is the largest accepted limit. Start values stay within 32 bits,
// which keeps every trajectory below 2^64.
const MaxLimit uint64 = 1 << 32

var (
	ErrInvalidLimit    = errors.New("limit must be a base-10 non-negative integer")
	ErrLimitOutOfRange = errors.New("limit exceeds 4294967296")
)

// ParseLimit parses a command-line limit. Unlike atoi, malformed input is an
// error rather than zero.
func ParseLimit(raw string) (uint64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
		}
	}
	v, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrLimitOutOfRange, raw)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
	}
	if v > MaxLimit {
		return 0, fmt.Errorf("%w: %q", ErrLimitOutOfRange, raw)
	}
	return v, nil
}
