package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Result is what a run reports back to the caller.
type Result struct {
	Limit         uint64        `json:"limit"`
	Target        int           `json:"target"`
	Scanned       uint64        `json:"scanned"`
	Matches       int           `json:"matches"`
	LongestStart  uint64        `json:"longest_start"`
	LongestLength int           `json:"longest_length"`
	Fingerprint   string        `json:"fingerprint"`
	Duration      time.Duration `json:"-"`
	DurationMS    int64         `json:"duration_ms"`
}

// Render writes r in the given format. The text format is the single line the
// C and Python counters print, so outputs can be diffed across implementations.
func Render(w io.Writer, format string, r Result) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		_, err := fmt.Fprintf(w, "Antal n < %d med længde %d: %d\n", r.Limit, r.Target, r.Matches)
		return err
	case "json":
		r.DurationMS = r.Duration.Milliseconds()
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Usage is the line printed when the limit argument is missing.
func Usage(w io.Writer, program string) error {
	_, err := fmt.Fprintf(w, "Brug: %s <maks_værdi>\n", program)
	return err
}
