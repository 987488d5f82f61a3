package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordScanUpdatesMetrics(t *testing.T) {
	r := NewRecorder()
	r.RecordScan(Scan{Limit: 1000, Scanned: 999, Matches: 5, LongestLength: 179, Duration: 20 * time.Millisecond})

	if got := testutil.ToFloat64(r.scanned); got != 999 {
		t.Fatalf("unexpected scanned counter %v", got)
	}
	if got := testutil.ToFloat64(r.matches); got != 5 {
		t.Fatalf("unexpected matches counter %v", got)
	}
	if got := testutil.ToFloat64(r.limit); got != 1000 {
		t.Fatalf("unexpected limit gauge %v", got)
	}
	if got := testutil.ToFloat64(r.longest); got != 179 {
		t.Fatalf("unexpected longest gauge %v", got)
	}
	if got := testutil.CollectAndCount(r.duration); got != 1 {
		t.Fatalf("expected one histogram series, got %d", got)
	}
}

func TestRecordersDoNotShareState(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	a.RecordScan(Scan{Scanned: 10})
	if got := testutil.ToFloat64(b.scanned); got != 0 {
		t.Fatalf("recorders must be independent, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.RecordScan(Scan{Limit: 28, Scanned: 27, Matches: 1, LongestLength: 112, Duration: time.Millisecond})

	path := filepath.Join(t.TempDir(), "collatz.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("write textfile failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	body := string(raw)
	for _, want := range []string{
		"collatz_matches_total 1",
		"collatz_values_scanned_total 27",
		"collatz_scan_limit 28",
		"collatz_longest_sequence_length 112",
		"collatz_scan_duration_seconds_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("textfile missing %q:\n%s", want, body)
		}
	}
}

func TestWriteTextfileMissingDirFails(t *testing.T) {
	r := NewRecorder()
	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "collatz.prom")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
