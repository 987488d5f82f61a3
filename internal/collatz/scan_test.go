package collatz

import "testing"

const emptyFingerprint = "xyw95Bsby3s4mt6f4FmFDnFVpQBAeJxBFNGzu2cX4dM"

func TestCountMatchesEmptyRanges(t *testing.T) {
	for _, limit := range []uint64{0, 1} {
		if got := CountMatches(limit); got != 0 {
			t.Fatalf("limit=%d: expected 0 matches, got %d", limit, got)
		}
	}
}

func TestCountMatchesSmallRanges(t *testing.T) {
	cases := []struct {
		limit uint64
		want  int
	}{
		{27, 0},
		{28, 1},
		{100, 1},
		{1000, 5},
		{10000, 54},
	}
	for _, tc := range cases {
		if got := CountMatches(tc.limit); got != tc.want {
			t.Fatalf("limit=%d: expected %d, got %d", tc.limit, tc.want, got)
		}
	}
}

func TestCountMatchesIsIdempotent(t *testing.T) {
	first := CountMatches(20000)
	second := CountMatches(20000)
	if first != second {
		t.Fatalf("expected identical counts, got %d then %d", first, second)
	}
}

func TestScanSummaryForEmptyRange(t *testing.T) {
	s := Scan(1)
	if s.Scanned != 0 || s.Matches != 0 {
		t.Fatalf("expected nothing scanned, got %+v", s)
	}
	if s.Longest != (Longest{}) {
		t.Fatalf("expected zero longest, got %+v", s.Longest)
	}
	if s.Target != TargetLength {
		t.Fatalf("unexpected target %d", s.Target)
	}
	if s.Fingerprint != emptyFingerprint {
		t.Fatalf("unexpected empty fingerprint %q", s.Fingerprint)
	}
}

func TestScanSummaryBelowOneThousand(t *testing.T) {
	s := Scan(1000)
	if s.Scanned != 999 {
		t.Fatalf("expected 999 scanned, got %d", s.Scanned)
	}
	if s.Matches != 5 {
		t.Fatalf("expected 5 matches, got %d", s.Matches)
	}
	if s.Longest != (Longest{Start: 871, Length: 179}) {
		t.Fatalf("unexpected longest %+v", s.Longest)
	}
	if want := Fingerprint([]uint64{27, 164, 165, 166, 992}); s.Fingerprint != want {
		t.Fatalf("fingerprint mismatch: expected %q, got %q", want, s.Fingerprint)
	}
	if s.Fingerprint != "7oDZPMzLsNBw7Ygp7vWyZZhVuizpCxMHAo6snDaJQ7mf" {
		t.Fatalf("unexpected fingerprint %q", s.Fingerprint)
	}
}

func TestScanLongestKeepsFirstStartOnTie(t *testing.T) {
	// 18 and 19 both have 21 terms, the longest below 20.
	s := Scan(20)
	if s.Longest != (Longest{Start: 18, Length: 21}) {
		t.Fatalf("tie must keep the first start, got %+v", s.Longest)
	}
}

func TestScanReportsProgress(t *testing.T) {
	var seen []Progress
	s := Scan(1000, WithProgress(250, func(p Progress) {
		seen = append(seen, p)
	}))
	if len(seen) != 3 {
		t.Fatalf("expected 3 progress callbacks, got %d", len(seen))
	}
	if seen[0].Scanned != 250 || seen[2].Scanned != 750 {
		t.Fatalf("unexpected progress points: %+v", seen)
	}
	if seen[2].Matches > s.Matches {
		t.Fatalf("progress matches %d exceed final %d", seen[2].Matches, s.Matches)
	}
	for _, p := range seen {
		if p.Limit != 1000 {
			t.Fatalf("unexpected progress limit %d", p.Limit)
		}
	}
}

func TestWithProgressZeroIntervalIsDisabled(t *testing.T) {
	called := false
	Scan(100, WithProgress(0, func(Progress) { called = true }))
	if called {
		t.Fatal("progress callback must not run with a zero interval")
	}
}

func TestScanOneMillionOracle(t *testing.T) {
	if testing.Short() {
		t.Skip("full range scan skipped in short mode")
	}
	s := Scan(1000000)
	if s.Matches != 2695 {
		t.Fatalf("expected 2695 matches below 1000000, got %d", s.Matches)
	}
	if s.Longest != (Longest{Start: 837799, Length: 525}) {
		t.Fatalf("unexpected longest %+v", s.Longest)
	}
	if s.Fingerprint != "8nUvPCJds4uG1kUVJUAPngqLVnmo1J4BezGWCxMyC134" {
		t.Fatalf("unexpected fingerprint %q", s.Fingerprint)
	}
}
