package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"energilab/collatz-count/internal/collatz"
	"energilab/collatz-count/internal/metrics"
	"energilab/collatz-count/internal/platform/logging"
	"energilab/collatz-count/internal/platform/ratelimiter"
	"energilab/collatz-count/internal/report"
	"energilab/collatz-count/internal/runconfig"
)

const (
	componentName = "collatz"

	// progressStride is how many start values pass between progress checks.
	progressStride = 1 << 16
)

var ErrMetricsExport = errors.New("metrics export failed")

type Runner struct {
	cfg      runconfig.Config
	log      logging.Component
	metrics  *metrics.Recorder
	throttle *ratelimiter.Throttle
	now      func() time.Time
}

// NewRunner validates cfg and wires logging, progress throttling and metrics.
// A nil logger discards everything.
func NewRunner(cfg runconfig.Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		cfg:      cfg,
		log:      logging.With(logger, componentName),
		metrics:  metrics.NewRecorder(),
		throttle: ratelimiter.NewThrottle(cfg.ProgressInterval),
		now:      time.Now,
	}, nil
}

// Run scans [1, limit) and returns the result. It never fails; the scan has no
// external dependencies.
func (r *Runner) Run(limit uint64) report.Result {
	r.log.Info("scan", "scan started", "limit", limit, "target", collatz.TargetLength)

	var opts []collatz.ScanOption
	if r.throttle.Enabled() {
		// Consume the first token so the first progress line waits a full interval.
		r.throttle.Allow(r.now())
		opts = append(opts, collatz.WithProgress(progressStride, r.onProgress))
	}

	started := r.now()
	summary := collatz.Scan(limit, opts...)
	elapsed := r.now().Sub(started)

	r.metrics.RecordScan(metrics.Scan{
		Limit:         summary.Limit,
		Scanned:       summary.Scanned,
		Matches:       summary.Matches,
		LongestLength: summary.Longest.Length,
		Duration:      elapsed,
	})
	r.log.Info("scan", "scan finished",
		"limit", summary.Limit,
		"scanned", summary.Scanned,
		"matches", summary.Matches,
		"longest_start", summary.Longest.Start,
		"longest_length", summary.Longest.Length,
		"fingerprint", summary.Fingerprint,
		"duration_ms", elapsed.Milliseconds(),
		"progress_suppressed", r.throttle.Dropped(),
	)

	return report.Result{
		Limit:         summary.Limit,
		Target:        summary.Target,
		Scanned:       summary.Scanned,
		Matches:       summary.Matches,
		LongestStart:  summary.Longest.Start,
		LongestLength: summary.Longest.Length,
		Fingerprint:   summary.Fingerprint,
		Duration:      elapsed,
	}
}

func (r *Runner) onProgress(p collatz.Progress) {
	if !r.throttle.Allow(r.now()) {
		return
	}
	pct := 0.0
	if p.Limit > 1 {
		pct = float64(p.Scanned) * 100 / float64(p.Limit-1)
	}
	r.log.Info("scan", "scan progress",
		"scanned", p.Scanned,
		"matches", p.Matches,
		"percent", fmt.Sprintf("%.1f", pct),
	)
}

// Emit renders res to w in the configured format and, when configured, writes
// the metrics textfile.
func (r *Runner) Emit(w io.Writer, res report.Result) error {
	if err := report.Render(w, r.cfg.Output, res); err != nil {
		r.log.Error("emit", err)
		return err
	}
	if r.cfg.MetricsFile == "" {
		return nil
	}
	if err := r.metrics.WriteTextfile(r.cfg.MetricsFile); err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrMetricsExport, r.cfg.MetricsFile, err)
		r.log.Error("emit", err)
		return err
	}
	r.log.Debug("emit", "metrics written", "path", r.cfg.MetricsFile)
	return nil
}

// Metrics exposes the recorder, mainly for tests and embedding.
func (r *Runner) Metrics() *metrics.Recorder {
	return r.metrics
}
