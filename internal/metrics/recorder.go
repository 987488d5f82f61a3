// Package metrics exposes scan results as Prometheus metrics and writes them
// in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private registry; it never registers with the default
// registerer.
type Recorder struct {
	registry *prometheus.Registry

	scanned  prometheus.Counter
	matches  prometheus.Counter
	limit    prometheus.Gauge
	longest  prometheus.Gauge
	duration prometheus.Histogram
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		scanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "collatz_values_scanned_total",
			Help: "Start values evaluated by the range counter",
		}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "collatz_matches_total",
			Help: "Start values whose sequence has the target length",
		}),
		limit: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "collatz_scan_limit",
			Help: "Exclusive upper bound of the last scan",
		}),
		longest: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "collatz_longest_sequence_length",
			Help: "Longest sequence length seen in the last scan",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "collatz_scan_duration_seconds",
			Help:    "Wall time of a full range scan",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12), // 1ms to ~70min
		}),
	}
	r.registry.MustRegister(r.scanned, r.matches, r.limit, r.longest, r.duration)
	return r
}

// Scan is the subset of a scan summary the recorder needs.
type Scan struct {
	Limit         uint64
	Scanned       uint64
	Matches       int
	LongestLength int
	Duration      time.Duration
}

func (r *Recorder) RecordScan(s Scan) {
	r.scanned.Add(float64(s.Scanned))
	r.matches.Add(float64(s.Matches))
	r.limit.Set(float64(s.Limit))
	r.longest.Set(float64(s.LongestLength))
	r.duration.Observe(s.Duration.Seconds())
}

// Registry exposes the underlying registry as a gatherer.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile atomically writes the current metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
