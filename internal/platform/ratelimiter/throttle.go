package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttle admits at most one event per interval using a token bucket with a
// burst of one. The first event is always admitted.
type Throttle struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	dropped uint64
}

// NewThrottle returns nil for a non-positive interval; a nil Throttle admits
// everything, so callers gate on Enabled when "disabled" must mean "never".
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		return nil
	}
	return &Throttle{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Enabled reports whether the throttle was configured with a positive interval.
func (t *Throttle) Enabled() bool {
	return t != nil
}

// Allow reports whether one event can pass at now.
func (t *Throttle) Allow(now time.Time) bool {
	if t == nil {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.limiter.AllowN(now, 1) {
		return true
	}
	t.dropped++
	return false
}

// Dropped returns how many events were rejected so far.
func (t *Throttle) Dropped() uint64 {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}
