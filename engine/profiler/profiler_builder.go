package profiler

import (
	"time"

	"github.com/Carmen-Shannon/oxy-forward/log"
)

// ProfilerBuilderOption configures a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often a sample is logged. Non-positive values are ignored.
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithLogger overrides the profiler logger.
func WithLogger(l log.Logger) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.logger = l
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.now = now
	}
}
