package profiler

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-forward/engine/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestProfilerTick(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(time.Second))

	for range 9 {
		clock.t = clock.t.Add(100 * time.Millisecond)
		_, logged := p.Tick(renderer.FrameStats{DrawCalls: 4})
		require.False(t, logged)
	}

	clock.t = clock.t.Add(100 * time.Millisecond)
	s, logged := p.Tick(renderer.FrameStats{DrawCalls: 14, LightsDropped: 2})
	require.True(t, logged)
	assert.InDelta(t, 10, s.FPS, 0.001)
	assert.InDelta(t, 5, s.DrawCallsPerFrame, 0.001)
	assert.Equal(t, 2, s.LightsDropped)

	clock.t = clock.t.Add(500 * time.Millisecond)
	_, logged = p.Tick(renderer.FrameStats{})
	assert.False(t, logged, "counters restart after a sample")
}
