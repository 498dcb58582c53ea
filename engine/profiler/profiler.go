package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-forward/engine/renderer"
	"github.com/Carmen-Shannon/oxy-forward/log"
)

// Profiler tracks frame rate, draw work and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	logger         log.Logger
	now            func() time.Time
	frameCount     int
	drawCalls      int
	lightsDropped  int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// Sample is one logged interval.
type Sample struct {
	FPS float64
	// DrawCallsPerFrame is the mean over the interval.
	DrawCallsPerFrame float64
	LightsDropped     int
	HeapMB            float64
	AllocRateMB       float64
	GCCount           uint32
	LastPauseUs       uint64
	MaxPauseUs        uint64
	SysMB             float64
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: variadic list of ProfilerBuilderOption
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		logger:         log.For(log.Profiler),
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame with the frame's statistics.
// Logs performance statistics when the update interval has elapsed.
//
// Parameters:
//   - stats: what the renderer did this frame
//
// Returns:
//   - Sample: the logged sample, zero when nothing was logged
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(stats renderer.FrameStats) (Sample, bool) {
	p.frameCount++
	p.drawCalls += stats.DrawCalls
	p.lightsDropped += stats.LightsDropped

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return Sample{}, false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Sample{
		FPS:               float64(p.frameCount) / elapsed.Seconds(),
		DrawCallsPerFrame: float64(p.drawCalls) / float64(p.frameCount),
		LightsDropped:     p.lightsDropped,
		HeapMB:            float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:             float64(p.memStats.Sys) / 1024 / 1024,
		AllocRateMB:       float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:           p.memStats.NumGC,
	}

	if gcCount := p.memStats.NumGC; gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses.
		s.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			s.MaxPauseUs = max(s.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logger.Infof("FPS: %.2f | Draws/frame: %.1f | Lights dropped: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		s.FPS, s.DrawCallsPerFrame, s.LightsDropped, s.HeapMB, s.AllocRateMB, s.GCCount, s.LastPauseUs, s.MaxPauseUs, s.SysMB)

	p.frameCount = 0
	p.drawCalls = 0
	p.lightsDropped = 0
	p.lastTime = currentTime
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return s, true
}
