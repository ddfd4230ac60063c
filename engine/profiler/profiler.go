// Package profiler reports tick rate, bounding box recompute volume and memory statistics.
package profiler

import (
	"log/slog"
	"runtime"
	"time"
)

// Stats is one reporting window's worth of measurements.
type Stats struct {
	TicksPerSecond   float64
	RecalcsPerSecond float64
	HeapMB           float64
	AllocRateMB      float64
	SysMB            float64
	GCCount          uint32
	LastPauseUs      uint64
	MaxPauseUs       uint64
}

// Profiler tracks tick rate and memory statistics for performance monitoring.
// Outputs stats to the structured log at a configurable interval.
type Profiler struct {
	tickCount      int
	recalcCount    int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
	now            func() time.Time
}

// NewProfiler creates a new Profiler reporting once per interval.
// A non-positive interval defaults to 1 second.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: interval,
		now:            time.Now,
	}
}

// RecordRecalcs adds n bounding box recomputes to the current window.
//
// Parameters:
//   - n: the number of recomputes performed this tick
func (p *Profiler) RecordRecalcs(n int) {
	p.recalcCount += n
}

// Last returns the stats of the most recently completed window.
//
// Returns:
//   - Stats: the last reported stats, zero before the first report
func (p *Profiler) Last() Stats {
	return p.last
}

// Tick should be called once per engine tick to track tick timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: tick rate, recompute rate, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.tickCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Stats{
		TicksPerSecond:   float64(p.tickCount) / elapsed.Seconds(),
		RecalcsPerSecond: float64(p.recalcCount) / elapsed.Seconds(),
		HeapMB:           float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:            float64(p.memStats.Sys) / 1024 / 1024,
		AllocRateMB:      float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:          p.memStats.NumGC,
	}

	if gcCount := p.memStats.NumGC; gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		s.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > s.MaxPauseUs {
				s.MaxPauseUs = pause
			}
		}
	}

	slog.Info("profiler",
		"tps", s.TicksPerSecond,
		"recalcs_per_sec", s.RecalcsPerSecond,
		"heap_mb", s.HeapMB,
		"alloc_rate_mb", s.AllocRateMB,
		"gc", s.GCCount,
		"gc_last_us", s.LastPauseUs,
		"gc_max_us", s.MaxPauseUs,
		"sys_mb", s.SysMB,
	)

	p.last = s
	p.tickCount = 0
	p.recalcCount = 0
	p.lastTime = currentTime
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
