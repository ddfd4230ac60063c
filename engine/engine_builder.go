package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-foliage/engine/scene"
)

// EngineBuilderOption is a functional option for configuring an Engine during construction.
type EngineBuilderOption func(*engine)

// WithProfiling sets whether the profiler starts enabled.
//
// Parameters:
//   - enabled: true to log performance stats
//
// Returns:
//   - EngineBuilderOption: functional option to set profiling
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfileInterval sets how often the profiler logs.
//
// Parameters:
//   - d: the reporting interval
//
// Returns:
//   - EngineBuilderOption: functional option to set the profiler interval
func WithProfileInterval(d time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.profileInterval = d
	}
}

// WithTickRate sets the tick frequency.
//
// Parameters:
//   - tps: ticks per second; non-positive values select 60
//
// Returns:
//   - EngineBuilderOption: functional option to set the tick rate
func WithTickRate(tps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickInterval(tps)
	}
}

// WithTickCallback sets the function called after each tick.
//
// Parameters:
//   - callback: the function to call with the tick's delta time in seconds
//
// Returns:
//   - EngineBuilderOption: functional option to set the tick callback
func WithTickCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}

// WithScene registers a scene under a key.
//
// Parameters:
//   - key: the scene key
//   - s: the scene
//
// Returns:
//   - EngineBuilderOption: functional option to add the scene
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithConfig applies the engine settings of a Config.
//
// Parameters:
//   - cfg: the configuration
//
// Returns:
//   - EngineBuilderOption: functional option applying the config
func WithConfig(cfg Config) EngineBuilderOption {
	return func(e *engine) {
		cfg = cfg.withDefaults()
		e.engineTickRate = tickInterval(cfg.TickRate)
		e.profilingEnabled.Store(cfg.Profiling)
		e.profileInterval = time.Duration(cfg.ProfileIntervalMs) * time.Millisecond
	}
}
