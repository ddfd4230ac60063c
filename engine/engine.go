// Package engine runs a headless fixed-rate tick loop over a set of scenes.
package engine

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-foliage/engine/profiler"
	"github.com/Carmen-Shannon/oxy-foliage/engine/scene"
)

// engine is the implementation of the Engine interface.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	profiler         *profiler.Profiler
	profileInterval  time.Duration
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	scenesMu sync.RWMutex
	scenes   map[int]scene.Scene
}

// Engine defines the interface for the headless engine.
//
// Each tick updates every active scene in ascending key order, then calls the tick
// callback. Scenes may be added and removed while the engine runs.
type Engine interface {
	// EnableProfiler turns on periodic performance logging.
	EnableProfiler()

	// DisableProfiler turns off periodic performance logging.
	DisableProfiler()

	// SetTickRate changes the tick frequency. Takes effect on the next tick when running.
	//
	// Parameters:
	//   - tps: ticks per second; non-positive values select 60
	SetTickRate(tps float64)

	// SetTickCallback sets a function called after the scenes are updated on each tick.
	//
	// Parameters:
	//   - callback: the function to call, receiving the tick's delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddScene registers a scene under a key, replacing any scene already there.
	//
	// Parameters:
	//   - key: the scene key; lower keys update first
	//   - s: the scene
	AddScene(key int, s scene.Scene)

	// RemoveScene unregisters the scene under key.
	//
	// Parameters:
	//   - key: the scene key
	RemoveScene(key int)

	// Scene returns the scene under key, or nil.
	//
	// Parameters:
	//   - key: the scene key
	//
	// Returns:
	//   - scene.Scene: the scene or nil
	Scene(key int) scene.Scene

	// Scenes returns a copy of the scene map.
	//
	// Returns:
	//   - map[int]scene.Scene: the scenes by key
	Scenes() map[int]scene.Scene

	// Step runs one tick synchronously.
	//
	// Parameters:
	//   - deltaTime: the time step in seconds
	//
	// Returns:
	//   - int: the number of bounding boxes recomputed across all active scenes
	Step(deltaTime float32) int

	// Run ticks at the configured rate until Quit is called or ctx is done.
	//
	// Parameters:
	//   - ctx: cancels the loop when done
	Run(ctx context.Context)

	// Quit stops a running engine. Safe to call more than once.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine with the given options applied.
// The tick rate defaults to 60 per second.
//
// Parameters:
//   - options: variadic list of EngineBuilderOption functions
//
// Returns:
//   - Engine: the new engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		scenes:          make(map[int]scene.Scene),
		profileInterval: time.Second,
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}
	e.profiler = profiler.NewProfiler(e.profileInterval)
	return e
}

func (e *engine) Run(ctx context.Context) {
	if !e.running.CompareAndSwap(false, true) {
		slog.Warn("engine: Run called while already running")
		return
	}

	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit(ctx)
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.signalQuit()
}

func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("engine: tick goroutine recovered from panic", "panic", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.Step(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

func (e *engine) handleQuit(ctx context.Context) {
	defer e.wg.Done()
	select {
	case <-ctx.Done():
		e.signalQuit()
	case <-e.quitChannel:
	}
}

func (e *engine) Step(deltaTime float32) int {
	recalcs := 0
	for _, s := range e.activeScenes() {
		recalcs += s.Update(deltaTime)
	}

	if e.tickCallback != nil {
		e.tickCallback(deltaTime)
	}

	if e.profilingEnabled.Load() {
		e.profiler.RecordRecalcs(recalcs)
		e.profiler.Tick()
	}
	return recalcs
}

func (e *engine) activeScenes() []scene.Scene {
	e.scenesMu.RLock()
	defer e.scenesMu.RUnlock()

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var active []scene.Scene
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	return active
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

func (e *engine) SetTickRate(tps float64) {
	newRate := tickInterval(tps)

	if e.running.Load() {
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenesMu.Lock()
	defer e.scenesMu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.scenesMu.Lock()
	defer e.scenesMu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.scenesMu.RLock()
	defer e.scenesMu.RUnlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.scenesMu.RLock()
	defer e.scenesMu.RUnlock()

	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

func tickInterval(tps float64) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Duration(float64(time.Second) / tps)
}
