// Package animator drives wind animation for speed-tree objects. Each frame it advances
// the trunk and leaf oscillation phases and pushes the resulting parameters to every
// registered tree.
package animator

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/oxy-foliage/common"
)

// WindTarget is anything that accepts wind parameters, typically a speed-tree object.
type WindTarget interface {
	SetTreeAnimationParams(trunk, leaf common.Vec2)
	SetAnimationFlag(on bool)
}

// oscillation is one sway channel: amplitude in world units, frequency in cycles per second.
type oscillation struct {
	amplitude float32
	frequency float32
	phase     float32
}

func (o *oscillation) advance(dt float32) {
	o.phase += o.frequency * dt
	o.phase -= math32.Floor(o.phase)
}

// animator is the implementation of the Animator interface.
type animator struct {
	mu          *sync.Mutex
	backendType AnimatorBackendType
	backend     AnimatorBackend
	targets     []WindTarget
	enabled     bool
	direction   common.Vec2
	trunk       oscillation
	leaf        oscillation
	trunkParams common.Vec2
	leafParams  common.Vec2
}

// Animator defines the public interface for the wind animation system.
//
// The Animator owns no trees. It holds references to WindTargets and, while enabled,
// writes fresh oscillation parameters to each of them on every PrepareFrame call.
// Enabling or disabling it toggles the animation flag on every target. All methods
// are safe for concurrent use.
type Animator interface {
	// BackendType returns the waveform this animator uses.
	//
	// Returns:
	//   - AnimatorBackendType: the backend type
	BackendType() AnimatorBackendType

	// AddTarget registers a target. The target's animation flag is set to the
	// animator's enabled state.
	//
	// Parameters:
	//   - t: the target to drive
	AddTarget(t WindTarget)

	// RemoveTarget unregisters a target. Its parameters and flag are left as they are.
	//
	// Parameters:
	//   - t: the target to remove
	//
	// Returns:
	//   - bool: false if t was not registered
	RemoveTarget(t WindTarget) bool

	// TargetCount returns the number of registered targets.
	//
	// Returns:
	//   - int: the target count
	TargetCount() int

	// SetEnabled turns wind animation on or off for every target.
	//
	// Parameters:
	//   - on: whether wind animation runs
	SetEnabled(on bool)

	// Enabled reports whether wind animation runs.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// PrepareFrame advances the oscillation phases by deltaTime and, while enabled,
	// writes the new parameters to every target. A disabled animator does not advance.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	PrepareFrame(deltaTime float32)

	// Params returns the parameters written by the last PrepareFrame.
	//
	// Returns:
	//   - trunk: the trunk oscillation parameters
	//   - leaf: the leaf oscillation parameters
	Params() (trunk, leaf common.Vec2)
}

var _ Animator = &animator{}

// NewAnimator creates a new Animator with the given waveform, configured by the options.
// It starts disabled with a wind direction along +X.
//
// Parameters:
//   - backendType: the waveform to use (BackendTypeSine or BackendTypeCurve)
//   - options: variadic list of AnimatorBuilderOption functions to configure the Animator
//
// Returns:
//   - Animator: a new Animator
func NewAnimator(backendType AnimatorBackendType, options ...AnimatorBuilderOption) Animator {
	a := &animator{
		mu:          &sync.Mutex{},
		backendType: backendType,
		backend:     newBackend(backendType),
		direction:   common.Vec2{1, 0},
		trunk:       oscillation{amplitude: 0.05, frequency: 0.25},
		leaf:        oscillation{amplitude: 0.15, frequency: 1.5},
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

func (a *animator) BackendType() AnimatorBackendType {
	return a.backendType
}

func (a *animator) AddTarget(t WindTarget) {
	if t == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.targets = append(a.targets, t)
	t.SetAnimationFlag(a.enabled)
}

func (a *animator) RemoveTarget(t WindTarget) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, existing := range a.targets {
		if existing == t {
			a.targets = append(a.targets[:i], a.targets[i+1:]...)
			return true
		}
	}
	return false
}

func (a *animator) TargetCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.targets)
}

func (a *animator) SetEnabled(on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.enabled == on {
		return
	}
	a.enabled = on
	for _, t := range a.targets {
		t.SetAnimationFlag(on)
	}
}

func (a *animator) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

func (a *animator) PrepareFrame(deltaTime float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled {
		return
	}

	a.trunk.advance(deltaTime)
	a.leaf.advance(deltaTime)

	sway := a.trunk.amplitude * a.backend.Sample(a.trunk.phase)
	a.trunkParams = common.Vec2{a.direction[0] * sway, a.direction[1] * sway}
	a.leafParams = common.Vec2{
		a.leaf.amplitude * a.backend.Sample(a.leaf.phase),
		a.leaf.phase,
	}

	for _, t := range a.targets {
		t.SetTreeAnimationParams(a.trunkParams, a.leafParams)
	}
}

func (a *animator) Params() (trunk, leaf common.Vec2) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.trunkParams, a.leafParams
}
