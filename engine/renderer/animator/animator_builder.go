package animator

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/interpolation"
)

// AnimatorBuilderOption is a functional option for configuring an Animator during construction.
type AnimatorBuilderOption func(*animator)

// WithEnabled is an option builder that sets the initial enabled state.
//
// Parameters:
//   - on: whether wind animation starts enabled
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the enabled option to an animator
func WithEnabled(on bool) AnimatorBuilderOption {
	return func(a *animator) {
		a.enabled = on
	}
}

// WithWindDirection is an option builder that sets the horizontal wind direction.
// The direction is normalized; a zero vector is ignored.
//
// Parameters:
//   - dir: the wind direction in the XZ plane
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the direction option to an animator
func WithWindDirection(dir common.Vec2) AnimatorBuilderOption {
	return func(a *animator) {
		l := math32.Sqrt(dir[0]*dir[0] + dir[1]*dir[1])
		if l == 0 {
			return
		}
		a.direction = common.Vec2{dir[0] / l, dir[1] / l}
	}
}

// WithTrunkOscillation is an option builder that sets the trunk sway.
//
// Parameters:
//   - amplitude: the peak trunk displacement
//   - frequency: sway cycles per second
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the trunk option to an animator
func WithTrunkOscillation(amplitude, frequency float32) AnimatorBuilderOption {
	return func(a *animator) {
		a.trunk.amplitude = amplitude
		a.trunk.frequency = frequency
	}
}

// WithLeafOscillation is an option builder that sets the leaf flutter.
//
// Parameters:
//   - amplitude: the peak leaf displacement
//   - frequency: flutter cycles per second
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the leaf option to an animator
func WithLeafOscillation(amplitude, frequency float32) AnimatorBuilderOption {
	return func(a *animator) {
		a.leaf.amplitude = amplitude
		a.leaf.frequency = frequency
	}
}

// WithCurve is an option builder that selects the easing curve of a BackendTypeCurve
// animator. It has no effect on other backends.
//
// Parameters:
//   - typ: the easing curve
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the curve option to an animator
func WithCurve(typ interpolation.FuncType) AnimatorBuilderOption {
	return func(a *animator) {
		if b, ok := a.backend.(*curveBackend); ok {
			b.curve = interpolation.Function(typ)
		}
	}
}
