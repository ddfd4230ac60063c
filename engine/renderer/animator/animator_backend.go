package animator

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/oxy-foliage/engine/interpolation"
)

// AnimatorBackendType identifies the waveform an Animator uses to turn a phase into sway.
type AnimatorBackendType int

const (
	// BackendTypeSine drives the sway with a plain sine wave.
	BackendTypeSine AnimatorBackendType = iota

	// BackendTypeCurve drives the sway with an easing curve played forward then backward,
	// giving gusts that linger at the extremes.
	BackendTypeCurve
)

// AnimatorBackend samples a waveform.
type AnimatorBackend interface {
	// Sample evaluates the waveform at a phase.
	//
	// Parameters:
	//   - phase: the cycle position, in [0, 1)
	//
	// Returns:
	//   - float32: the displacement, in [-1, 1]
	Sample(phase float32) float32
}

type sineBackend struct{}

func (sineBackend) Sample(phase float32) float32 {
	return math32.Sin(2 * math32.Pi * phase)
}

type curveBackend struct {
	curve interpolation.Func
}

func (b *curveBackend) Sample(phase float32) float32 {
	t := 2 * phase
	if phase >= 0.5 {
		t = 2 - 2*phase
	}
	return 2*b.curve(t) - 1
}

func newBackend(t AnimatorBackendType) AnimatorBackend {
	switch t {
	case BackendTypeCurve:
		return &curveBackend{curve: interpolation.Function(interpolation.SineInSineOut)}
	case BackendTypeSine:
		fallthrough
	default:
		return sineBackend{}
	}
}
