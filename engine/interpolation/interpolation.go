// Package interpolation provides easing curves used to shape animation phases.
//
// Normalized curves map t in [0, 1] to a clamped value in [0, 1]. Ranged curves map
// a value between startVal and endVal onto the range [moveFrom, moveTo].
package interpolation

import (
	"github.com/chewxy/math32"
)

// Func is a normalized easing curve.
type Func func(t float32) float32

// FuncType names a normalized easing curve.
type FuncType int

const (
	Linear FuncType = iota
	EaseIn
	EaseOut
	EaseInEaseOut
	SineIn
	SineOut
	SineInSineOut
	ElasticIn
	ElasticOut
	ElasticInElasticOut
	BounceIn
	BounceOut
	BounceInBounceOut
	funcTypeCount
)

var functions = [funcTypeCount]Func{
	Linear:              LinearFunc,
	EaseIn:              EaseInFunc,
	EaseOut:             EaseOutFunc,
	EaseInEaseOut:       EaseInEaseOutFunc,
	SineIn:              SineInFunc,
	SineOut:             SineOutFunc,
	SineInSineOut:       SineInSineOutFunc,
	ElasticIn:           ElasticInFunc,
	ElasticOut:          ElasticOutFunc,
	ElasticInElasticOut: ElasticInElasticOutFunc,
	BounceIn:            BounceInFunc,
	BounceOut:           BounceOutFunc,
	BounceInBounceOut:   BounceInBounceOutFunc,
}

var funcNames = [funcTypeCount]string{
	"linear", "ease-in", "ease-out", "ease-in-ease-out",
	"sine-in", "sine-out", "sine-in-sine-out",
	"elastic-in", "elastic-out", "elastic-in-elastic-out",
	"bounce-in", "bounce-out", "bounce-in-bounce-out",
}

// String returns the config name of the curve.
func (f FuncType) String() string {
	if f < 0 || f >= funcTypeCount {
		return "unknown"
	}
	return funcNames[f]
}

// ParseFuncType looks up a curve by the name String returns.
//
// Parameters:
//   - name: the curve name, such as "sine-in-sine-out"
//
// Returns:
//   - FuncType: the curve
//   - bool: false if no curve has that name
func ParseFuncType(name string) (FuncType, bool) {
	for i, n := range funcNames {
		if n == name {
			return FuncType(i), true
		}
	}
	return Linear, false
}

// Function returns the curve for typ. Unknown types fall back to linear.
//
// Parameters:
//   - typ: the curve to look up
//
// Returns:
//   - Func: the normalized curve
func Function(typ FuncType) Func {
	if typ < 0 || typ >= funcTypeCount {
		return LinearFunc
	}
	return functions[typ]
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

// cubic evaluates the Bezier curve from 0 to 1 whose inner control points sit at p1 and p2.
func cubic(t, p1, p2 float32) float32 {
	p1, p2 = p1*3, p2*3
	t2 := t * t
	t3 := t2 * t
	return clamp01(t3*(1+p1-p2) + t2*(p2-2*p1) + p1*t)
}

func LinearFunc(t float32) float32 {
	return clamp01(t)
}

func EaseInFunc(t float32) float32 {
	return cubic(t, 0.04, 0.17)
}

func EaseOutFunc(t float32) float32 {
	return cubic(t, 0.83, 0.96)
}

func EaseInEaseOutFunc(t float32) float32 {
	return cubic(t, 0.08, 0.92)
}

func SineInFunc(t float32) float32 {
	return clamp01(math32.Sin((t-1)*math32.Pi/2) + 1)
}

func SineOutFunc(t float32) float32 {
	return clamp01(math32.Sin(t * math32.Pi / 2))
}

func SineInSineOutFunc(t float32) float32 {
	return clamp01(-0.5 * (math32.Cos(math32.Pi*t) - 1))
}

func ElasticInFunc(t float32) float32 {
	return clamp01(math32.Sin(13*t*math32.Pi/2) * math32.Pow(2, 10*(t-1)))
}

func ElasticOutFunc(t float32) float32 {
	return clamp01(math32.Sin(-13*(t+1)*math32.Pi/2)*math32.Pow(2, -10*t) + 1)
}

func ElasticInElasticOutFunc(t float32) float32 {
	if t < 0.5 {
		return clamp01(0.5 * math32.Sin(13*math32.Pi*t) * math32.Pow(2, 10*(2*t-1)))
	}
	return clamp01(0.5*math32.Sin(-13*math32.Pi/2*(2*t))*math32.Pow(2, -10*(2*t-1)) + 1)
}

func BounceOutFunc(t float32) float32 {
	const (
		a  = 4.0 / 11.0
		b  = 8.0 / 11.0
		c  = 9.0 / 10.0
		ca = 4356.0 / 361.0
		cb = 35442.0 / 1805.0
		cc = 16061.0 / 1805.0
	)
	t2 := t * t
	var v float32
	switch {
	case t < a:
		v = 7.5625 * t2
	case t < b:
		v = 9.075*t2 - 9.9*t + 3.4
	case t < c:
		v = ca*t2 - cb*t + cc
	default:
		v = 10.8*t2 - 20.52*t + 10.72
	}
	return clamp01(v)
}

func BounceInFunc(t float32) float32 {
	return clamp01(1 - BounceOutFunc(1-t))
}

func BounceInBounceOutFunc(t float32) float32 {
	if t < 0.5 {
		return clamp01(0.5 * (1 - BounceOutFunc(1-2*t)))
	}
	return clamp01(0.5*BounceOutFunc(2*t-1) + 0.5)
}

// LinearRange maps currentVal from [startVal, endVal] onto [moveFrom, moveTo] linearly.
// The result is not clamped.
//
// Parameters:
//   - moveFrom: the output at startVal
//   - moveTo: the output at endVal
//   - startVal: the start of the input range
//   - currentVal: the input
//   - endVal: the end of the input range
//
// Returns:
//   - float32: the interpolated output
func LinearRange(moveFrom, moveTo, startVal, currentVal, endVal float32) float32 {
	return moveFrom + (moveTo-moveFrom)*(currentVal-startVal)/(endVal-startVal)
}

// EaseInRange is LinearRange shaped by a slow-start Bezier curve.
func EaseInRange(moveFrom, moveTo, startVal, currentVal, endVal float32) float32 {
	return bezierRange(moveFrom, moveTo, (currentVal-startVal)/(endVal-startVal), 0.04, 0.17)
}

// EaseOutRange is LinearRange shaped by a slow-end Bezier curve.
func EaseOutRange(moveFrom, moveTo, startVal, currentVal, endVal float32) float32 {
	return bezierRange(moveFrom, moveTo, (currentVal-startVal)/(endVal-startVal), 0.83, 0.96)
}

// EaseInEaseOutRange is LinearRange shaped by a Bezier curve slow at both ends. Its
// control points are tighter than EaseInEaseOutFunc's.
func EaseInEaseOutRange(moveFrom, moveTo, startVal, currentVal, endVal float32) float32 {
	return bezierRange(moveFrom, moveTo, (currentVal-startVal)/(endVal-startVal), 0.02, 0.98)
}

func bezierRange(from, to, t, k1, k2 float32) float32 {
	p1 := from + (to-from)*k1
	p2 := from + (to-from)*k2
	u := 1 - t
	return from*u*u*u + p1*3*t*u*u + p2*3*t*t*u + to*t*t*t
}
