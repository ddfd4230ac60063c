package common

import (
	"github.com/chewxy/math32"
)

// AABB is an axis-aligned bounding box defined by its minimum and maximum corners.
// The zero value is a degenerate box at the origin, not an empty box; use EmptyAABB
// to start an accumulation.
type AABB struct {
	Min Vec3
	Max Vec3
}

// EmptyAABB returns a box with min set to +Inf and max set to -Inf.
// It acts as the identity for AddPoint and AddAABB.
//
// Returns:
//   - AABB: the empty box
func EmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// NewAABB returns a box spanning the given corners.
//
// Parameters:
//   - minCorner: the minimum corner
//   - maxCorner: the maximum corner
//
// Returns:
//   - AABB: the box
func NewAABB(minCorner, maxCorner Vec3) AABB {
	return AABB{Min: minCorner, Max: maxCorner}
}

// AABBFromPoints returns the smallest box containing every given point.
// With no points the result is empty.
//
// Parameters:
//   - points: the points to enclose
//
// Returns:
//   - AABB: the enclosing box
func AABBFromPoints(points ...Vec3) AABB {
	b := EmptyAABB()
	for _, p := range points {
		b.AddPoint(p)
	}
	return b
}

// IsEmpty reports whether the box encloses nothing (max < min on any axis).
func (b AABB) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// AddPoint grows the box to include p.
//
// Parameters:
//   - p: the point to include
func (b *AABB) AddPoint(p Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
}

// AddAABB grows the box to include o. An empty o leaves the box unchanged.
//
// Parameters:
//   - o: the box to include
func (b *AABB) AddAABB(o AABB) {
	if o.IsEmpty() {
		return
	}
	b.AddPoint(o.Min)
	b.AddPoint(o.Max)
}

// ContainsPoint reports whether p lies inside the box, boundary included.
func (b AABB) ContainsPoint(p Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Contains reports whether o lies entirely inside the box. Every box contains an empty box.
func (b AABB) Contains(o AABB) bool {
	if o.IsEmpty() {
		return true
	}
	return b.ContainsPoint(o.Min) && b.ContainsPoint(o.Max)
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return Vec3{
		(b.Min[0] + b.Max[0]) * 0.5,
		(b.Min[1] + b.Max[1]) * 0.5,
		(b.Min[2] + b.Max[2]) * 0.5,
	}
}

// Size returns the extent of the box along each axis.
func (b AABB) Size() Vec3 {
	return Sub(b.Max, b.Min)
}

// Corners returns the eight corners of the box.
func (b AABB) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
	}
}

// Transform returns the axis-aligned box enclosing this box after it is transformed
// by the column-major affine matrix m. An empty box stays empty.
//
// Parameters:
//   - m: the 4x4 model matrix (16 elements)
//
// Returns:
//   - AABB: the transformed box
func (b AABB) Transform(m []float32) AABB {
	out := EmptyAABB()
	if b.IsEmpty() {
		return out
	}
	for _, c := range b.Corners() {
		out.AddPoint(TransformPoint(m, c))
	}
	return out
}
