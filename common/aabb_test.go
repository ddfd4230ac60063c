package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyAABB(t *testing.T) {
	b := EmptyAABB()
	assert.True(t, b.IsEmpty())
	assert.False(t, b.ContainsPoint(Vec3{0, 0, 0}))
	assert.True(t, AABBFromPoints().IsEmpty())

	var zero AABB
	assert.False(t, zero.IsEmpty(), "zero value is a point box at the origin")
}

func TestAABBAccumulate(t *testing.T) {
	b := EmptyAABB()
	b.AddPoint(Vec3{1, -2, 3})
	assert.Equal(t, NewAABB(Vec3{1, -2, 3}, Vec3{1, -2, 3}), b)

	b.AddPoint(Vec3{-1, 4, 0})
	assert.Equal(t, NewAABB(Vec3{-1, -2, 0}, Vec3{1, 4, 3}), b)

	before := b
	b.AddAABB(EmptyAABB())
	assert.Equal(t, before, b)

	b.AddAABB(NewAABB(Vec3{0, 0, 0}, Vec3{5, 5, 5}))
	assert.Equal(t, NewAABB(Vec3{-1, -2, 0}, Vec3{5, 5, 5}), b)
}

func TestAABBContains(t *testing.T) {
	outer := NewAABB(Vec3{0, 0, 0}, Vec3{2, 2, 2})
	assert.True(t, outer.Contains(NewAABB(Vec3{0, 1, 0}, Vec3{2, 2, 1})))
	assert.False(t, outer.Contains(NewAABB(Vec3{1, 1, 1}, Vec3{3, 1, 1})))
	assert.True(t, outer.Contains(EmptyAABB()))
	assert.True(t, outer.ContainsPoint(Vec3{2, 0, 1}))
	assert.False(t, outer.ContainsPoint(Vec3{2.1, 0, 1}))
}

func TestAABBCenterSizeCorners(t *testing.T) {
	b := NewAABB(Vec3{-1, 0, 2}, Vec3{3, 4, 4})
	assert.Equal(t, Vec3{1, 2, 3}, b.Center())
	assert.Equal(t, Vec3{4, 4, 2}, b.Size())

	corners := b.Corners()
	assert.Equal(t, b, AABBFromPoints(corners[:]...))
	assert.Contains(t, corners[:], Vec3{3, 0, 4})
}

func TestAABBTransform(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, Vec3{10, 0, -5}, Vec3{0, 0, 0}, Vec3{2, 2, 2})

	b := NewAABB(Vec3{-1, 0, -1}, Vec3{1, 3, 1})
	assert.Equal(t, NewAABB(Vec3{8, 0, -7}, Vec3{12, 6, -3}), b.Transform(m))
	assert.True(t, EmptyAABB().Transform(m).IsEmpty())
}

func TestAABBTransformRotation(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, Vec3{}, Vec3{0, math32.Pi / 2, 0}, Vec3{1, 1, 1})

	out := NewAABB(Vec3{0, 0, 0}, Vec3{2, 1, 1}).Transform(m)
	require.False(t, out.IsEmpty())
	size := out.Size()
	assert.InDelta(t, 1, size[0], 1e-5)
	assert.InDelta(t, 1, size[1], 1e-5)
	assert.InDelta(t, 2, size[2], 1e-5)
}
