package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 7
	}
	Identity(m)
	assert.Equal(t, Vec3{1, 2, 3}, TransformPoint(m, Vec3{1, 2, 3}))
	assert.Equal(t, float32(1), m[15])
	assert.Equal(t, float32(0), m[12])
}

func TestBuildModelMatrixTranslateScale(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, Vec3{1, 2, 3}, Vec3{}, Vec3{2, 3, 4})
	assert.Equal(t, Vec3{3, 5, 7}, TransformPoint(m, Vec3{1, 1, 1}))
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32(nil)))
	assert.Len(t, SliceToBytes([]float32{1, 2, 3}), 12)
	assert.Len(t, SliceToBytes([]Vec3{{1, 2, 3}, {4, 5, 6}}), 24)
}

func TestVecHelpers(t *testing.T) {
	assert.Equal(t, Vec3{5, 7, 9}, Add(Vec3{1, 2, 3}, Vec3{4, 5, 6}))
	assert.Equal(t, Vec3{3, 3, 3}, Sub(Vec3{4, 5, 6}, Vec3{1, 2, 3}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, Coalesce(0, 3, 4))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce[int]())
}
