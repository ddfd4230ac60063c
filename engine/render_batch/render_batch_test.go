package render_batch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/polygon"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
)

func TestNewRenderBatchAdoptsPolygonBox(t *testing.T) {
	pg := polygon.NewPolygonGroup(polygon.WithCoords(common.Vec3{0, 0, 0}, common.Vec3{2, 3, 4}))
	mat := material.NewMaterial(material.WithName("bark"))
	rb := NewRenderBatch(WithPolygonGroup(pg), WithMaterial(mat), WithSortingKey(5))

	assert.Same(t, pg, rb.GetPolygonGroup())
	assert.Same(t, mat, rb.GetMaterial())
	assert.Equal(t, pg.BoundingBox(), rb.GetBoundingBox())
	assert.Equal(t, uint32(5), rb.SortingKey())
}

func TestNewRenderBatchDefaults(t *testing.T) {
	rb := NewRenderBatch()
	assert.Nil(t, rb.GetPolygonGroup())
	assert.Nil(t, rb.GetMaterial())
	assert.True(t, rb.GetBoundingBox().IsEmpty())
}

func TestRenderBatchExplicitBox(t *testing.T) {
	pg := polygon.NewPolygonGroup(polygon.WithCoords(common.Vec3{0, 0, 0}))
	box := common.NewAABB(common.Vec3{-1, -1, -1}, common.Vec3{1, 1, 1})

	rb := NewRenderBatch(WithBoundingBox(box), WithPolygonGroup(pg))
	assert.Equal(t, box, rb.GetBoundingBox())

	other := polygon.NewPolygonGroup(polygon.WithCoords(common.Vec3{5, 5, 5}))
	rb.SetPolygonGroup(other)
	assert.Equal(t, other.BoundingBox(), rb.GetBoundingBox())

	rb.SetPolygonGroup(nil)
	assert.True(t, rb.GetBoundingBox().IsEmpty())
}

func TestRenderBatchCloneSharesPayload(t *testing.T) {
	pg := polygon.NewPolygonGroup(polygon.WithCoords(common.Vec3{1, 2, 3}))
	mat := material.NewMaterial()
	rb := NewRenderBatch(WithPolygonGroup(pg), WithMaterial(mat))

	c := rb.Clone()
	assert.NotSame(t, rb, c)
	assert.Same(t, pg, c.GetPolygonGroup())
	assert.Same(t, mat, c.GetMaterial())
	assert.Equal(t, rb.GetBoundingBox(), c.GetBoundingBox())

	c.SetMaterial(nil)
	assert.Same(t, mat, rb.GetMaterial())
}
