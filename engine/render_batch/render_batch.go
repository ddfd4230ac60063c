// Package render_batch defines the drawable unit a render object is composed of:
// one polygon group drawn with one material.
package render_batch

import (
	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/polygon"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
)

// RenderBatch binds a shared PolygonGroup to a shared Material. The batch itself is
// owned by exactly one render object; its geometry and material are reference-shared.
type RenderBatch struct {
	polygonGroup *polygon.PolygonGroup
	material     material.Material
	aabb         common.AABB
	sortingKey   uint32
	explicitBox  bool
}

// NewRenderBatch creates a RenderBatch configured with the provided options. Unless a
// bounding box option is given, the box is taken from the polygon group (empty without one).
//
// Parameters:
//   - options: variadic list of RenderBatchBuilderOption functions
//
// Returns:
//   - *RenderBatch: the new batch
func NewRenderBatch(options ...RenderBatchBuilderOption) *RenderBatch {
	rb := &RenderBatch{aabb: common.EmptyAABB()}
	for _, opt := range options {
		opt(rb)
	}
	if !rb.explicitBox && rb.polygonGroup != nil {
		rb.aabb = rb.polygonGroup.BoundingBox()
	}
	return rb
}

// GetPolygonGroup returns the batch geometry, or nil.
func (rb *RenderBatch) GetPolygonGroup() *polygon.PolygonGroup {
	return rb.polygonGroup
}

// SetPolygonGroup replaces the geometry and adopts its bounding box.
// The owning render object must recompute its own bounding box afterwards.
func (rb *RenderBatch) SetPolygonGroup(pg *polygon.PolygonGroup) {
	rb.polygonGroup = pg
	rb.explicitBox = false
	if pg != nil {
		rb.aabb = pg.BoundingBox()
	} else {
		rb.aabb = common.EmptyAABB()
	}
}

// GetMaterial returns the batch material, or nil.
func (rb *RenderBatch) GetMaterial() material.Material {
	return rb.material
}

// SetMaterial replaces the material. A speed-tree owner must rebuild its material set afterwards.
func (rb *RenderBatch) SetMaterial(m material.Material) {
	rb.material = m
}

// GetBoundingBox returns the precomputed batch bounding box.
func (rb *RenderBatch) GetBoundingBox() common.AABB {
	return rb.aabb
}

// SortingKey returns the draw-order key.
func (rb *RenderBatch) SortingKey() uint32 {
	return rb.sortingKey
}

// Clone returns a new batch that shares this batch's geometry and material.
//
// Returns:
//   - *RenderBatch: the copy
func (rb *RenderBatch) Clone() *RenderBatch {
	nb := *rb
	return &nb
}
