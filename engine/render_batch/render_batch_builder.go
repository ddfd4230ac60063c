package render_batch

import (
	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/polygon"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
)

// RenderBatchBuilderOption is a function that configures a RenderBatch during construction.
type RenderBatchBuilderOption func(*RenderBatch)

// WithPolygonGroup is an option builder that sets the batch geometry.
//
// Parameters:
//   - pg: the shared polygon group
//
// Returns:
//   - RenderBatchBuilderOption: a function that applies the geometry option to a batch
func WithPolygonGroup(pg *polygon.PolygonGroup) RenderBatchBuilderOption {
	return func(rb *RenderBatch) {
		rb.polygonGroup = pg
	}
}

// WithMaterial is an option builder that sets the batch material.
//
// Parameters:
//   - m: the shared material
//
// Returns:
//   - RenderBatchBuilderOption: a function that applies the material option to a batch
func WithMaterial(m material.Material) RenderBatchBuilderOption {
	return func(rb *RenderBatch) {
		rb.material = m
	}
}

// WithBoundingBox is an option builder that overrides the box derived from the geometry.
//
// Parameters:
//   - box: the precomputed bounding box
//
// Returns:
//   - RenderBatchBuilderOption: a function that applies the bounding box option to a batch
func WithBoundingBox(box common.AABB) RenderBatchBuilderOption {
	return func(rb *RenderBatch) {
		rb.aabb = box
		rb.explicitBox = true
	}
}

// WithSortingKey is an option builder that sets the draw-order key.
//
// Parameters:
//   - key: the sorting key
//
// Returns:
//   - RenderBatchBuilderOption: a function that applies the sorting key option to a batch
func WithSortingKey(key uint32) RenderBatchBuilderOption {
	return func(rb *RenderBatch) {
		rb.sortingKey = key
	}
}
