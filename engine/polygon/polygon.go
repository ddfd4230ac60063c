// Package polygon holds the CPU-side vertex payload shared by render batches.
package polygon

import (
	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/internal/assert"
)

// VertexFormat is a bitmask of the vertex attributes a PolygonGroup carries.
type VertexFormat uint32

const (
	// VertexFormatCoord marks per-vertex positions. Every usable group carries it.
	VertexFormatCoord VertexFormat = 1 << iota
	// VertexFormatNormal marks per-vertex normals.
	VertexFormatNormal
	// VertexFormatTexCoord marks the first UV set.
	VertexFormatTexCoord
	// VertexFormatPivot marks per-vertex pivot points, authored for wind animation.
	VertexFormatPivot
)

// Has reports whether every bit in attr is present in f.
func (f VertexFormat) Has(attr VertexFormat) bool {
	return f&attr == attr
}

// PolygonGroup is an indexed vertex buffer held on the CPU. Groups are shared by
// reference between render batches and their clones and are never deep-copied by
// the render-object layer.
type PolygonGroup struct {
	format    VertexFormat
	coords    []common.Vec3
	normals   []common.Vec3
	texCoords []common.Vec2
	pivots    []common.Vec3
	indices   []uint32
	aabb      common.AABB
}

// NewPolygonGroup creates a PolygonGroup configured with the provided options.
// The vertex format is derived from the attribute slices that were supplied, and
// the bounding box is computed from the coordinates.
//
// Parameters:
//   - options: variadic list of PolygonGroupBuilderOption functions
//
// Returns:
//   - *PolygonGroup: the new group
func NewPolygonGroup(options ...PolygonGroupBuilderOption) *PolygonGroup {
	pg := &PolygonGroup{}
	for _, opt := range options {
		opt(pg)
	}
	pg.format = pg.deriveFormat()
	pg.RecalcBoundingBox()
	return pg
}

func (pg *PolygonGroup) deriveFormat() VertexFormat {
	var f VertexFormat
	if len(pg.coords) > 0 {
		f |= VertexFormatCoord
	}
	if len(pg.normals) > 0 {
		assert.That(len(pg.normals) == len(pg.coords), "polygon group has %d normals for %d vertices", len(pg.normals), len(pg.coords))
		f |= VertexFormatNormal
	}
	if len(pg.texCoords) > 0 {
		assert.That(len(pg.texCoords) == len(pg.coords), "polygon group has %d uvs for %d vertices", len(pg.texCoords), len(pg.coords))
		f |= VertexFormatTexCoord
	}
	if len(pg.pivots) > 0 {
		if assert.That(len(pg.pivots) == len(pg.coords), "polygon group has %d pivots for %d vertices", len(pg.pivots), len(pg.coords)) {
			f |= VertexFormatPivot
		}
	}
	return f
}

// Format returns the vertex attribute mask.
func (pg *PolygonGroup) Format() VertexFormat {
	return pg.format
}

// VertexCount returns the number of vertices.
func (pg *PolygonGroup) VertexCount() int {
	return len(pg.coords)
}

// IndexCount returns the number of indices.
func (pg *PolygonGroup) IndexCount() int {
	return len(pg.indices)
}

// Coord returns the position of vertex i.
func (pg *PolygonGroup) Coord(i int) common.Vec3 {
	return pg.coords[i]
}

// Normal returns the normal of vertex i, or zero when the group has no normals.
func (pg *PolygonGroup) Normal(i int) common.Vec3 {
	if !pg.format.Has(VertexFormatNormal) {
		return common.Vec3{}
	}
	return pg.normals[i]
}

// TexCoord returns the UV of vertex i, or zero when the group has no UVs.
func (pg *PolygonGroup) TexCoord(i int) common.Vec2 {
	if !pg.format.Has(VertexFormatTexCoord) {
		return common.Vec2{}
	}
	return pg.texCoords[i]
}

// Pivot returns the pivot of vertex i. Asking for a pivot on a group without
// VertexFormatPivot is a programmer error; the zero vector is returned.
func (pg *PolygonGroup) Pivot(i int) common.Vec3 {
	if !assert.That(pg.format.Has(VertexFormatPivot), "polygon group has no pivot data") {
		return common.Vec3{}
	}
	return pg.pivots[i]
}

// Coords returns the position slice. The slice is shared; do not modify.
func (pg *PolygonGroup) Coords() []common.Vec3 {
	return pg.coords
}

// Normals returns the normal slice. The slice is shared; do not modify.
func (pg *PolygonGroup) Normals() []common.Vec3 {
	return pg.normals
}

// TexCoords returns the UV slice. The slice is shared; do not modify.
func (pg *PolygonGroup) TexCoords() []common.Vec2 {
	return pg.texCoords
}

// Pivots returns the pivot slice. The slice is shared; do not modify.
func (pg *PolygonGroup) Pivots() []common.Vec3 {
	return pg.pivots
}

// Indices returns the index slice. The slice is shared; do not modify.
func (pg *PolygonGroup) Indices() []uint32 {
	return pg.indices
}

// BoundingBox returns the box enclosing every vertex position. It is empty for a group without vertices.
func (pg *PolygonGroup) BoundingBox() common.AABB {
	return pg.aabb
}

// RecalcBoundingBox recomputes the box from the vertex positions.
func (pg *PolygonGroup) RecalcBoundingBox() {
	pg.aabb = common.AABBFromPoints(pg.coords...)
}
