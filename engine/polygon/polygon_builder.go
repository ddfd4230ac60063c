package polygon

import (
	"github.com/Carmen-Shannon/oxy-foliage/common"
)

// PolygonGroupBuilderOption is a function that configures a PolygonGroup during construction.
type PolygonGroupBuilderOption func(*PolygonGroup)

// WithCoords is an option builder that sets the vertex positions.
//
// Parameters:
//   - coords: one position per vertex
//
// Returns:
//   - PolygonGroupBuilderOption: a function that applies the coords option to a group
func WithCoords(coords ...common.Vec3) PolygonGroupBuilderOption {
	return func(pg *PolygonGroup) {
		pg.coords = coords
	}
}

// WithNormals is an option builder that sets the vertex normals.
//
// Parameters:
//   - normals: one normal per vertex
//
// Returns:
//   - PolygonGroupBuilderOption: a function that applies the normals option to a group
func WithNormals(normals ...common.Vec3) PolygonGroupBuilderOption {
	return func(pg *PolygonGroup) {
		pg.normals = normals
	}
}

// WithTexCoords is an option builder that sets the first UV set.
//
// Parameters:
//   - uvs: one UV per vertex
//
// Returns:
//   - PolygonGroupBuilderOption: a function that applies the UV option to a group
func WithTexCoords(uvs ...common.Vec2) PolygonGroupBuilderOption {
	return func(pg *PolygonGroup) {
		pg.texCoords = uvs
	}
}

// WithPivots is an option builder that sets the per-vertex pivot points.
// The count must match the vertex count or the pivot attribute is dropped.
//
// Parameters:
//   - pivots: one pivot per vertex
//
// Returns:
//   - PolygonGroupBuilderOption: a function that applies the pivots option to a group
func WithPivots(pivots ...common.Vec3) PolygonGroupBuilderOption {
	return func(pg *PolygonGroup) {
		pg.pivots = pivots
	}
}

// WithIndices is an option builder that sets the triangle indices.
//
// Parameters:
//   - indices: triangle list indices
//
// Returns:
//   - PolygonGroupBuilderOption: a function that applies the indices option to a group
func WithIndices(indices ...uint32) PolygonGroupBuilderOption {
	return func(pg *PolygonGroup) {
		pg.indices = indices
	}
}
