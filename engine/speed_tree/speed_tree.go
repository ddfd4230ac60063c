// Package speed_tree implements the speed-tree render object: a mesh whose leaf batches
// carry per-vertex pivots, and whose materials receive wind-animation parameters.
//
// The object keeps two pieces of derived state. The material set is the deduplicated
// list of materials referenced by its batches and is rebuilt by RebuildMaterialSet after
// construction, clone, load, or a bulk batch edit. The bounding box is recomputed by
// RecalcBoundingBox, expanding pivot-authored leaf geometry to cover its sway envelope.
package speed_tree

import (
	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/archive"
	"github.com/Carmen-Shannon/oxy-foliage/engine/polygon"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_batch"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
)

// Names of the material properties and flag driven by the wind animation.
const (
	PropertyTrunkOscillation = material.PropertyTrunkOscillation
	PropertyLeafOscillation  = material.PropertyLeafOscillation
	FlagWindAnimation        = "WIND_ANIMATION"
)

// SpeedTreeObject is a render object for speed-tree foliage. It is not safe for concurrent use.
type SpeedTreeObject struct {
	render_object.Mesh

	// materials is rebuilt from the batches; the object does not own these.
	materials       []material.Material
	animationFlagOn bool
}

var _ render_object.RenderObject = &SpeedTreeObject{}

// New creates a SpeedTreeObject from mesh options and builds its material set.
//
// Parameters:
//   - options: variadic list of render_object.MeshBuilderOption functions
//
// Returns:
//   - *SpeedTreeObject: the new object
func New(options ...render_object.MeshBuilderOption) *SpeedTreeObject {
	s := &SpeedTreeObject{}
	render_object.InitMesh(&s.Mesh, render_object.TypeSpeedTree, options...)
	s.RebuildMaterialSet()
	return s
}

// RebuildMaterialSet rescans the batches and republishes the distinct non-nil materials
// in the order they are first referenced.
func (s *SpeedTreeObject) RebuildMaterialSet() {
	s.materials = s.materials[:0]
	seen := make(map[material.Material]struct{})
	for _, rb := range s.RenderBatches() {
		m := rb.GetMaterial()
		if m == nil {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		s.materials = append(s.materials, m)
	}
}

// Materials returns the material set as of the last rebuild.
//
// Returns:
//   - []material.Material: a new slice of the shared materials
func (s *SpeedTreeObject) Materials() []material.Material {
	return append([]material.Material(nil), s.materials...)
}

// SetRenderBatches replaces every batch in one step and rebuilds the material set.
// The bounding box is left stale for the owner to recompute.
//
// Parameters:
//   - batches: the new batches, drawn at every LOD and switch index
func (s *SpeedTreeObject) SetRenderBatches(batches ...*render_batch.RenderBatch) {
	s.ClearRenderBatches()
	for _, rb := range batches {
		s.AddRenderBatch(rb, render_object.AnyIndex, render_object.AnyIndex)
	}
	s.RebuildMaterialSet()
}

// RecalcBoundingBox resets the box and unions in each batch's contribution as computed
// by CalcBBoxForSpeedTreeGeometry.
func (s *SpeedTreeObject) RecalcBoundingBox() {
	box := common.EmptyAABB()
	for _, rb := range s.RenderBatches() {
		box.AddAABB(CalcBBoxForSpeedTreeGeometry(rb))
	}
	s.SetBoundingBox(box)
}

// SetTreeAnimationParams writes the trunk and leaf oscillation vectors to every material
// in the set. Every call writes; callers rate-limit.
//
// Parameters:
//   - trunk: the trunk oscillation parameters
//   - leaf: the leaf oscillation parameters
func (s *SpeedTreeObject) SetTreeAnimationParams(trunk, leaf common.Vec2) {
	for _, m := range s.materials {
		m.SetPropertyValue(PropertyTrunkOscillation, material.PropertyTypeFloatVec2, 1, trunk[:])
		m.SetPropertyValue(PropertyLeafOscillation, material.PropertyTypeFloatVec2, 1, leaf[:])
	}
}

// SetAnimationFlag switches the wind-animation shader flag on every material in the set.
// Setting the current value does nothing.
//
// Parameters:
//   - on: whether wind animation is enabled
func (s *SpeedTreeObject) SetAnimationFlag(on bool) {
	if s.animationFlagOn == on {
		return
	}
	s.animationFlagOn = on

	value := material.FlagOff
	if on {
		value = material.FlagOn
	}
	for _, m := range s.materials {
		m.SetFlag(FlagWindAnimation, value)
	}
}

// AnimationFlag reports whether wind animation is enabled.
func (s *SpeedTreeObject) AnimationFlag() bool {
	return s.animationFlagOn
}

// Clone returns a new SpeedTreeObject; see CloneTree.
func (s *SpeedTreeObject) Clone() render_object.RenderObject {
	return s.CloneTree()
}

// CloneTree returns a new SpeedTreeObject with a copied batch list that shares geometry
// and materials with s, and a rebuilt material set.
//
// Returns:
//   - *SpeedTreeObject: the copy
func (s *SpeedTreeObject) CloneTree() *SpeedTreeObject {
	dst := New()
	s.CopyInto(dst)
	return dst
}

// CopyInto replaces dst's state with a copy of s's and rebuilds dst's material set.
//
// Parameters:
//   - dst: the object to overwrite
func (s *SpeedTreeObject) CopyInto(dst *SpeedTreeObject) {
	s.Mesh.CopyInto(&dst.Mesh)
	dst.animationFlagOn = s.animationFlagOn
	dst.RebuildMaterialSet()
}

// Load restores the mesh state from a and rebuilds the material set. The bounding box
// is left stale until RecalcBoundingBox.
func (s *SpeedTreeObject) Load(a *archive.KeyedArchive, ctx *archive.SerializationContext) {
	s.Mesh.Load(a, ctx)
	s.RebuildMaterialSet()
}

// IsTreeLeafBatch reports whether rb is drawn with a speed-tree leaf material.
//
// Parameters:
//   - rb: the batch to classify
//
// Returns:
//   - bool: true for a non-nil batch whose material template is TemplateSpeedTreeLeaf
func IsTreeLeafBatch(rb *render_batch.RenderBatch) bool {
	if rb == nil {
		return false
	}
	m := rb.GetMaterial()
	return m != nil && m.TemplateName() == material.TemplateSpeedTreeLeaf
}

// CalcBBoxForSpeedTreeGeometry returns the bounding contribution of one batch.
//
// Non-leaf batches, and leaf batches without pivot data, contribute their precomputed
// box. For pivot-authored leaves every vertex contributes its pivot, its own position,
// and two points built from the pivot-to-vertex offset: pivot+offset, and pivot+offset
// with components rotated to (z, x, y). This is a loose bound on the leaf card swinging
// about its pivot and is intentionally not a swept-volume computation.
//
// Parameters:
//   - rb: the batch
//
// Returns:
//   - common.AABB: the contribution, empty for a nil batch or one without vertices
func CalcBBoxForSpeedTreeGeometry(rb *render_batch.RenderBatch) common.AABB {
	if rb == nil {
		return common.EmptyAABB()
	}
	if !IsTreeLeafBatch(rb) {
		return rb.GetBoundingBox()
	}

	pg := rb.GetPolygonGroup()
	if pg == nil || !pg.Format().Has(polygon.VertexFormatPivot) {
		return rb.GetBoundingBox()
	}

	box := common.EmptyAABB()
	for vi := 0; vi < pg.VertexCount(); vi++ {
		pivot := pg.Pivot(vi)
		coord := pg.Coord(vi)

		offsetY := common.Sub(coord, pivot)
		offsetX := offsetY
		offsetX[0], offsetX[2] = offsetX[2], offsetX[0]
		offsetX[1], offsetX[2] = offsetX[2], offsetX[1]

		box.AddPoint(pivot)
		box.AddPoint(common.Add(pivot, offsetX))
		box.AddPoint(common.Add(pivot, offsetY))
		box.AddPoint(coord)
	}
	return box
}
