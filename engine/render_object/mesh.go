package render_object

import (
	"github.com/jinzhu/copier"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_batch"
	"github.com/Carmen-Shannon/oxy-foliage/internal/assert"
)

// Properties holds the plain per-object settings. CopyInto copies every field
// except the concrete type, which is fixed at construction.
type Properties struct {
	Name        string
	Type        Type `copier:"-"`
	Flags       Flag
	LodIndex    int
	SwitchIndex int
}

// BatchEntry is one owned batch together with the LOD and switch indices it is drawn at.
type BatchEntry struct {
	Batch       *render_batch.RenderBatch
	LodIndex    int
	SwitchIndex int
}

// Mesh is the base render object. Specialized objects embed it and replace the
// operations whose rules differ, such as RecalcBoundingBox.
type Mesh struct {
	props     Properties
	batches   []BatchEntry
	aabb      common.AABB
	aabbDirty bool
}

var _ RenderObject = &Mesh{}

// NewMesh creates a Mesh configured with the provided options.
//
// Parameters:
//   - options: variadic list of MeshBuilderOption functions
//
// Returns:
//   - *Mesh: the new mesh
func NewMesh(options ...MeshBuilderOption) *Mesh {
	m := &Mesh{}
	m.init(TypeMesh)
	for _, opt := range options {
		opt(m)
	}
	return m
}

// InitMesh prepares an embedded Mesh for a specialized object kind.
//
// Parameters:
//   - m: the embedded mesh to initialize
//   - t: the concrete type of the embedding object
//   - options: variadic list of MeshBuilderOption functions
func InitMesh(m *Mesh, t Type, options ...MeshBuilderOption) {
	m.init(t)
	for _, opt := range options {
		opt(m)
	}
}

func (m *Mesh) init(t Type) {
	m.props = Properties{
		Type:        t,
		Flags:       DefaultFlags,
		LodIndex:    0,
		SwitchIndex: 0,
	}
	m.batches = nil
	m.aabb = common.EmptyAABB()
	m.aabbDirty = false
}

func (m *Mesh) Name() string {
	return m.props.Name
}

// SetName sets the object identifier.
func (m *Mesh) SetName(name string) {
	m.props.Name = name
}

func (m *Mesh) Type() Type {
	return m.props.Type
}

func (m *Mesh) Flags() Flag {
	return m.props.Flags
}

// SetFlags replaces the render flags.
func (m *Mesh) SetFlags(f Flag) {
	m.props.Flags = f
}

// LodIndex returns the LOD level batches are selected at.
func (m *Mesh) LodIndex() int {
	return m.props.LodIndex
}

// SetLodIndex selects the LOD level used by ActiveRenderBatches.
func (m *Mesh) SetLodIndex(lod int) {
	m.props.LodIndex = lod
}

// SwitchIndex returns the switch variant batches are selected at.
func (m *Mesh) SwitchIndex() int {
	return m.props.SwitchIndex
}

// SetSwitchIndex selects the switch variant used by ActiveRenderBatches.
func (m *Mesh) SetSwitchIndex(sw int) {
	m.props.SwitchIndex = sw
}

// AddRenderBatch appends a batch drawn at the given LOD and switch indices (AnyIndex for all).
// The cached bounding box is marked stale; it is not recomputed here.
//
// Parameters:
//   - rb: the batch to take ownership of
//   - lodIndex: the LOD the batch belongs to, or AnyIndex
//   - switchIndex: the switch variant the batch belongs to, or AnyIndex
func (m *Mesh) AddRenderBatch(rb *render_batch.RenderBatch, lodIndex, switchIndex int) {
	if !assert.That(rb != nil, "AddRenderBatch: nil batch on %q", m.props.Name) {
		return
	}
	m.batches = append(m.batches, BatchEntry{Batch: rb, LodIndex: lodIndex, SwitchIndex: switchIndex})
	m.aabbDirty = true
}

// RemoveRenderBatch removes the first entry holding rb.
//
// Parameters:
//   - rb: the batch to remove
//
// Returns:
//   - bool: false if rb is not owned by this object
func (m *Mesh) RemoveRenderBatch(rb *render_batch.RenderBatch) bool {
	for i, e := range m.batches {
		if e.Batch == rb {
			m.batches = append(m.batches[:i], m.batches[i+1:]...)
			m.aabbDirty = true
			return true
		}
	}
	return false
}

// ClearRenderBatches drops every batch.
func (m *Mesh) ClearRenderBatches() {
	m.batches = nil
	m.aabbDirty = true
}

// BatchEntries returns a copy of the batch entries with their LOD and switch indices.
func (m *Mesh) BatchEntries() []BatchEntry {
	return append([]BatchEntry(nil), m.batches...)
}

func (m *Mesh) RenderBatchCount() int {
	return len(m.batches)
}

func (m *Mesh) RenderBatch(i int) *render_batch.RenderBatch {
	return m.batches[i].Batch
}

func (m *Mesh) RenderBatches() []*render_batch.RenderBatch {
	out := make([]*render_batch.RenderBatch, len(m.batches))
	for i, e := range m.batches {
		out[i] = e.Batch
	}
	return out
}

func (m *Mesh) ActiveRenderBatches() []*render_batch.RenderBatch {
	var out []*render_batch.RenderBatch
	for _, e := range m.batches {
		if e.LodIndex != AnyIndex && e.LodIndex != m.props.LodIndex {
			continue
		}
		if e.SwitchIndex != AnyIndex && e.SwitchIndex != m.props.SwitchIndex {
			continue
		}
		out = append(out, e.Batch)
	}
	return out
}

// RecalcBoundingBox resets the box and unions in each batch's precomputed box.
func (m *Mesh) RecalcBoundingBox() {
	box := common.EmptyAABB()
	for _, e := range m.batches {
		box.AddAABB(e.Batch.GetBoundingBox())
	}
	m.SetBoundingBox(box)
}

// SetBoundingBox stores a recomputed box and clears the stale mark. Embedding objects
// with their own geometry rules publish their result through it.
func (m *Mesh) SetBoundingBox(box common.AABB) {
	m.aabb = box
	m.aabbDirty = false
}

func (m *Mesh) BoundingBox() common.AABB {
	return m.aabb
}

func (m *Mesh) BoundingBoxDirty() bool {
	return m.aabbDirty
}

// Clone returns a new plain Mesh. Calling it on a Mesh embedded in a specialized
// object is a programmer error: the owning object's Clone must be used instead.
func (m *Mesh) Clone() RenderObject {
	assert.That(m.props.Type == TypeMesh, "Clone on the mesh embedded in a %s; clone the owning object", m.props.Type)
	return m.CloneMesh()
}

// CloneMesh returns a new plain Mesh holding a copy of this mesh's state.
//
// Returns:
//   - *Mesh: the copy
func (m *Mesh) CloneMesh() *Mesh {
	dst := NewMesh()
	m.CopyInto(dst)
	return dst
}

// CopyInto replaces dst's state with a copy of m's. Batches are cloned so that dst owns
// its own list; geometry and materials stay shared. dst keeps its concrete type.
//
// Parameters:
//   - dst: the mesh to overwrite
func (m *Mesh) CopyInto(dst *Mesh) {
	if !assert.That(dst != nil && dst != m, "CopyInto: invalid destination") {
		return
	}
	err := copier.Copy(&dst.props, &m.props)
	assert.That(err == nil, "CopyInto: copy properties: %v", err)

	dst.batches = make([]BatchEntry, len(m.batches))
	for i, e := range m.batches {
		dst.batches[i] = BatchEntry{Batch: e.Batch.Clone(), LodIndex: e.LodIndex, SwitchIndex: e.SwitchIndex}
	}
	dst.aabb = m.aabb
	dst.aabbDirty = m.aabbDirty
}
