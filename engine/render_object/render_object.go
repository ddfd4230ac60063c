// Package render_object implements the base render object: an ordered list of render
// batches with a cached bounding box, plus the clone and persistence lifecycle that
// specialized objects such as speed trees build on.
package render_object

import (
	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/archive"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_batch"
)

// Type identifies the concrete kind of a render object.
type Type int

const (
	// TypeMesh is a plain mesh whose bounds are the union of its batch bounds.
	TypeMesh Type = iota
	// TypeSpeedTree is a speed-tree object with pivot-aware leaf bounds and wind animation.
	TypeSpeedTree
)

// String returns the archive name of the type.
func (t Type) String() string {
	switch t {
	case TypeMesh:
		return "mesh"
	case TypeSpeedTree:
		return "speedtree"
	}
	return "unknown"
}

// Flag is a bitmask of per-object render flags.
type Flag uint32

const (
	// FlagVisible marks the object as drawn.
	FlagVisible Flag = 1 << iota
	// FlagCastShadow marks the object as a shadow caster.
	FlagCastShadow
	// FlagReceiveShadow marks the object as a shadow receiver.
	FlagReceiveShadow
)

// DefaultFlags is the flag set of a newly created object.
const DefaultFlags = FlagVisible | FlagReceiveShadow

// AnyIndex matches every LOD or switch index when stored on a batch entry.
const AnyIndex = -1

// RenderObject defines the interface shared by every render object kind. Derived state
// (the bounding box, and for speed trees the material set) is recomputed explicitly by
// the owner after bulk batch edits; mutations only mark it stale.
//
// Render objects are not safe for concurrent use.
type RenderObject interface {
	// Name returns the object identifier.
	Name() string

	// Type returns the concrete kind.
	Type() Type

	// Flags returns the render flags.
	Flags() Flag

	// RenderBatchCount returns the number of owned batches.
	RenderBatchCount() int

	// RenderBatch returns the batch at index i.
	//
	// Parameters:
	//   - i: the batch index
	//
	// Returns:
	//   - *render_batch.RenderBatch: the batch
	RenderBatch(i int) *render_batch.RenderBatch

	// RenderBatches returns the owned batches in insertion order.
	//
	// Returns:
	//   - []*render_batch.RenderBatch: a new slice of the batches
	RenderBatches() []*render_batch.RenderBatch

	// ActiveRenderBatches returns the batches selected by the current LOD and switch indices.
	//
	// Returns:
	//   - []*render_batch.RenderBatch: a new slice of the active batches
	ActiveRenderBatches() []*render_batch.RenderBatch

	// RecalcBoundingBox recomputes the cached bounding box from the batches.
	RecalcBoundingBox()

	// BoundingBox returns the cached bounding box as of the last recompute.
	//
	// Returns:
	//   - common.AABB: the object-space box
	BoundingBox() common.AABB

	// BoundingBoxDirty reports whether batches changed since the last recompute.
	//
	// Returns:
	//   - bool: true if the cached box may be stale
	BoundingBoxDirty() bool

	// Clone returns a new object of the same concrete kind. The batch list is copied;
	// geometry and materials are shared with the source.
	//
	// Returns:
	//   - RenderObject: the copy
	Clone() RenderObject

	// Load replaces the object's state with the contents of a and repairs derived state
	// that does not depend on geometry. Malformed batches are logged and skipped.
	//
	// Parameters:
	//   - a: the source archive
	//   - ctx: the serialization context resolving shared materials
	Load(a *archive.KeyedArchive, ctx *archive.SerializationContext)

	// Save writes the object's state into a.
	//
	// Parameters:
	//   - a: the destination archive
	//   - ctx: the serialization context that receives referenced materials
	Save(a *archive.KeyedArchive, ctx *archive.SerializationContext)
}
