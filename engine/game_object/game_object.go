package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_object"
)

type gameObject struct {
	id        uint64
	enabled   atomic.Bool
	ephemeral bool
	object    render_object.RenderObject

	position [3]float32
	rotation [3]float32
	scale    [3]float32
}

// GameObject defines the interface for a scene entity that places a render object in the world.
// Enabled and SetEnabled are safe for concurrent use; the transform setters are not.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object takes part in scene updates.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Ephemeral returns whether this object is ephemeral.
	// Ephemeral objects are updated for one scene tick and then dropped.
	//
	// Returns:
	//   - bool: true if ephemeral
	Ephemeral() bool

	// RenderObject returns the render object placed by this entity, or nil if not set.
	//
	// Returns:
	//   - render_object.RenderObject: the render object or nil
	RenderObject() render_object.RenderObject

	// Position returns the world position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - sx, sy, sz: scale factors
	Scale() (sx, sy, sz float32)

	// ModelMatrix builds the column-major model matrix from the current transform.
	//
	// Returns:
	//   - [16]float32: the model matrix
	ModelMatrix() [16]float32

	// WorldBoundingBox transforms the render object's cached bounding box into world space.
	// It is empty when no render object is set or the object's box is empty.
	//
	// Returns:
	//   - common.AABB: the world-space box
	WorldBoundingBox() common.AABB

	SetID(id uint64)

	SetEnabled(enabled bool)

	SetRenderObject(obj render_object.RenderObject)

	SetPosition(x, y, z float32)

	SetRotation(rx, ry, rz float32)

	SetScale(sx, sy, sz float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject instance with the provided options.
// Objects start disabled with unit scale.
//
// Parameters:
//   - options: variadic list of GameObjectBuilderOption functions
//
// Returns:
//   - GameObject: the new object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [3]float32{1, 1, 1},
	}
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Ephemeral() bool {
	return g.ephemeral
}

func (g *gameObject) RenderObject() render_object.RenderObject {
	return g.object
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) ModelMatrix() [16]float32 {
	var m [16]float32
	common.BuildModelMatrix(m[:], g.position, g.rotation, g.scale)
	return m
}

func (g *gameObject) WorldBoundingBox() common.AABB {
	if g.object == nil {
		return common.EmptyAABB()
	}
	m := g.ModelMatrix()
	return g.object.BoundingBox().Transform(m[:])
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetRenderObject(obj render_object.RenderObject) {
	g.object = obj
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}
