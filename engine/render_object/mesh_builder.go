package render_object

import (
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_batch"
)

// MeshBuilderOption is a function that configures a Mesh during construction.
type MeshBuilderOption func(*Mesh)

// WithName is an option builder that sets the object identifier.
//
// Parameters:
//   - name: the identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *Mesh) {
		m.props.Name = name
	}
}

// WithFlags is an option builder that sets the render flags.
//
// Parameters:
//   - f: the flag set
//
// Returns:
//   - MeshBuilderOption: a function that applies the flags option to a mesh
func WithFlags(f Flag) MeshBuilderOption {
	return func(m *Mesh) {
		m.props.Flags = f
	}
}

// WithRenderBatches is an option builder that appends batches drawn at every LOD and switch index.
//
// Parameters:
//   - batches: the batches to take ownership of
//
// Returns:
//   - MeshBuilderOption: a function that applies the batches option to a mesh
func WithRenderBatches(batches ...*render_batch.RenderBatch) MeshBuilderOption {
	return func(m *Mesh) {
		for _, rb := range batches {
			m.AddRenderBatch(rb, AnyIndex, AnyIndex)
		}
	}
}

// WithRenderBatch is an option builder that appends one batch drawn at the given LOD and switch indices.
//
// Parameters:
//   - rb: the batch to take ownership of
//   - lodIndex: the LOD the batch belongs to, or AnyIndex
//   - switchIndex: the switch variant the batch belongs to, or AnyIndex
//
// Returns:
//   - MeshBuilderOption: a function that applies the batch option to a mesh
func WithRenderBatch(rb *render_batch.RenderBatch, lodIndex, switchIndex int) MeshBuilderOption {
	return func(m *Mesh) {
		m.AddRenderBatch(rb, lodIndex, switchIndex)
	}
}
