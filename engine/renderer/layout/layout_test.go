package layout

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/polygon"
)

func TestVertexBufferLayoutCoordOnly(t *testing.T) {
	l := VertexBufferLayout(polygon.VertexFormatCoord)
	assert.Equal(t, uint64(12), l.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, l.StepMode)
	require.Len(t, l.Attributes, 1)
	assert.Equal(t, wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationCoord}, l.Attributes[0])
}

func TestVertexBufferLayoutLeaf(t *testing.T) {
	f := polygon.VertexFormatCoord | polygon.VertexFormatTexCoord | polygon.VertexFormatPivot
	l := VertexBufferLayout(f)
	assert.Equal(t, uint64(32), l.ArrayStride)
	assert.Equal(t, Stride(f), l.ArrayStride)
	require.Len(t, l.Attributes, 3)

	assert.Equal(t, uint64(12), l.Attributes[1].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, l.Attributes[1].Format)
	assert.Equal(t, LocationTexCoord, l.Attributes[1].ShaderLocation)

	assert.Equal(t, uint64(20), l.Attributes[2].Offset)
	assert.Equal(t, LocationPivot, l.Attributes[2].ShaderLocation)
}

func TestVertexBufferLayoutEmpty(t *testing.T) {
	l := VertexBufferLayout(0)
	assert.Zero(t, l.ArrayStride)
	assert.Empty(t, l.Attributes)
}

func TestInterleave(t *testing.T) {
	pg := polygon.NewPolygonGroup(
		polygon.WithCoords(common.Vec3{1, 2, 3}, common.Vec3{4, 5, 6}),
		polygon.WithTexCoords(common.Vec2{0.5, 0.25}, common.Vec2{1, 0}),
		polygon.WithPivots(common.Vec3{0, 2, 0}, common.Vec3{0, 5, 0}),
		polygon.WithIndices(0, 1, 0),
	)
	got := Interleave(pg)
	assert.Equal(t, []float32{
		1, 2, 3, 0.5, 0.25, 0, 2, 0,
		4, 5, 6, 1, 0, 0, 5, 0,
	}, got)

	b := VertexBytes(pg)
	require.Len(t, b, len(got)*4)
	assert.Equal(t, float32(4), math.Float32frombits(binary.LittleEndian.Uint32(b[32:36])))

	assert.Len(t, IndexBytes(pg), 12)
}

func TestInterleaveEmpty(t *testing.T) {
	assert.Nil(t, Interleave(nil))
	assert.Nil(t, Interleave(polygon.NewPolygonGroup()))
	assert.Nil(t, VertexBytes(nil))
	assert.Nil(t, IndexBytes(nil))
}

func TestWGSLVertexInput(t *testing.T) {
	src := WGSLVertexInput("LeafVertex", polygon.VertexFormatCoord|polygon.VertexFormatPivot)
	assert.Equal(t, "struct LeafVertex {\n"+
		"    @location(0) position: vec3<f32>,\n"+
		"    @location(3) pivot: vec3<f32>,\n"+
		"};\n", src)
}
