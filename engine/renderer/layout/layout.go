// Package layout maps polygon vertex formats onto GPU vertex buffer layouts and packs
// polygon groups into interleaved vertex data matching those layouts.
package layout

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/polygon"
)

// Shader locations of each vertex attribute. Locations are fixed per attribute so that a
// shader can be written once for every format that carries the attributes it reads.
const (
	LocationCoord    uint32 = 0
	LocationNormal   uint32 = 1
	LocationTexCoord uint32 = 2
	LocationPivot    uint32 = 3
)

type attribute struct {
	attr     polygon.VertexFormat
	format   wgpu.VertexFormat
	size     uint64
	location uint32
	name     string
	wgslType string
}

// attributes is in interleave order.
var attributes = []attribute{
	{polygon.VertexFormatCoord, wgpu.VertexFormatFloat32x3, 12, LocationCoord, "position", "vec3<f32>"},
	{polygon.VertexFormatNormal, wgpu.VertexFormatFloat32x3, 12, LocationNormal, "normal", "vec3<f32>"},
	{polygon.VertexFormatTexCoord, wgpu.VertexFormatFloat32x2, 8, LocationTexCoord, "uv", "vec2<f32>"},
	{polygon.VertexFormatPivot, wgpu.VertexFormatFloat32x3, 12, LocationPivot, "pivot", "vec3<f32>"},
}

// VertexBufferLayout builds the interleaved vertex buffer layout for a vertex format.
// Attributes appear in the order position, normal, uv, pivot, skipping those the format
// lacks, with sequential byte offsets.
//
// Parameters:
//   - f: the vertex format
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout; ArrayStride is 0 for an empty format
func VertexBufferLayout(f polygon.VertexFormat) wgpu.VertexBufferLayout {
	attrs := make([]wgpu.VertexAttribute, 0, len(attributes))
	var offset uint64

	for _, a := range attributes {
		if !f.Has(a.attr) {
			continue
		}
		attrs = append(attrs, wgpu.VertexAttribute{
			Format:         a.format,
			Offset:         offset,
			ShaderLocation: a.location,
		})
		offset += a.size
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

// Stride returns the byte size of one interleaved vertex for a format.
func Stride(f polygon.VertexFormat) uint64 {
	var stride uint64
	for _, a := range attributes {
		if f.Has(a.attr) {
			stride += a.size
		}
	}
	return stride
}

// Interleave packs a polygon group's attributes into one float stream laid out as
// VertexBufferLayout(pg.Format()) describes.
//
// Parameters:
//   - pg: the polygon group
//
// Returns:
//   - []float32: the interleaved vertex data, or nil for a nil or empty group
func Interleave(pg *polygon.PolygonGroup) []float32 {
	if pg == nil || pg.VertexCount() == 0 {
		return nil
	}
	f := pg.Format()
	out := make([]float32, 0, pg.VertexCount()*int(Stride(f)/4))
	for i := range pg.VertexCount() {
		c := pg.Coord(i)
		out = append(out, c[:]...)
		if f.Has(polygon.VertexFormatNormal) {
			n := pg.Normal(i)
			out = append(out, n[:]...)
		}
		if f.Has(polygon.VertexFormatTexCoord) {
			uv := pg.TexCoord(i)
			out = append(out, uv[:]...)
		}
		if f.Has(polygon.VertexFormatPivot) {
			p := pg.Pivot(i)
			out = append(out, p[:]...)
		}
	}
	return out
}

// VertexBytes returns the interleaved vertex data of pg ready for a buffer upload.
//
// Parameters:
//   - pg: the polygon group
//
// Returns:
//   - []byte: the vertex bytes, or nil for a nil or empty group
func VertexBytes(pg *polygon.PolygonGroup) []byte {
	return common.SliceToBytes(Interleave(pg))
}

// IndexBytes returns the index data of pg ready for a uint32 index buffer upload.
func IndexBytes(pg *polygon.PolygonGroup) []byte {
	if pg == nil {
		return nil
	}
	return common.SliceToBytes(pg.Indices())
}

// WGSLVertexInput renders the WGSL vertex input struct matching VertexBufferLayout(f).
//
// Parameters:
//   - name: the struct name
//   - f: the vertex format
//
// Returns:
//   - string: the struct declaration
func WGSLVertexInput(name string, f polygon.VertexFormat) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "struct %s {\n", name)
	for _, a := range attributes {
		if f.Has(a.attr) {
			fmt.Fprintf(&sb, "    @location(%d) %s: %s,\n", a.location, a.name, a.wgslType)
		}
	}
	sb.WriteString("};\n")
	return sb.String()
}
