package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUWindParamsSource is the canonical WGSL definition of the WindParams struct.
// Matches GPUWindParams layout exactly (16 bytes, std430 aligned).
//
//go:embed assets/wind_params.wgsl
var GPUWindParamsSource string

// Property names the wind uniform is assembled from.
const (
	PropertyTrunkOscillation = "trunkOscillationParams"
	PropertyLeafOscillation  = "leafOscillationParams"
)

// GPUWindParams is the GPU-aligned uniform for the speed-tree vertex shader.
// Matches the WGSL WindParams struct layout exactly (see GPUWindParamsSource).
// Size: 16 bytes (two vec2<f32>, std430 aligned).
type GPUWindParams struct {
	TrunkOscillation [2]float32 // offset 0: trunk sway amplitude and phase (8 bytes)
	LeafOscillation  [2]float32 // offset 8: leaf flutter amplitude and phase (8 bytes)
}

// WindParamsFromMaterial assembles the wind uniform from a material's stored oscillation
// properties. Missing properties stay zero.
//
// Parameters:
//   - m: the material to read
//
// Returns:
//   - GPUWindParams: the uniform contents
func WindParamsFromMaterial(m Material) GPUWindParams {
	var g GPUWindParams
	if p, ok := m.PropertyValue(PropertyTrunkOscillation); ok && len(p.Data) >= 2 {
		copy(g.TrunkOscillation[:], p.Data)
	}
	if p, ok := m.PropertyValue(PropertyLeafOscillation); ok && len(p.Data) >= 2 {
		copy(g.LeafOscillation[:], p.Data)
	}
	return g
}

// Size returns the size of the GPUWindParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUWindParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUWindParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload.
func (g *GPUWindParams) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.TrunkOscillation[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.TrunkOscillation[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.LeafOscillation[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.LeafOscillation[1]))
	return buf
}
