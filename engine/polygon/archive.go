package polygon

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/archive"
)

// Archive keys used by Save and LoadPolygonGroup.
const (
	keyCoords    = "coords"
	keyNormals   = "normals"
	keyTexCoords = "texCoords"
	keyPivots    = "pivots"
	keyIndices   = "indices"
)

// Save writes the group's attributes into a as flat float lists.
//
// Parameters:
//   - a: the destination archive
func (pg *PolygonGroup) Save(a *archive.KeyedArchive) {
	a.SetFloat32Slice(keyCoords, flatten3(pg.coords))
	if pg.format.Has(VertexFormatNormal) {
		a.SetFloat32Slice(keyNormals, flatten3(pg.normals))
	}
	if pg.format.Has(VertexFormatTexCoord) {
		a.SetFloat32Slice(keyTexCoords, flatten2(pg.texCoords))
	}
	if pg.format.Has(VertexFormatPivot) {
		a.SetFloat32Slice(keyPivots, flatten3(pg.pivots))
	}
	if len(pg.indices) > 0 {
		a.SetUint32Slice(keyIndices, pg.indices)
	}
}

// LoadPolygonGroup reads a group written by Save. Optional attributes that are absent are skipped.
//
// Parameters:
//   - a: the source archive
//
// Returns:
//   - *PolygonGroup: the decoded group
//   - error: error if an attribute is malformed
func LoadPolygonGroup(a *archive.KeyedArchive) (*PolygonGroup, error) {
	var options []PolygonGroupBuilderOption

	coords, err := optionalFloats(a, keyCoords)
	if err != nil {
		return nil, err
	}
	c3, err := unflatten3(coords, keyCoords)
	if err != nil {
		return nil, err
	}
	options = append(options, WithCoords(c3...))

	normals, err := optionalFloats(a, keyNormals)
	if err != nil {
		return nil, err
	}
	if len(normals) > 0 {
		n3, err := unflatten3(normals, keyNormals)
		if err != nil {
			return nil, err
		}
		options = append(options, WithNormals(n3...))
	}

	uvs, err := optionalFloats(a, keyTexCoords)
	if err != nil {
		return nil, err
	}
	if len(uvs) > 0 {
		if len(uvs)%2 != 0 {
			return nil, fmt.Errorf("%q has %d values, not a multiple of 2: %w", keyTexCoords, len(uvs), archive.ErrTypeMismatch)
		}
		uv2 := make([]common.Vec2, len(uvs)/2)
		for i := range uv2 {
			uv2[i] = common.Vec2{uvs[2*i], uvs[2*i+1]}
		}
		options = append(options, WithTexCoords(uv2...))
	}

	pivots, err := optionalFloats(a, keyPivots)
	if err != nil {
		return nil, err
	}
	if len(pivots) > 0 {
		p3, err := unflatten3(pivots, keyPivots)
		if err != nil {
			return nil, err
		}
		options = append(options, WithPivots(p3...))
	}

	if a.Has(keyIndices) {
		indices, err := a.Uint32Slice(keyIndices)
		if err != nil {
			return nil, err
		}
		options = append(options, WithIndices(indices...))
	}

	return NewPolygonGroup(options...), nil
}

func optionalFloats(a *archive.KeyedArchive, key string) ([]float32, error) {
	v, err := a.Float32Slice(key)
	if errors.Is(err, archive.ErrKeyNotFound) {
		return nil, nil
	}
	return v, err
}

func flatten3(vs []common.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

func flatten2(vs []common.Vec2) []float32 {
	out := make([]float32, 0, len(vs)*2)
	for _, v := range vs {
		out = append(out, v[0], v[1])
	}
	return out
}

func unflatten3(fs []float32, key string) ([]common.Vec3, error) {
	if len(fs)%3 != 0 {
		return nil, fmt.Errorf("%q has %d values, not a multiple of 3: %w", key, len(fs), archive.ErrTypeMismatch)
	}
	out := make([]common.Vec3, len(fs)/3)
	for i := range out {
		out[i] = common.Vec3{fs[3*i], fs[3*i+1], fs[3*i+2]}
	}
	return out, nil
}
