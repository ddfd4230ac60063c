package archive

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
)

func sample() *KeyedArchive {
	a := NewKeyedArchive()
	a.SetString("name", "oak")
	a.SetInt("lodIndex", -1)
	a.SetBool("visible", true)
	a.SetFloat32("height", 12.5)
	a.SetFloat32Slice("coords", []float32{0, 1.5, -2})
	a.SetUint32Slice("indices", []uint32{0, 1, 2})

	child := NewKeyedArchive()
	child.SetString("material", "bark")
	a.SetArchive("batch", child)

	second := NewKeyedArchive()
	second.SetString("material", "leaf")
	a.SetArchives("batches", []*KeyedArchive{child, second})
	return a
}

func TestKeyedArchiveGetters(t *testing.T) {
	a := sample()
	assert.Equal(t, []string{"batch", "batches", "coords", "height", "indices", "lodIndex", "name", "visible"}, a.Keys())
	assert.Equal(t, 8, a.Len())
	assert.Equal(t, "oak", a.String("name", ""))
	assert.Equal(t, -1, a.Int("lodIndex", 0))
	assert.True(t, a.Bool("visible", false))
	assert.Equal(t, float32(12.5), a.Float32("height", 0))

	assert.Equal(t, "fallback", a.String("missing", "fallback"))
	assert.Equal(t, 7, a.Int("name", 7), "non-numeric value falls back to the default")

	a.Delete("name")
	assert.False(t, a.Has("name"))
}

func TestKeyedArchiveErrors(t *testing.T) {
	a := sample()

	_, err := a.Float32Slice("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, err = a.Float32Slice("name")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = a.Archive("coords")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = a.Archives("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	a.SetFloat32Slice("negative", []float32{-1})
	_, err = a.Uint32Slice("negative")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestCodecRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, sample(), format))

		got, err := Decode(&buf, format)
		require.NoError(t, err)

		assert.Equal(t, "oak", got.String("name", ""))
		assert.Equal(t, -1, got.Int("lodIndex", 0))
		assert.True(t, got.Bool("visible", false))
		assert.Equal(t, float32(12.5), got.Float32("height", 0))

		coords, err := got.Float32Slice("coords")
		require.NoError(t, err)
		assert.Equal(t, []float32{0, 1.5, -2}, coords)

		indices, err := got.Uint32Slice("indices")
		require.NoError(t, err)
		assert.Equal(t, []uint32{0, 1, 2}, indices)

		batch, err := got.Archive("batch")
		require.NoError(t, err)
		assert.Equal(t, "bark", batch.String("material", ""))

		batches, err := got.Archives("batches")
		require.NoError(t, err)
		require.Len(t, batches, 2)
		assert.Equal(t, "leaf", batches[1].String("material", ""))
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	a, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader("name = "), FormatTOML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("x"), Format(99))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatForPath(t *testing.T) {
	f, err := FormatForPath("trees/oak.TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	f, err = FormatForPath("trees/oak.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatForPath("trees/oak.gltf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSerializationContextResolveMaterial(t *testing.T) {
	ctx := NewSerializationContext(nil, "scene.toml")
	require.NotNil(t, ctx.Materials)

	assert.Nil(t, ctx.ResolveMaterial("", material.TemplateSpeedTreeLeaf))

	leaf := ctx.ResolveMaterial("leaf", material.TemplateSpeedTreeLeaf)
	require.NotNil(t, leaf)
	assert.Equal(t, "leaf", leaf.Name())
	assert.Equal(t, material.TemplateSpeedTreeLeaf, leaf.TemplateName())
	assert.Same(t, leaf, ctx.ResolveMaterial("leaf", "other"))
}
