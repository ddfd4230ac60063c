package render_object

import (
	"errors"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/archive"
	"github.com/Carmen-Shannon/oxy-foliage/engine/polygon"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_batch"
)

// Archive keys written by Save.
const (
	KeyName             = "name"
	KeyType             = "type"
	KeyFlags            = "flags"
	KeyLodIndex         = "lodIndex"
	KeySwitchIndex      = "switchIndex"
	KeyBatches          = "batches"
	KeyMaterial         = "material"
	KeyMaterialTemplate = "materialTemplate"
	KeySortingKey       = "sortingKey"
	KeyPolygonGroup     = "polygonGroup"
)

// TypeFromArchive reads the concrete kind recorded by Save, defaulting to TypeMesh.
//
// Parameters:
//   - a: the archive
//
// Returns:
//   - Type: the recorded type
func TypeFromArchive(a *archive.KeyedArchive) Type {
	switch a.String(KeyType, TypeMesh.String()) {
	case TypeSpeedTree.String():
		return TypeSpeedTree
	}
	return TypeMesh
}

// Load replaces the mesh's properties and batches with the archive contents. The
// bounding box is marked stale; the caller recomputes it with the rules of the
// concrete object kind.
func (m *Mesh) Load(a *archive.KeyedArchive, ctx *archive.SerializationContext) {
	if ctx == nil {
		ctx = archive.NewSerializationContext(nil, "")
	}

	m.props.Name = a.String(KeyName, m.props.Name)
	m.props.Flags = Flag(a.Int(KeyFlags, int(m.props.Flags)))
	m.props.LodIndex = a.Int(KeyLodIndex, m.props.LodIndex)
	m.props.SwitchIndex = a.Int(KeySwitchIndex, m.props.SwitchIndex)

	m.batches = nil
	m.aabb = common.EmptyAABB()
	m.aabbDirty = true

	entries, err := a.Archives(KeyBatches)
	if err != nil {
		if !errors.Is(err, archive.ErrKeyNotFound) {
			slog.Warn("render object has malformed batch list", "object", m.props.Name, "scene", ctx.ScenePath, "err", err)
		}
		return
	}

	for i, ba := range entries {
		pga, err := ba.Archive(KeyPolygonGroup)
		if err != nil {
			slog.Warn("skipping render batch", "object", m.props.Name, "index", i, "scene", ctx.ScenePath, "err", err)
			continue
		}
		pg, err := polygon.LoadPolygonGroup(pga)
		if err != nil {
			slog.Warn("skipping render batch", "object", m.props.Name, "index", i, "scene", ctx.ScenePath, "err", err)
			continue
		}
		rb := render_batch.NewRenderBatch(
			render_batch.WithPolygonGroup(pg),
			render_batch.WithMaterial(ctx.ResolveMaterial(ba.String(KeyMaterial, ""), ba.String(KeyMaterialTemplate, ""))),
			render_batch.WithSortingKey(uint32(ba.Int(KeySortingKey, 0))),
		)
		m.batches = append(m.batches, BatchEntry{
			Batch:       rb,
			LodIndex:    ba.Int(KeyLodIndex, AnyIndex),
			SwitchIndex: ba.Int(KeySwitchIndex, AnyIndex),
		})
	}
}

// Save writes the mesh's properties and batches. Referenced materials that the context
// registry does not know yet are registered, so a Load through the same context
// resolves them to the same instances.
func (m *Mesh) Save(a *archive.KeyedArchive, ctx *archive.SerializationContext) {
	a.SetString(KeyName, m.props.Name)
	a.SetString(KeyType, m.props.Type.String())
	a.SetInt(KeyFlags, int(m.props.Flags))
	a.SetInt(KeyLodIndex, m.props.LodIndex)
	a.SetInt(KeySwitchIndex, m.props.SwitchIndex)

	entries := make([]*archive.KeyedArchive, 0, len(m.batches))
	for _, e := range m.batches {
		ba := archive.NewKeyedArchive()
		ba.SetInt(KeyLodIndex, e.LodIndex)
		ba.SetInt(KeySwitchIndex, e.SwitchIndex)
		ba.SetInt(KeySortingKey, int(e.Batch.SortingKey()))

		if mat := e.Batch.GetMaterial(); mat != nil {
			ba.SetString(KeyMaterial, mat.Name())
			ba.SetString(KeyMaterialTemplate, mat.TemplateName())
			if ctx != nil && ctx.Materials != nil {
				if _, ok := ctx.Materials.Get(mat.Name()); !ok {
					_ = ctx.Materials.Add(mat)
				}
			}
		}

		pga := archive.NewKeyedArchive()
		if pg := e.Batch.GetPolygonGroup(); pg != nil {
			pg.Save(pga)
		}
		ba.SetArchive(KeyPolygonGroup, pga)
		entries = append(entries, ba)
	}
	a.SetArchives(KeyBatches, entries)
}
