package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/game_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/polygon"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_batch"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/animator"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-foliage/engine/speed_tree"
)

func newTree(leaf material.Material, height float32) *speed_tree.SpeedTreeObject {
	return speed_tree.New(render_object.WithRenderBatches(
		render_batch.NewRenderBatch(
			render_batch.WithPolygonGroup(polygon.NewPolygonGroup(polygon.WithCoords(common.Vec3{0, 0, 0}, common.Vec3{0.5, height, 0.5}))),
			render_batch.WithMaterial(material.NewMaterial(material.WithName("bark"))),
		),
		render_batch.NewRenderBatch(
			render_batch.WithPolygonGroup(polygon.NewPolygonGroup(
				polygon.WithCoords(common.Vec3{1, height, 0}),
				polygon.WithPivots(common.Vec3{0, height, 0}),
			)),
			render_batch.WithMaterial(leaf),
		),
	))
}

func leafMaterial() material.Material {
	return material.NewMaterial(material.WithName("leaf"), material.WithTemplateName(material.TemplateSpeedTreeLeaf))
}

func TestSceneAddAssignsIDs(t *testing.T) {
	s := NewScene("forest", WithComputeWorkers(2))
	a := game_object.NewGameObject()
	b := game_object.NewGameObject(game_object.WithID(42))

	idA := s.Add(a)
	idB := s.Add(b)
	assert.Equal(t, uint64(1), idA)
	assert.Equal(t, uint64(42), idB)
	assert.Equal(t, 2, s.Count())
	assert.Same(t, b, s.Get(42))
	assert.Nil(t, s.Get(7))

	objs := s.Objects()
	require.Len(t, objs, 2)
	assert.Equal(t, uint64(1), objs[0].ID())
	assert.Equal(t, uint64(42), objs[1].ID())

	s.Remove(1)
	s.Remove(1)
	assert.Equal(t, 1, s.Count())

	s.Clear()
	assert.Equal(t, 0, s.Count())
}

func TestSceneRegistersSharedTreeOnce(t *testing.T) {
	s := NewScene("forest")
	tree := newTree(leafMaterial(), 4)
	a := game_object.NewGameObject(game_object.WithRenderObject(tree))
	b := game_object.NewGameObject(game_object.WithRenderObject(tree))
	rock := game_object.NewGameObject(game_object.WithRenderObject(render_object.NewMesh()))

	s.Add(a)
	s.Add(b)
	s.Add(rock)
	assert.Equal(t, 1, s.Animator().TargetCount())

	s.Remove(a.ID())
	assert.Equal(t, 1, s.Animator().TargetCount())
	s.Remove(b.ID())
	assert.Equal(t, 0, s.Animator().TargetCount())
}

func TestSceneWithObjectsRegistersTargets(t *testing.T) {
	tree := newTree(leafMaterial(), 4)
	s := NewScene("forest", WithObjects(
		game_object.NewGameObject(game_object.WithRenderObject(tree)),
		game_object.NewGameObject(game_object.WithRenderObject(tree)),
		game_object.NewGameObject(game_object.WithRenderObject(newTree(leafMaterial(), 2))),
	))
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 2, s.Animator().TargetCount())

	s.Clear()
	assert.Equal(t, 0, s.Animator().TargetCount())
}

func TestSceneUpdateRecomputesDirtyBoxesInParallel(t *testing.T) {
	s := NewScene("forest", WithComputeWorkers(4))
	leaf := leafMaterial()

	const n = 300
	trees := make([]*speed_tree.SpeedTreeObject, n)
	for i := range trees {
		trees[i] = newTree(leaf, float32(i%7+1))
		s.Add(game_object.NewGameObject(
			game_object.WithEnabled(true),
			game_object.WithRenderObject(trees[i]),
			game_object.WithPosition(float32(i), 0, 0),
		))
	}
	disabled := newTree(leaf, 3)
	s.Add(game_object.NewGameObject(game_object.WithRenderObject(disabled)))

	assert.Equal(t, n, s.Update(1.0/60))
	for _, tree := range trees {
		require.False(t, tree.BoundingBoxDirty())
		assert.False(t, tree.BoundingBox().IsEmpty())
	}
	assert.True(t, disabled.BoundingBoxDirty())

	assert.Equal(t, 0, s.Update(1.0/60), "clean objects are not recomputed")

	var copies []*render_batch.RenderBatch
	for _, rb := range trees[1].RenderBatches() {
		copies = append(copies, rb.Clone())
	}
	trees[0].SetRenderBatches(copies...)
	assert.Equal(t, 1, s.Update(1.0/60))
	assert.Equal(t, trees[1].BoundingBox(), trees[0].BoundingBox())
}

func TestSceneUpdateLeafExpansion(t *testing.T) {
	s := NewScene("forest")
	tree := newTree(leafMaterial(), 2)
	s.Add(game_object.NewGameObject(game_object.WithEnabled(true), game_object.WithRenderObject(tree)))
	s.Update(0)

	// leaf vertex (1,2,0) pivoting at (0,2,0) also sweeps through (0,3,0)
	assert.True(t, tree.BoundingBox().ContainsPoint(common.Vec3{0, 3, 0}))
}

func TestSceneEphemeralObjects(t *testing.T) {
	s := NewScene("forest")
	tree := newTree(leafMaterial(), 5)
	s.Add(game_object.NewGameObject(
		game_object.WithEphemeral(true),
		game_object.WithEnabled(true),
		game_object.WithRenderObject(tree),
	))
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 1, s.CountEphemeral())
	assert.Equal(t, 0, s.Animator().TargetCount())

	assert.Equal(t, 1, s.Update(0))
	assert.False(t, tree.BoundingBoxDirty())
	assert.Equal(t, 0, s.CountEphemeral())
}

func TestSceneUpdateDrivesWind(t *testing.T) {
	leaf := leafMaterial()
	anim := animator.NewAnimator(animator.BackendTypeSine, animator.WithEnabled(true), animator.WithTrunkOscillation(1, 1))
	s := NewScene("forest", WithAnimator(anim))
	s.Add(game_object.NewGameObject(game_object.WithEnabled(true), game_object.WithRenderObject(newTree(leaf, 3))))

	flag, ok := leaf.Flag(speed_tree.FlagWindAnimation)
	require.True(t, ok)
	assert.Equal(t, material.FlagOn, flag)

	s.Update(0.25)
	trunk, _ := anim.Params()
	assert.Equal(t, [2]float32(trunk), material.WindParamsFromMaterial(leaf).TrunkOscillation)
	assert.InDelta(t, 1, trunk[0], 1e-5)
}

func TestSceneBounds(t *testing.T) {
	s := NewScene("forest")
	assert.True(t, s.Bounds().IsEmpty())

	mesh := render_object.NewMesh(render_object.WithRenderBatches(render_batch.NewRenderBatch(
		render_batch.WithPolygonGroup(polygon.NewPolygonGroup(polygon.WithCoords(common.Vec3{0, 0, 0}, common.Vec3{1, 1, 1}))),
	)))
	s.Add(game_object.NewGameObject(game_object.WithEnabled(true), game_object.WithRenderObject(mesh)))
	s.Add(game_object.NewGameObject(game_object.WithEnabled(true), game_object.WithRenderObject(mesh), game_object.WithPosition(10, 0, 0)))
	s.Add(game_object.NewGameObject(game_object.WithRenderObject(mesh), game_object.WithPosition(-50, 0, 0)))
	s.Update(0)

	assert.Equal(t, common.NewAABB(common.Vec3{0, 0, 0}, common.Vec3{11, 1, 1}), s.Bounds())
}

func TestSceneNameAndActive(t *testing.T) {
	s := NewScene("a", WithActive(true))
	assert.True(t, s.Active())
	s.SetActive(false)
	s.SetName("b")
	assert.False(t, s.Active())
	assert.Equal(t, "b", s.Name())
}
