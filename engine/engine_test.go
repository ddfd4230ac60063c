package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/game_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/polygon"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_batch"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-foliage/engine/scene"
	"github.com/Carmen-Shannon/oxy-foliage/engine/speed_tree"
)

func newTree() *speed_tree.SpeedTreeObject {
	leaf := material.NewMaterial(material.WithName("leaf"), material.WithTemplateName(material.TemplateSpeedTreeLeaf))
	return speed_tree.New(render_object.WithRenderBatches(
		render_batch.NewRenderBatch(
			render_batch.WithPolygonGroup(polygon.NewPolygonGroup(
				polygon.WithCoords(common.Vec3{1, 2, 0}),
				polygon.WithPivots(common.Vec3{0, 2, 0}),
			)),
			render_batch.WithMaterial(leaf),
		),
	))
}

func TestStepUpdatesActiveScenesOnly(t *testing.T) {
	cfg := Config{ComputeWorkers: 2, Wind: WindConfig{Enabled: true}}
	active := scene.NewScene("active", append(cfg.SceneOptions(), scene.WithActive(true))...)
	idle := scene.NewScene("idle", append(cfg.SceneOptions(), scene.WithActive(false))...)

	activeTree := newTree()
	idleTree := newTree()
	active.Add(game_object.NewGameObject(game_object.WithEnabled(true), game_object.WithRenderObject(activeTree)))
	idle.Add(game_object.NewGameObject(game_object.WithEnabled(true), game_object.WithRenderObject(idleTree)))

	var ticks []float32
	e := NewEngine(
		WithScene(1, active),
		WithScene(2, idle),
		WithTickCallback(func(dt float32) { ticks = append(ticks, dt) }),
	)

	assert.Equal(t, 1, e.Step(0.016))
	assert.Equal(t, []float32{0.016}, ticks)
	assert.False(t, activeTree.BoundingBoxDirty())
	assert.True(t, idleTree.BoundingBoxDirty())
	assert.True(t, activeTree.AnimationFlag())

	f, _ := activeTree.Materials()[0].Flag(speed_tree.FlagWindAnimation)
	assert.Equal(t, material.FlagOn, f)

	assert.Equal(t, 0, e.Step(0.016))
}

func TestSceneRegistry(t *testing.T) {
	e := NewEngine()
	s := scene.NewScene("a")
	e.AddScene(3, s)
	assert.Same(t, s, e.Scene(3))
	assert.Len(t, e.Scenes(), 1)

	e.RemoveScene(3)
	assert.Nil(t, e.Scene(3))
	assert.Empty(t, e.Scenes())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	var ticks atomic.Int32
	e := NewEngine(
		WithTickRate(500),
		WithTickCallback(func(float32) { ticks.Add(1) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		e.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestQuitStopsRun(t *testing.T) {
	e := NewEngine(WithConfig(Config{TickRate: 200, Profiling: true, ProfileIntervalMs: 10}))
	done := make(chan struct{})
	go func() {
		e.Run(context.Background())
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	e.SetTickRate(100)
	e.Quit()
	e.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(0))
	assert.Equal(t, time.Second/60, tickInterval(-1))
	assert.Equal(t, 10*time.Millisecond, tickInterval(100))
}
