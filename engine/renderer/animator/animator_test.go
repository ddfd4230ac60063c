package animator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/interpolation"
	"github.com/Carmen-Shannon/oxy-foliage/engine/polygon"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_batch"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-foliage/engine/speed_tree"
)

type mockTarget struct {
	mock.Mock
}

func (m *mockTarget) SetTreeAnimationParams(trunk, leaf common.Vec2) {
	m.Called(trunk, leaf)
}

func (m *mockTarget) SetAnimationFlag(on bool) {
	m.Called(on)
}

func newMockTarget() *mockTarget {
	m := &mockTarget{}
	m.On("SetTreeAnimationParams", mock.Anything, mock.Anything).Return()
	m.On("SetAnimationFlag", mock.Anything).Return()
	return m
}

func TestAnimatorDisabledDoesNotPush(t *testing.T) {
	target := newMockTarget()
	a := NewAnimator(BackendTypeSine)
	a.AddTarget(target)
	target.AssertCalled(t, "SetAnimationFlag", false)

	a.PrepareFrame(0.1)
	target.AssertNotCalled(t, "SetTreeAnimationParams", mock.Anything, mock.Anything)
	trunk, leaf := a.Params()
	assert.Equal(t, common.Vec2{}, trunk)
	assert.Equal(t, common.Vec2{}, leaf)
}

func TestAnimatorPushesEveryFrame(t *testing.T) {
	t1, t2 := newMockTarget(), newMockTarget()
	a := NewAnimator(BackendTypeSine, WithEnabled(true))
	a.AddTarget(t1)
	a.AddTarget(t2)
	t1.AssertCalled(t, "SetAnimationFlag", true)

	for i := 0; i < 3; i++ {
		a.PrepareFrame(1.0 / 60)
	}
	t1.AssertNumberOfCalls(t, "SetTreeAnimationParams", 3)
	t2.AssertNumberOfCalls(t, "SetTreeAnimationParams", 3)

	trunk, leaf := a.Params()
	t1.AssertCalled(t, "SetTreeAnimationParams", trunk, leaf)
}

func TestAnimatorSetEnabledTogglesFlagOnce(t *testing.T) {
	target := newMockTarget()
	a := NewAnimator(BackendTypeSine)
	a.AddTarget(target)

	a.SetEnabled(true)
	a.SetEnabled(true)
	assert.True(t, a.Enabled())
	a.SetEnabled(false)

	target.AssertNumberOfCalls(t, "SetAnimationFlag", 3)
}

func TestAnimatorRemoveTarget(t *testing.T) {
	target := newMockTarget()
	a := NewAnimator(BackendTypeSine, WithEnabled(true))
	a.AddTarget(target)
	a.AddTarget(nil)
	assert.Equal(t, 1, a.TargetCount())

	assert.True(t, a.RemoveTarget(target))
	assert.False(t, a.RemoveTarget(target))
	a.PrepareFrame(0.5)
	target.AssertNotCalled(t, "SetTreeAnimationParams", mock.Anything, mock.Anything)
}

func TestAnimatorTrunkFollowsWindDirection(t *testing.T) {
	a := NewAnimator(BackendTypeSine,
		WithEnabled(true),
		WithWindDirection(common.Vec2{0, 3}),
		WithTrunkOscillation(2, 1),
		WithLeafOscillation(0.5, 2),
	)
	a.PrepareFrame(0.25)

	trunk, leaf := a.Params()
	assert.InDelta(t, 0, trunk[0], 1e-5)
	assert.InDelta(t, 2, trunk[1], 1e-5)
	assert.InDelta(t, 0, leaf[0], 1e-5, "leaf phase is at half a cycle")
	assert.InDelta(t, 0.5, leaf[1], 1e-5)
}

func TestCurveBackend(t *testing.T) {
	a := NewAnimator(BackendTypeCurve, WithCurve(interpolation.Linear))
	assert.Equal(t, BackendTypeCurve, a.BackendType())

	b := a.(*animator).backend
	assert.InDelta(t, -1, b.Sample(0), 1e-6)
	assert.InDelta(t, 0, b.Sample(0.25), 1e-6)
	assert.InDelta(t, 1, b.Sample(0.5), 1e-6)
	assert.InDelta(t, 0, b.Sample(0.75), 1e-6)
}

func TestAnimatorDrivesSpeedTreeMaterials(t *testing.T) {
	leaf := material.NewMaterial(material.WithName("leaf"), material.WithTemplateName(material.TemplateSpeedTreeLeaf))
	tree := speed_tree.New(render_object.WithRenderBatches(render_batch.NewRenderBatch(
		render_batch.WithPolygonGroup(polygon.NewPolygonGroup(polygon.WithCoords(common.Vec3{0, 1, 0}))),
		render_batch.WithMaterial(leaf),
	)))

	a := NewAnimator(BackendTypeSine, WithTrunkOscillation(1, 1))
	a.AddTarget(tree)
	a.SetEnabled(true)
	a.PrepareFrame(0.25)

	flag, ok := leaf.Flag(speed_tree.FlagWindAnimation)
	require.True(t, ok)
	assert.Equal(t, material.FlagOn, flag)

	trunk, _ := a.Params()
	assert.Equal(t, [2]float32(trunk), material.WindParamsFromMaterial(leaf).TrunkOscillation)
}
