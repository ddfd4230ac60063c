package scene

import (
	"github.com/Carmen-Shannon/oxy-foliage/engine/game_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/animator"
)

// SceneBuilderOption is a functional option for configuring a Scene during construction.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene starts active.
//
// Parameters:
//   - active: true to activate the scene
//
// Returns:
//   - SceneBuilderOption: functional option to set the active state
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects registers game objects at construction. Objects without an ID are
// assigned one; ephemeral objects are ignored.
//
// Parameters:
//   - objects: the objects to register
//
// Returns:
//   - SceneBuilderOption: functional option to add the objects
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			if obj.ID() == 0 {
				obj.SetID(s.nextID)
				s.nextID++
			}
			if !obj.Ephemeral() {
				s.registry[obj.ID()] = obj
			}
		}
	}
}

// WithComputeWorkers sets the number of workers used for the parallel bounding box pass.
//
// Parameters:
//   - n: the worker count, at least 1
//
// Returns:
//   - SceneBuilderOption: functional option to set the worker count
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}

// WithAnimator replaces the default sine wind animator.
//
// Parameters:
//   - a: the animator to drive the scene's speed trees
//
// Returns:
//   - SceneBuilderOption: functional option to set the animator
func WithAnimator(a animator.Animator) SceneBuilderOption {
	return func(s *scene) {
		s.anim = a
	}
}
