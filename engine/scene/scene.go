package scene

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/oxy-foliage/common"
	"github.com/Carmen-Shannon/oxy-foliage/engine/game_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/animator"
)

// Scene defines the interface for a collection of game objects sharing one wind animator.
//
// Each Update advances the wind animation, then recomputes the bounding box of every
// enabled render object that changed since the last tick. Recomputes fan out across a
// worker pool, one task per distinct render object, so two game objects placing the same
// render object never race. All methods are safe for concurrent use, but render objects
// must not be mutated while Update runs.
type Scene interface {
	// Name returns the name of the scene.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the name of the scene.
	//
	// Parameters:
	//   - name: the new scene name
	SetName(name string)

	// Active returns whether the scene is updated by the engine.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive sets whether the scene is updated by the engine.
	//
	// Parameters:
	//   - active: true to activate the scene
	SetActive(active bool)

	// Animator returns the wind animator driving this scene's speed trees.
	//
	// Returns:
	//   - animator.Animator: the wind animator
	Animator() animator.Animator

	// Count returns the number of registered (non-ephemeral) objects.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// CountEphemeral returns the number of ephemeral objects waiting for the next Update.
	//
	// Returns:
	//   - int: the pending ephemeral count
	CountEphemeral() int

	// Add registers a game object, assigning an ID if it has none. Render objects that
	// accept wind parameters are registered with the scene's animator. Ephemeral objects
	// take part in the next Update only.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get returns the registered object with the given ID, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Objects returns the registered objects ordered by ID.
	//
	// Returns:
	//   - []game_object.GameObject: a new slice of the objects
	Objects() []game_object.GameObject

	// Remove unregisters the object with the given ID and detaches its render object
	// from the animator. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Clear removes every object.
	Clear()

	// Update advances the scene by deltaTime.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last update in seconds
	//
	// Returns:
	//   - int: the number of bounding boxes recomputed
	Update(deltaTime float32) int

	// Bounds returns the union of the world bounding boxes of the enabled registered objects.
	//
	// Returns:
	//   - common.AABB: the scene bounds, empty if nothing is enabled
	Bounds() common.AABB
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry  map[uint64]game_object.GameObject // non-ephemeral objects by ID
	ephemeral []game_object.GameObject
	nextID    uint64

	anim animator.Animator

	// computePool runs the parallel bounding box pass of Update. Workers persist across
	// ticks and idle-exit after a second without work.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

var _ Scene = &scene{}

// NewScene creates a new Scene with a sine wind animator, configured by the options.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		registry:       make(map[uint64]game_object.GameObject),
		nextID:         1,
		computeWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	if s.anim == nil {
		s.anim = animator.NewAnimator(animator.BackendTypeSine)
	}
	for _, t := range s.windTargets() {
		s.anim.AddTarget(t)
	}

	// Queue size of 256 covers typical per-tick dirty counts; SubmitTask blocks beyond it.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Animator() animator.Animator {
	return s.anim
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) CountEphemeral() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ephemeral)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if obj.ID() == 0 {
		obj.SetID(atomic.AddUint64(&s.nextID, 1) - 1)
	}

	if obj.Ephemeral() {
		s.ephemeral = append(s.ephemeral, obj)
		return obj.ID()
	}

	if prev, exists := s.registry[obj.ID()]; exists && prev != obj {
		slog.Warn("scene: replacing object with duplicate id", "scene", s.name, "id", obj.ID())
		s.detach(prev)
	}
	s.registry[obj.ID()] = obj
	s.attach(obj)
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]game_object.GameObject, 0, len(s.registry))
	for _, obj := range s.registry {
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, exists := s.registry[id]
	if !exists {
		return
	}
	delete(s.registry, id)
	s.detach(obj)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.windTargets() {
		s.anim.RemoveTarget(t)
	}
	s.registry = make(map[uint64]game_object.GameObject)
	s.ephemeral = nil
}

// windTargets returns the distinct registered render objects that accept wind parameters.
// Caller must hold s.mu.
func (s *scene) windTargets() []animator.WindTarget {
	seen := make(map[render_object.RenderObject]struct{})
	var out []animator.WindTarget
	for _, obj := range s.registry {
		ro := obj.RenderObject()
		target, ok := ro.(animator.WindTarget)
		if !ok {
			continue
		}
		if _, dup := seen[ro]; dup {
			continue
		}
		seen[ro] = struct{}{}
		out = append(out, target)
	}
	return out
}

// attach registers obj's render object with the animator. Only the first game object
// placing a given render object registers it. Caller must hold s.mu write lock.
func (s *scene) attach(obj game_object.GameObject) {
	target, ok := obj.RenderObject().(animator.WindTarget)
	if !ok {
		return
	}
	for _, other := range s.registry {
		if other != obj && other.RenderObject() == obj.RenderObject() {
			return
		}
	}
	s.anim.AddTarget(target)
}

// detach unregisters obj's render object from the animator unless another registered
// game object still places it. Caller must hold s.mu write lock.
func (s *scene) detach(obj game_object.GameObject) {
	target, ok := obj.RenderObject().(animator.WindTarget)
	if !ok {
		return
	}
	for _, other := range s.registry {
		if other != obj && other.RenderObject() == obj.RenderObject() {
			return
		}
	}
	s.anim.RemoveTarget(target)
}

func (s *scene) Update(deltaTime float32) int {
	s.anim.PrepareFrame(deltaTime)

	s.mu.Lock()
	pending := s.ephemeral
	s.ephemeral = nil
	s.mu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Distinct dirty render objects of enabled objects. Ephemeral objects are folded in
	// here and dropped afterwards.
	seen := make(map[render_object.RenderObject]struct{})
	var dirty []render_object.RenderObject
	collect := func(obj game_object.GameObject) {
		if !obj.Enabled() {
			return
		}
		ro := obj.RenderObject()
		if ro == nil || !ro.BoundingBoxDirty() {
			return
		}
		if _, ok := seen[ro]; ok {
			return
		}
		seen[ro] = struct{}{}
		dirty = append(dirty, ro)
	}
	for _, obj := range s.registry {
		collect(obj)
	}
	for _, obj := range pending {
		collect(obj)
	}

	if len(dirty) == 0 {
		return 0
	}

	// A WaitGroup provides the per-tick barrier; pool.Wait() would block until workers idle-exit.
	var wg sync.WaitGroup
	for i, ro := range dirty {
		wg.Add(1)
		roCap := ro
		s.computePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				roCap.RecalcBoundingBox()
				return nil, nil
			},
		})
	}
	wg.Wait()

	slog.Debug("scene: recomputed bounding boxes", "scene", s.name, "count", len(dirty), "ephemeral", len(pending))
	return len(dirty)
}

func (s *scene) Bounds() common.AABB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	box := common.EmptyAABB()
	for _, obj := range s.registry {
		if obj.Enabled() {
			box.AddAABB(obj.WorldBoundingBox())
		}
	}
	return box
}
