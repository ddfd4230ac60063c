package material

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrDuplicateMaterial is returned when a material name is already registered.
var ErrDuplicateMaterial = errors.New("material: duplicate name")

// registry is the implementation of the Registry interface.
type registry struct {
	mu        sync.RWMutex
	materials map[string]Material
}

// Registry owns the shared Material instances of a scene, keyed by name.
// Render batches hold references to registered materials; the registry is the
// only owner. Safe for concurrent use.
type Registry interface {
	// Add registers m under its name.
	//
	// Parameters:
	//   - m: the material to register
	//
	// Returns:
	//   - error: ErrDuplicateMaterial if the name is taken
	Add(m Material) error

	// Get retrieves a material by name.
	//
	// Parameters:
	//   - name: the material name
	//
	// Returns:
	//   - Material: the material, or nil
	//   - bool: false if not registered
	Get(name string) (Material, bool)

	// GetOrCreate returns the material registered under name, creating and registering
	// it with the given options if absent. The name option is always applied last.
	//
	// Parameters:
	//   - name: the material name
	//   - options: options used only when the material is created
	//
	// Returns:
	//   - Material: the shared material
	GetOrCreate(name string, options ...MaterialBuilderOption) Material

	// Remove releases the registry's reference to the named material.
	//
	// Parameters:
	//   - name: the material name
	Remove(name string)

	// Names returns every registered name in sorted order.
	//
	// Returns:
	//   - []string: the names
	Names() []string

	// Len returns the number of registered materials.
	//
	// Returns:
	//   - int: the count
	Len() int
}

var _ Registry = &registry{}

// NewRegistry creates an empty material registry.
//
// Returns:
//   - Registry: the registry
func NewRegistry() Registry {
	return &registry{materials: make(map[string]Material)}
}

func (r *registry) Add(m Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.materials[m.Name()]; ok {
		return fmt.Errorf("%q: %w", m.Name(), ErrDuplicateMaterial)
	}
	r.materials[m.Name()] = m
	return nil
}

func (r *registry) Get(name string) (Material, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.materials[name]
	return m, ok
}

func (r *registry) GetOrCreate(name string, options ...MaterialBuilderOption) Material {
	if m, ok := r.Get(name); ok {
		return m
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// re-check under the write lock
	if m, ok := r.materials[name]; ok {
		return m
	}
	m := NewMaterial(append(options, WithName(name))...)
	r.materials[name] = m
	return m
}

func (r *registry) Remove(name string) {
	r.mu.Lock()
	delete(r.materials, name)
	r.mu.Unlock()
}

func (r *registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.materials))
	for name := range r.materials {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.materials)
}
