package material

import (
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-foliage/internal/assert"
)

// TemplateSpeedTreeLeaf is the template name carried by materials whose batches hold
// pivot-authored leaf cards.
const TemplateSpeedTreeLeaf = "speed-tree-leaf"

// PropertyType identifies the shader uniform type of a material property.
type PropertyType int

const (
	// PropertyTypeFloat is a single f32.
	PropertyTypeFloat PropertyType = iota
	// PropertyTypeFloatVec2 is a vec2<f32>.
	PropertyTypeFloatVec2
	// PropertyTypeFloatVec3 is a vec3<f32>.
	PropertyTypeFloatVec3
	// PropertyTypeFloatVec4 is a vec4<f32>.
	PropertyTypeFloatVec4
	// PropertyTypeFloatMat4 is a mat4x4<f32>.
	PropertyTypeFloatMat4
)

// Components returns the number of float32 values one element of the type occupies.
func (t PropertyType) Components() int {
	switch t {
	case PropertyTypeFloat:
		return 1
	case PropertyTypeFloatVec2:
		return 2
	case PropertyTypeFloatVec3:
		return 3
	case PropertyTypeFloatVec4:
		return 4
	case PropertyTypeFloatMat4:
		return 16
	}
	return 0
}

// FlagValue is the state of a named shader flag.
type FlagValue int

const (
	// FlagOff disables the shader feature.
	FlagOff FlagValue = iota
	// FlagOn enables the shader feature.
	FlagOn
)

// Property is the stored value of a named material property.
type Property struct {
	Type  PropertyType
	Count int
	Data  []float32
}

// material is the implementation of the Material interface.
type material struct {
	mu           sync.RWMutex
	name         string
	templateName string
	pipelineKey  string
	properties   map[string]Property
	flags        map[string]FlagValue
}

// Material defines the interface for a shared render material. A Material is referenced by
// any number of render batches; identity is the interface value itself, so two materials
// with the same name are still distinct.
//
// Property and flag setters do not check that the material's shader declares the name:
// unknown names are stored and ignored by the backend. Materials are safe for concurrent use.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// TemplateName retrieves the template the material was instantiated from.
	// Geometry rules such as leaf pivot expansion are selected by this tag.
	//
	// Returns:
	//   - string: the template name, or "" if none
	TemplateName() string

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetPropertyValue stores count elements of the given type under name.
	// data must hold at least count*typ.Components() values; the prefix is copied.
	//
	// Parameters:
	//   - name: the uniform name
	//   - typ: the uniform type
	//   - count: the number of elements (1 for a plain uniform)
	//   - data: the packed float32 values
	SetPropertyValue(name string, typ PropertyType, count int, data []float32)

	// PropertyValue retrieves a stored property.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - Property: a copy of the stored property
	//   - bool: false if the property was never set
	PropertyValue(name string) (Property, bool)

	// PropertyNames returns the names of all stored properties in sorted order.
	//
	// Returns:
	//   - []string: the property names
	PropertyNames() []string

	// SetFlag sets the named shader flag.
	//
	// Parameters:
	//   - name: the flag name
	//   - value: FlagOn or FlagOff
	SetFlag(name string, value FlagValue)

	// Flag retrieves the named shader flag.
	//
	// Parameters:
	//   - name: the flag name
	//
	// Returns:
	//   - FlagValue: the flag state (FlagOff if unset)
	//   - bool: false if the flag was never set
	Flag(name string) (FlagValue, bool)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		properties: make(map[string]Property),
		flags:      make(map[string]FlagValue),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) TemplateName() string {
	return m.templateName
}

func (m *material) PipelineKey() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pipelineKey
}

func (m *material) SetPipelineKey(key string) {
	m.mu.Lock()
	m.pipelineKey = key
	m.mu.Unlock()
}

func (m *material) SetPropertyValue(name string, typ PropertyType, count int, data []float32) {
	n := count * typ.Components()
	if !assert.That(n > 0 && len(data) >= n, "material %q: property %q needs %d values, got %d", m.name, name, n, len(data)) {
		return
	}
	stored := make([]float32, n)
	copy(stored, data)

	m.mu.Lock()
	m.properties[name] = Property{Type: typ, Count: count, Data: stored}
	m.mu.Unlock()
}

func (m *material) PropertyValue(name string) (Property, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.properties[name]
	if !ok {
		return Property{}, false
	}
	p.Data = append([]float32(nil), p.Data...)
	return p, true
}

func (m *material) PropertyNames() []string {
	m.mu.RLock()
	names := make([]string, 0, len(m.properties))
	for name := range m.properties {
		names = append(names, name)
	}
	m.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (m *material) SetFlag(name string, value FlagValue) {
	m.mu.Lock()
	m.flags[name] = value
	m.mu.Unlock()
}

func (m *material) Flag(name string) (FlagValue, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.flags[name]
	return v, ok
}
