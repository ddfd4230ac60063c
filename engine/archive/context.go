package archive

import (
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
)

// SerializationContext carries the shared state a Load or Save needs beyond the archive itself.
type SerializationContext struct {
	// Materials resolves material names stored in archives to shared instances.
	Materials material.Registry

	// ScenePath is the path of the file being loaded or saved, for diagnostics.
	ScenePath string
}

// NewSerializationContext creates a context backed by the given registry. A nil
// registry is replaced by a fresh empty one.
//
// Parameters:
//   - materials: the registry used to resolve material names
//   - scenePath: the file being processed
//
// Returns:
//   - *SerializationContext: the context
func NewSerializationContext(materials material.Registry, scenePath string) *SerializationContext {
	if materials == nil {
		materials = material.NewRegistry()
	}
	return &SerializationContext{Materials: materials, ScenePath: scenePath}
}

// ResolveMaterial returns the registered material called name, creating it with
// the given template when it does not exist yet. An empty name resolves to nil.
//
// Parameters:
//   - name: the material name stored in the archive
//   - templateName: the template to use if the material must be created
//
// Returns:
//   - material.Material: the shared material, or nil
func (c *SerializationContext) ResolveMaterial(name, templateName string) material.Material {
	if name == "" {
		return nil
	}
	return c.Materials.GetOrCreate(name, material.WithTemplateName(templateName))
}
