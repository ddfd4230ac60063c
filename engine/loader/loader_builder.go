package loader

import (
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithMaterialRegistry is an option builder that sets the registry materials are resolved through.
//
// Parameters:
//   - r: the material registry
//
// Returns:
//   - LoaderBuilderOption: a function that applies the registry option to a loader
func WithMaterialRegistry(r material.Registry) LoaderBuilderOption {
	return func(l *loader) {
		if r != nil {
			l.materials = r
		}
	}
}

// WithObject is an option builder that pre-populates the cache with a prototype object.
//
// Parameters:
//   - key: the cache key for the object
//   - obj: the prototype to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the object option to a loader
func WithObject(key string, obj render_object.RenderObject) LoaderBuilderOption {
	return func(l *loader) {
		l.objectCache[key] = obj
	}
}
