// Package loader reads render objects from archive files and caches them by path.
package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-foliage/engine/archive"
	"github.com/Carmen-Shannon/oxy-foliage/engine/render_object"
	"github.com/Carmen-Shannon/oxy-foliage/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-foliage/engine/speed_tree"
)

// ErrUnsupportedFormat is returned when a file extension has no loader backend.
var ErrUnsupportedFormat = errors.New("loader: unsupported format")

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	materials material.Registry

	objectCache map[string]render_object.RenderObject

	backends map[archive.Format]loaderBackend
}

// Loader defines the public-facing interface for loading and caching render objects.
// It picks a backend by file extension (.toml, .yaml, .yml) and keeps one prototype per
// path. Every call hands out a Clone of the prototype, so callers may edit what they get
// without affecting later loads. Materials are shared through one registry across all
// loads, so two trees naming the same material end up referencing one instance.
type Loader interface {
	// Load reads a render object file and caches the result.
	// If the file is already cached (by path), a clone of the cached object is returned.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - render_object.RenderObject: a fresh copy of the loaded object with its bounding box computed
	//   - error: error if the extension is unsupported, the file cannot be read, or decoding fails
	Load(path string) (render_object.RenderObject, error)

	// LoadReader reads a render object from a reader stream and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded object
	//   - r: the reader providing the document
	//   - format: the document encoding
	//
	// Returns:
	//   - render_object.RenderObject: a fresh copy of the loaded object
	//   - error: error if decoding fails
	LoadReader(name string, r io.Reader, format archive.Format) (render_object.RenderObject, error)

	// Save writes a render object to path, picking the encoding by extension.
	// The cache is not updated.
	//
	// Parameters:
	//   - path: the destination file
	//   - obj: the object to write
	//
	// Returns:
	//   - error: error if the extension is unsupported or writing fails
	Save(path string, obj render_object.RenderObject) error

	// Get returns a clone of a cached object, or nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - render_object.RenderObject: a fresh copy or nil
	Get(name string) render_object.RenderObject

	// Names returns the cache keys.
	//
	// Returns:
	//   - []string: the cached names, in no particular order
	Names() []string

	// Materials returns the registry shared by every load.
	//
	// Returns:
	//   - material.Registry: the material registry
	Materials() material.Registry
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with TOML and YAML backends and the options applied.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		materials:   material.NewRegistry(),
		objectCache: make(map[string]render_object.RenderObject),
		backends: map[archive.Format]loaderBackend{
			archive.FormatTOML: newTOMLLoaderBackend(),
			archive.FormatYAML: newYAMLLoaderBackend(),
		},
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) Load(path string) (render_object.RenderObject, error) {
	if cached := l.Get(path); cached != nil {
		return cached, nil
	}

	format, backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	defer f.Close()

	return l.decode(path, f, format, backend)
}

func (l *loader) LoadReader(name string, r io.Reader, format archive.Format) (render_object.RenderObject, error) {
	if cached := l.Get(name); cached != nil {
		return cached, nil
	}

	backend, ok := l.backends[format]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
	return l.decode(name, r, format, backend)
}

func (l *loader) decode(name string, r io.Reader, format archive.Format, backend loaderBackend) (render_object.RenderObject, error) {
	a, err := backend.LoadReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}

	obj := newObject(render_object.TypeFromArchive(a))
	obj.Load(a, archive.NewSerializationContext(l.materials, name))
	obj.RecalcBoundingBox()

	l.mu.Lock()
	if existing, ok := l.objectCache[name]; ok {
		// another goroutine loaded the same name first; keep a single prototype
		obj = existing
	} else {
		l.objectCache[name] = obj
	}
	l.mu.Unlock()

	slog.Debug("loader: loaded render object", "name", name, "type", obj.Type().String(), "batches", obj.RenderBatchCount(), "format", format)
	return obj.Clone(), nil
}

func (l *loader) Save(path string, obj render_object.RenderObject) error {
	_, backend, err := l.resolveBackend(path)
	if err != nil {
		return err
	}

	a := archive.NewKeyedArchive()
	obj.Save(a, archive.NewSerializationContext(l.materials, path))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	if err := backend.SaveWriter(f, a); err != nil {
		f.Close()
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return f.Close()
}

func (l *loader) Get(name string) render_object.RenderObject {
	l.mu.RLock()
	cached, ok := l.objectCache[name]
	l.mu.RUnlock()
	if !ok {
		return nil
	}
	return cached.Clone()
}

func (l *loader) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]string, 0, len(l.objectCache))
	for k := range l.objectCache {
		result = append(result, k)
	}
	return result
}

func (l *loader) Materials() material.Registry {
	return l.materials
}

// resolveBackend selects a loader backend based on the file extension.
func (l *loader) resolveBackend(path string) (archive.Format, loaderBackend, error) {
	format, err := archive.FormatForPath(path)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", strings.ToLower(filepath.Ext(path)), ErrUnsupportedFormat)
	}
	backend, ok := l.backends[format]
	if !ok {
		return 0, nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	return format, backend, nil
}

// newObject creates an empty render object of the given kind.
func newObject(t render_object.Type) render_object.RenderObject {
	switch t {
	case render_object.TypeSpeedTree:
		return speed_tree.New()
	default:
		return render_object.NewMesh()
	}
}
