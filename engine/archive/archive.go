// Package archive implements the keyed archive that render objects load from and save to.
// An archive is a tree of string-keyed values that round-trips through TOML or YAML.
package archive

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrKeyNotFound is returned when a required key is absent.
	ErrKeyNotFound = errors.New("archive: key not found")
	// ErrTypeMismatch is returned when a key holds a value of an unexpected type.
	ErrTypeMismatch = errors.New("archive: type mismatch")
)

// KeyedArchive is a string-keyed container of scalars, numeric slices, nested
// archives, and lists of nested archives. It is not safe for concurrent mutation.
type KeyedArchive struct {
	values map[string]any
}

// NewKeyedArchive creates an empty archive.
//
// Returns:
//   - *KeyedArchive: the new archive
func NewKeyedArchive() *KeyedArchive {
	return &KeyedArchive{values: make(map[string]any)}
}

// FromMap wraps a decoded map. Nested maps are converted lazily on access.
//
// Parameters:
//   - m: the decoded values; a nil map yields an empty archive
//
// Returns:
//   - *KeyedArchive: the archive
func FromMap(m map[string]any) *KeyedArchive {
	if m == nil {
		m = make(map[string]any)
	}
	return &KeyedArchive{values: m}
}

// Has reports whether key is present.
func (a *KeyedArchive) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Keys returns all keys in sorted order.
func (a *KeyedArchive) Keys() []string {
	keys := make([]string, 0, len(a.values))
	for k := range a.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (a *KeyedArchive) Len() int {
	return len(a.values)
}

// Delete removes key if present.
func (a *KeyedArchive) Delete(key string) {
	delete(a.values, key)
}

// SetBool stores a boolean.
func (a *KeyedArchive) SetBool(key string, v bool) {
	a.values[key] = v
}

// SetInt stores an integer.
func (a *KeyedArchive) SetInt(key string, v int) {
	a.values[key] = int64(v)
}

// SetFloat32 stores a float.
func (a *KeyedArchive) SetFloat32(key string, v float32) {
	a.values[key] = float64(v)
}

// SetString stores a string.
func (a *KeyedArchive) SetString(key, v string) {
	a.values[key] = v
}

// SetFloat32Slice stores a copy of a float slice.
func (a *KeyedArchive) SetFloat32Slice(key string, v []float32) {
	out := make([]any, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	a.values[key] = out
}

// SetUint32Slice stores a copy of an unsigned integer slice.
func (a *KeyedArchive) SetUint32Slice(key string, v []uint32) {
	out := make([]any, len(v))
	for i, u := range v {
		out[i] = int64(u)
	}
	a.values[key] = out
}

// SetArchive stores a nested archive.
func (a *KeyedArchive) SetArchive(key string, v *KeyedArchive) {
	a.values[key] = v
}

// SetArchives stores a list of nested archives.
func (a *KeyedArchive) SetArchives(key string, v []*KeyedArchive) {
	a.values[key] = v
}

// Bool returns the boolean at key, or def when the key is absent or not a boolean.
func (a *KeyedArchive) Bool(key string, def bool) bool {
	if v, ok := a.values[key].(bool); ok {
		return v
	}
	return def
}

// Int returns the integer at key, or def when the key is absent or not numeric.
func (a *KeyedArchive) Int(key string, def int) int {
	if f, ok := toFloat64(a.values[key]); ok {
		return int(f)
	}
	return def
}

// Float32 returns the float at key, or def when the key is absent or not numeric.
func (a *KeyedArchive) Float32(key string, def float32) float32 {
	if f, ok := toFloat64(a.values[key]); ok {
		return float32(f)
	}
	return def
}

// String returns the string at key, or def when the key is absent or not a string.
func (a *KeyedArchive) String(key, def string) string {
	if v, ok := a.values[key].(string); ok {
		return v
	}
	return def
}

// Float32Slice returns the numeric list at key.
//
// Returns:
//   - []float32: the decoded values
//   - error: ErrKeyNotFound or ErrTypeMismatch (wrapped with the key)
func (a *KeyedArchive) Float32Slice(key string) ([]float32, error) {
	raw, err := a.list(key)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(raw))
	for i, v := range raw {
		f, ok := toFloat64(v)
		if !ok {
			return nil, fmt.Errorf("%q[%d] is %T: %w", key, i, v, ErrTypeMismatch)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// Uint32Slice returns the unsigned integer list at key.
//
// Returns:
//   - []uint32: the decoded values
//   - error: ErrKeyNotFound or ErrTypeMismatch (wrapped with the key)
func (a *KeyedArchive) Uint32Slice(key string) ([]uint32, error) {
	raw, err := a.list(key)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(raw))
	for i, v := range raw {
		f, ok := toFloat64(v)
		if !ok || f < 0 {
			return nil, fmt.Errorf("%q[%d] is %v: %w", key, i, v, ErrTypeMismatch)
		}
		out[i] = uint32(f)
	}
	return out, nil
}

// Archive returns the nested archive at key.
//
// Returns:
//   - *KeyedArchive: the nested archive
//   - error: ErrKeyNotFound or ErrTypeMismatch (wrapped with the key)
func (a *KeyedArchive) Archive(key string) (*KeyedArchive, error) {
	v, ok := a.values[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	sub, ok := asArchive(v)
	if !ok {
		return nil, fmt.Errorf("%q is %T: %w", key, v, ErrTypeMismatch)
	}
	return sub, nil
}

// Archives returns the list of nested archives at key.
//
// Returns:
//   - []*KeyedArchive: the nested archives
//   - error: ErrKeyNotFound or ErrTypeMismatch (wrapped with the key)
func (a *KeyedArchive) Archives(key string) ([]*KeyedArchive, error) {
	v, ok := a.values[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	if subs, ok := v.([]*KeyedArchive); ok {
		return subs, nil
	}
	var raw []any
	switch t := v.(type) {
	case []any:
		raw = t
	case []map[string]any:
		raw = make([]any, len(t))
		for i := range t {
			raw[i] = t[i]
		}
	default:
		return nil, fmt.Errorf("%q is %T: %w", key, v, ErrTypeMismatch)
	}
	out := make([]*KeyedArchive, len(raw))
	for i, item := range raw {
		sub, ok := asArchive(item)
		if !ok {
			return nil, fmt.Errorf("%q[%d] is %T: %w", key, i, item, ErrTypeMismatch)
		}
		out[i] = sub
	}
	return out, nil
}

// ToMap returns a plain map tree suitable for encoding. Nested archives become maps.
func (a *KeyedArchive) ToMap() map[string]any {
	out := make(map[string]any, len(a.values))
	for k, v := range a.values {
		out[k] = plain(v)
	}
	return out
}

func (a *KeyedArchive) list(key string) ([]any, error) {
	v, ok := a.values[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is %T: %w", key, v, ErrTypeMismatch)
	}
	return raw, nil
}

func asArchive(v any) (*KeyedArchive, bool) {
	switch t := v.(type) {
	case *KeyedArchive:
		return t, true
	case map[string]any:
		return FromMap(t), true
	}
	return nil, false
}

func plain(v any) any {
	switch t := v.(type) {
	case *KeyedArchive:
		return t.ToMap()
	case []*KeyedArchive:
		out := make([]map[string]any, len(t))
		for i, sub := range t {
			out[i] = sub.ToMap()
		}
		return out
	case map[string]any:
		return FromMap(t).ToMap()
	}
	return v
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
