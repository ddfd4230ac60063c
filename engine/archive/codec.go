package archive

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies an on-disk archive encoding.
type Format int

const (
	// FormatTOML encodes archives as TOML documents.
	FormatTOML Format = iota
	// FormatYAML encodes archives as YAML documents.
	FormatYAML
)

// ErrUnknownFormat is returned when no encoding matches a file extension.
var ErrUnknownFormat = errors.New("archive: unknown format")

// FormatForPath selects an encoding from the file extension (.toml, .yaml, .yml).
//
// Parameters:
//   - path: the file path
//
// Returns:
//   - Format: the matching encoding
//   - error: ErrUnknownFormat if the extension is not recognized
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Decode reads one archive document from r.
//
// Parameters:
//   - r: the source stream
//   - format: the document encoding
//
// Returns:
//   - *KeyedArchive: the decoded archive
//   - error: error if the document is malformed
func Decode(r io.Reader, format Format) (*KeyedArchive, error) {
	m := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(r).Decode(&m); err != nil {
			return nil, fmt.Errorf("decode toml archive: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml archive: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	return FromMap(m), nil
}

// Encode writes a as one document to w.
//
// Parameters:
//   - w: the destination stream
//   - a: the archive to encode
//   - format: the document encoding
//
// Returns:
//   - error: error if encoding fails
func Encode(w io.Writer, a *KeyedArchive, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(a.ToMap()); err != nil {
			return fmt.Errorf("encode toml archive: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(a.ToMap()); err != nil {
			return fmt.Errorf("encode yaml archive: %w", err)
		}
		return enc.Close()
	}
	return ErrUnknownFormat
}
