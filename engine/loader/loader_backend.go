package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-foliage/engine/archive"
)

// loaderBackend defines the generic interface for reading and writing render object archives.
// Concrete implementations handle one document encoding each.
type loaderBackend interface {
	// LoadReader decodes one archive document from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing the document
	//
	// Returns:
	//   - *archive.KeyedArchive: the decoded archive
	//   - error: error if decoding fails
	LoadReader(r io.Reader) (*archive.KeyedArchive, error)

	// SaveWriter encodes an archive as one document.
	//
	// Parameters:
	//   - w: the destination stream
	//   - a: the archive to encode
	//
	// Returns:
	//   - error: error if encoding fails
	SaveWriter(w io.Writer, a *archive.KeyedArchive) error
}

// archiveLoaderBackend reads and writes archives in a fixed encoding.
type archiveLoaderBackend struct {
	format archive.Format
}

var _ loaderBackend = &archiveLoaderBackend{}

func newTOMLLoaderBackend() loaderBackend {
	return &archiveLoaderBackend{format: archive.FormatTOML}
}

func newYAMLLoaderBackend() loaderBackend {
	return &archiveLoaderBackend{format: archive.FormatYAML}
}

func (b *archiveLoaderBackend) LoadReader(r io.Reader) (*archive.KeyedArchive, error) {
	return archive.Decode(r, b.format)
}

func (b *archiveLoaderBackend) SaveWriter(w io.Writer, a *archive.KeyedArchive) error {
	return archive.Encode(w, a, b.format)
}
