// Package lockfile parses Cargo.lock dependency lockfiles.
package lockfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cratedock/cratedock/internal/core/domain"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"
)

// Reader implements ports.LockfileReader for the Cargo.lock grammar.
// The lockfile is TOML; parsing it with a real TOML decoder instead of
// line-pattern matching keeps the reader honest if the format evolves.
type Reader struct{}

// NewReader creates a new lockfile Reader.
func NewReader() *Reader {
	return &Reader{}
}

// document mirrors the Cargo.lock top level. Modern lockfiles (version >= 2)
// carry the checksum inside each [[package]] block; version 1 lockfiles carry
// them in a [metadata] table keyed "checksum <name> <version> (<source>)".
type document struct {
	Version  int               `toml:"version"`
	Packages []packageEntry    `toml:"package"`
	Metadata map[string]string `toml:"metadata"`
}

type packageEntry struct {
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	Source   string `toml:"source"`
	Checksum string `toml:"checksum"`
}

// Read parses the lockfile at path into an ordered snapshot.
func (r *Reader) Read(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the resolved layout
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrLockfileNotFound,
				zerr.With(zerr.Wrap(err, "lockfile does not exist"), "path", path))
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lockfile"), "path", path)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(domain.ErrLockfileMalformed,
			zerr.With(zerr.Wrap(err, "failed to parse lockfile"), "path", path))
	}

	lf := &domain.Lockfile{
		Version:  doc.Version,
		Packages: make([]domain.Package, 0, len(doc.Packages)),
	}

	for _, entry := range doc.Packages {
		if entry.Name == "" || entry.Version == "" {
			return nil, errors.Join(domain.ErrLockfileMalformed,
				zerr.With(zerr.New("package entry missing name or version"), "path", path))
		}

		pkg := domain.Package{
			Name:     entry.Name,
			Version:  entry.Version,
			Source:   entry.Source,
			Checksum: entry.Checksum,
		}
		if pkg.Checksum == "" {
			pkg.Checksum = metadataChecksum(doc.Metadata, pkg)
		}

		lf.Packages = append(lf.Packages, pkg)
	}

	return lf, nil
}

// metadataChecksum resolves a version 1 lockfile checksum from the [metadata]
// table. The value "<none>" marks entries cargo knows have no checksum.
func metadataChecksum(metadata map[string]string, pkg domain.Package) string {
	if len(metadata) == 0 {
		return ""
	}
	key := fmt.Sprintf("checksum %s %s (%s)", pkg.Name, pkg.Version, pkg.Source)
	sum := metadata[key]
	if sum == "<none>" {
		return ""
	}
	return sum
}
