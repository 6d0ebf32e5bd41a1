package manifest

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/cratedock/cratedock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.ManifestWriter with all-or-nothing semantics:
// content lands in a temporary file first and is renamed over the target,
// so readers never observe a partial manifest and a failed write leaves the
// previous content intact.
type Writer struct{}

// NewWriter creates a new manifest Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write atomically replaces the file at path with data. When the existing
// content hashes identically the write is skipped entirely, keeping re-runs
// of an unchanged lockfile from touching the file at all.
func (w *Writer) Write(path string, data []byte) error {
	if existing, err := os.ReadFile(path); err == nil { //nolint:gosec // path comes from the resolved layout
		if xxhash.Sum64(existing) == xxhash.Sum64(data) {
			return nil
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return writeError(err, "failed to create temporary manifest", path)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return writeError(err, "failed to write manifest content", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return writeError(err, "failed to flush manifest content", path)
	}

	// CreateTemp opens with 0600; generated manifests are world-readable.
	if err := os.Chmod(tmpPath, domain.FilePerm); err != nil {
		_ = os.Remove(tmpPath)
		return writeError(err, "failed to set manifest permissions", path)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return writeError(err, "failed to replace manifest", path)
	}

	return nil
}

func writeError(err error, msg, path string) error {
	return errors.Join(domain.ErrManifestWriteFailed,
		zerr.With(zerr.Wrap(err, msg), "path", path))
}
