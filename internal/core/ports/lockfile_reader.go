package ports

import "github.com/cratedock/cratedock/internal/core/domain"

// LockfileReader parses the dependency lockfile into a snapshot.
//
//go:generate mockgen -source=lockfile_reader.go -destination=mocks/mock_lockfile_reader.go -package=mocks
type LockfileReader interface {
	// Read parses the lockfile at path. The returned snapshot preserves the
	// lockfile's entry order and is never re-read within a workflow run.
	Read(path string) (*domain.Lockfile, error)
}
