package ports

// ManifestWriter persists generated files.
//
//go:generate mockgen -source=manifest_writer.go -destination=mocks/mock_manifest_writer.go -package=mocks
type ManifestWriter interface {
	// Write replaces the file at path with data in one atomic step. Readers
	// never observe a partially written file; on failure the previous content
	// is left intact.
	Write(path string, data []byte) error
}
