package domain

// Package is one resolved dependency record from the lockfile.
// Checksum is empty for entries the registry does not checksum
// (path and git dependencies).
type Package struct {
	// Name is the package name as pinned by the lockfile (e.g., "serde").
	Name string

	// Version is the exact pinned version (e.g., "1.0.136").
	Version string

	// Source identifies where the package was resolved from
	// (e.g., "registry+https://github.com/rust-lang/crates.io-index").
	Source string

	// Checksum is the content checksum recorded for the package, hex-encoded.
	Checksum string
}

// Lockfile is a parsed snapshot of the dependency lockfile.
// It is read once per workflow run; every step of that run operates on the
// same snapshot so the generated manifests reflect a single consistent state.
type Lockfile struct {
	// Version is the lockfile format version.
	Version int

	// Packages preserves the lockfile's original entry order.
	Packages []Package
}

// ChecksumRow is one rendered line of the checksum manifest.
type ChecksumRow struct {
	Name     string
	Checksum string
}

// ChecksumRows returns a (name, checksum) row for every package that carries
// a checksum, in lockfile entry order. Entries without a checksum contribute
// no row.
func (l *Lockfile) ChecksumRows() []ChecksumRow {
	rows := make([]ChecksumRow, 0, len(l.Packages))
	for _, p := range l.Packages {
		if p.Checksum == "" {
			continue
		}
		rows = append(rows, ChecksumRow{Name: p.Name, Checksum: p.Checksum})
	}
	return rows
}
