package domain

// Summary reports what a completed workflow run produced. It feeds the CLI's
// one-line result output; nothing in the workflow reads it back.
type Summary struct {
	// Packages is the number of dependency records in the lockfile snapshot.
	Packages int

	// Licenses is the number of entries written to the license manifest.
	// Zero for runs that skip license collection.
	Licenses int

	// ChecksumRows is the number of rows written to the checksum manifest.
	ChecksumRows int
}
