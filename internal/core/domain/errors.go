package domain

import "go.trai.ch/zerr"

var (
	// ErrLockfileNotFound is returned when the lockfile does not exist in the working root.
	ErrLockfileNotFound = zerr.New("lockfile not found")

	// ErrLockfileMalformed is returned when the lockfile cannot be parsed.
	ErrLockfileMalformed = zerr.New("lockfile malformed")

	// ErrVendoringFailed is returned when the external vendoring engine exits with an error.
	ErrVendoringFailed = zerr.New("vendoring failed")

	// ErrLicenseScanFailed is returned when the vendored tree cannot be enumerated
	// for license scanning. A helper failure for a single package does not raise
	// this error; it degrades to the UnknownLicense marker instead.
	ErrLicenseScanFailed = zerr.New("license scan failed")

	// ErrManifestWriteFailed is returned when a generated file cannot be written.
	ErrManifestWriteFailed = zerr.New("manifest write failed")

	// ErrVerificationFailed is returned when the vendored tree does not match
	// the checksums pinned by the lockfile.
	ErrVerificationFailed = zerr.New("vendor verification failed")

	// ErrWorkflowFailed marks any operation that aborted before completing.
	ErrWorkflowFailed = zerr.New("workflow execution failed")
)
