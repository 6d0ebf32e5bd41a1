package ports

import (
	"context"

	"github.com/cratedock/cratedock/internal/core/domain"
)

//go:generate mockgen -source=staging.go -destination=mocks/mock_staging.go -package=mocks

// Vendorer drives the external vendoring engine.
type Vendorer interface {
	// Vendor stages every dependency declared by the lockfile into the
	// configured vendor directory and returns the engine's own configuration
	// output for the caller to persist. Any engine failure is fatal for the
	// run; there are no retries.
	Vendor(ctx context.Context, cfg *domain.Config) ([]byte, error)
}

// LicenseScanner drives the external license-scanning helper.
type LicenseScanner interface {
	// Scan reports the license identifiers of one vendored package directory,
	// one identifier per element. An empty slice means the helper printed
	// nothing for the package.
	Scan(ctx context.Context, cfg *domain.Config, pkgDir string) ([]string, error)
}

// Verifier checks the vendored tree against the lockfile's pinned checksums.
type Verifier interface {
	// VerifyVendorTree compares every checksummed lockfile package against
	// the checksum the engine recorded in its vendored directory.
	VerifyVendorTree(lockfile *domain.Lockfile, vendorDir string) error
}
