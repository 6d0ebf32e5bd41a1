// Package fs verifies the vendored tree against the lockfile.
package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cratedock/cratedock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Verifier implements ports.Verifier by comparing the lockfile's pinned
// checksums against the checksum file the vendoring engine writes into every
// vendored directory.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// checksumFile mirrors the engine's per-package checksum record.
type checksumFile struct {
	Package string            `json:"package"`
	Files   map[string]string `json:"files"`
}

// VerifyVendorTree checks every checksummed lockfile package. The engine
// vendors a package under its plain name, or under name-version when several
// versions of one package coexist; both layouts are accepted.
func (v *Verifier) VerifyVendorTree(lockfile *domain.Lockfile, vendorDir string) error {
	var problems []string

	for _, pkg := range lockfile.Packages {
		if pkg.Checksum == "" {
			continue
		}

		recorded, err := v.recordedChecksum(vendorDir, pkg)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("%s %s: %v", pkg.Name, pkg.Version, err))
		case recorded != pkg.Checksum:
			problems = append(problems, fmt.Sprintf("%s %s: checksum mismatch", pkg.Name, pkg.Version))
		}
	}

	if len(problems) > 0 {
		verr := zerr.New("vendored tree does not match lockfile: " + strings.Join(problems, "; "))
		return errors.Join(domain.ErrVerificationFailed, zerr.With(verr, "vendor_dir", vendorDir))
	}

	return nil
}

func (v *Verifier) recordedChecksum(vendorDir string, pkg domain.Package) (string, error) {
	// The versioned directory wins when both exist: a leftover plain-name
	// directory from an earlier layout must not shadow the exact version.
	candidates := []string{
		filepath.Join(vendorDir, pkg.Name+"-"+pkg.Version, domain.ChecksumFileName),
		filepath.Join(vendorDir, pkg.Name, domain.ChecksumFileName),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path) //nolint:gosec // path derives from the resolved layout
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}

		var cf checksumFile
		if err := json.Unmarshal(data, &cf); err != nil {
			return "", zerr.Wrap(err, "unreadable checksum file")
		}
		return cf.Package, nil
	}

	return "", errors.New("not vendored")
}
