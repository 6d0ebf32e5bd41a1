// Package license invokes the external license-scanning helper.
package license

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/cratedock/cratedock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Scanner implements ports.LicenseScanner by shelling out to the configured
// helper once per vendored package directory.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan runs the helper against one package directory. Every non-empty line
// the helper prints is one license identifier; a package may legitimately
// report zero or several. The caller decides how to handle failures and
// empty results.
func (s *Scanner) Scan(ctx context.Context, cfg *domain.Config, pkgDir string) ([]string, error) {
	name := cfg.ScanCommand[0]
	args := make([]string, 0, len(cfg.ScanCommand))
	args = append(args, cfg.ScanCommand[1:]...)
	args = append(args, pkgDir)

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command comes from configuration

	output, err := cmd.Output()
	if err != nil {
		scanErr := zerr.Wrap(err, "license helper failed")
		scanErr = zerr.With(scanErr, "package_dir", pkgDir)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			scanErr = zerr.With(scanErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, scanErr
	}

	return splitIdentifiers(string(output)), nil
}

func splitIdentifiers(out string) []string {
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids
}
