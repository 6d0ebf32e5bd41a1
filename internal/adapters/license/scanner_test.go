package license_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cratedock/cratedock/internal/adapters/license"
	"github.com/cratedock/cratedock/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHelper installs an executable stub standing in for the license helper.
func writeHelper(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "fake-helper.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700))
	return path
}

func testConfig(t *testing.T, helperBody string) *domain.Config {
	t.Helper()
	root := t.TempDir()
	cfg := domain.DefaultConfig(root)
	cfg.ScanCommand = []string{writeHelper(t, root, helperBody)}
	return cfg
}

func TestScanner_Scan_SingleIdentifier(t *testing.T) {
	cfg := testConfig(t, `echo "MIT"`)
	s := license.NewScanner()

	ids, err := s.Scan(context.Background(), cfg, "some/pkg")
	require.NoError(t, err)
	assert.Equal(t, []string{"MIT"}, ids)
}

func TestScanner_Scan_MultipleIdentifiers(t *testing.T) {
	cfg := testConfig(t, `printf "MIT\nApache-2.0\n"`)
	s := license.NewScanner()

	ids, err := s.Scan(context.Background(), cfg, "some/pkg")
	require.NoError(t, err)
	assert.Equal(t, []string{"MIT", "Apache-2.0"}, ids)
}

func TestScanner_Scan_NoOutput(t *testing.T) {
	cfg := testConfig(t, `true`)
	s := license.NewScanner()

	ids, err := s.Scan(context.Background(), cfg, "some/pkg")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestScanner_Scan_BlankLinesIgnored(t *testing.T) {
	cfg := testConfig(t, `printf "MIT\n\n  \nBSD-3-Clause\n"`)
	s := license.NewScanner()

	ids, err := s.Scan(context.Background(), cfg, "some/pkg")
	require.NoError(t, err)
	assert.Equal(t, []string{"MIT", "BSD-3-Clause"}, ids)
}

func TestScanner_Scan_HelperFailure(t *testing.T) {
	cfg := testConfig(t, `echo "no license data" >&2
exit 2`)
	s := license.NewScanner()

	_, err := s.Scan(context.Background(), cfg, "some/pkg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "license helper failed")
}
