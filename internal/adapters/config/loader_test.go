package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cratedock/cratedock/internal/adapters/config"
	"github.com/cratedock/cratedock/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_Defaults(t *testing.T) {
	root := t.TempDir()
	l := config.NewLoader()

	cfg, err := l.Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Layout.Root)
	assert.Equal(t, domain.DefaultLockfileName, cfg.Layout.Lockfile)
	assert.Equal(t, domain.DefaultVendorDirName, cfg.Layout.VendorDir)
	assert.Equal(t, domain.DefaultVendorCommand, cfg.VendorCommand)
	assert.Equal(t, domain.DefaultScanCommand, cfg.ScanCommand)
}

func TestLoader_Load_Overrides(t *testing.T) {
	root := t.TempDir()
	content := `version: "1"
vendorDir: third-party
licenseManifest: LICENSES
vendorCmd: ["cargo", "vendor", "--locked"]
`
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName), []byte(content), 0o600))

	l := config.NewLoader()
	cfg, err := l.Load(root)
	require.NoError(t, err)

	assert.Equal(t, "third-party", cfg.Layout.VendorDir)
	assert.Equal(t, "LICENSES", cfg.Layout.LicenseManifest)
	assert.Equal(t, []string{"cargo", "vendor", "--locked"}, cfg.VendorCommand)

	// Untouched fields keep their defaults.
	assert.Equal(t, domain.DefaultLockfileName, cfg.Layout.Lockfile)
	assert.Equal(t, domain.DefaultScanCommand, cfg.ScanCommand)
}

func TestLoader_Load_Malformed(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName), []byte("lockfile: [unterminated"), 0o600))

	l := config.NewLoader()
	_, err := l.Load(root)
	require.Error(t, err)
}

func TestLoader_Load_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "empty vendor command element",
			content: `vendorCmd: [""]`,
		},
		{
			name:    "empty scan command element",
			content: `scanCmd: [""]`,
		},
		{
			name:    "absolute vendor dir",
			content: `vendorDir: /tmp/vendor`,
		},
		{
			name:    "vendor dir escaping the working root",
			content: `vendorDir: ../victim`,
		},
		{
			name:    "lockfile escaping the working root",
			content: `lockfile: ../../Cargo.lock`,
		},
		{
			name:    "vendor config escaping the working root",
			content: `vendorConfig: ../vendor-config.toml`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName), []byte(tt.content), 0o600))

			l := config.NewLoader()
			_, err := l.Load(root)
			require.Error(t, err)
		})
	}
}
