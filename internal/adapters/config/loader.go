// Package config loads the optional cratedock.yaml tool configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cratedock/cratedock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file in the working root.
// A missing file is not an error; the defaults apply.
type Loader struct{}

// NewLoader creates a new configuration Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileSchema is the cratedock.yaml structure. Every field is optional and
// overrides the corresponding default.
type fileSchema struct {
	Version          string   `yaml:"version"`
	Lockfile         string   `yaml:"lockfile"`
	VendorDir        string   `yaml:"vendorDir"`
	VendorConfig     string   `yaml:"vendorConfig"`
	LicenseManifest  string   `yaml:"licenseManifest"`
	ChecksumManifest string   `yaml:"checksumManifest"`
	VendorCommand    []string `yaml:"vendorCmd"`
	ScanCommand      []string `yaml:"scanCmd"`
}

// Load resolves the configuration for the given working root.
func (l *Loader) Load(root string) (*domain.Config, error) {
	cfg := domain.DefaultConfig(root)

	path := filepath.Join(root, domain.ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is the well-known config name under the user's root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	applyOverrides(cfg, schema)

	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return cfg, nil
}

func applyOverrides(cfg *domain.Config, schema fileSchema) {
	if schema.Lockfile != "" {
		cfg.Layout.Lockfile = schema.Lockfile
	}
	if schema.VendorDir != "" {
		cfg.Layout.VendorDir = schema.VendorDir
	}
	if schema.VendorConfig != "" {
		cfg.Layout.VendorConfig = schema.VendorConfig
	}
	if schema.LicenseManifest != "" {
		cfg.Layout.LicenseManifest = schema.LicenseManifest
	}
	if schema.ChecksumManifest != "" {
		cfg.Layout.ChecksumManifest = schema.ChecksumManifest
	}
	if len(schema.VendorCommand) > 0 {
		cfg.VendorCommand = schema.VendorCommand
	}
	if len(schema.ScanCommand) > 0 {
		cfg.ScanCommand = schema.ScanCommand
	}
}

func validate(cfg *domain.Config) error {
	if len(cfg.VendorCommand) == 0 || cfg.VendorCommand[0] == "" {
		return zerr.New("vendorCmd must name an executable")
	}
	if len(cfg.ScanCommand) == 0 || cfg.ScanCommand[0] == "" {
		return zerr.New("scanCmd must name an executable")
	}
	// Clean removes these recursively; an override escaping the working root
	// would let it delete unrelated files.
	removed := []struct {
		field string
		value string
	}{
		{"vendorDir", cfg.Layout.VendorDir},
		{"lockfile", cfg.Layout.Lockfile},
		{"vendorConfig", cfg.Layout.VendorConfig},
	}
	for _, target := range removed {
		if !filepath.IsLocal(target.value) {
			return zerr.With(zerr.New(target.field+" must stay inside the working root"), "value", target.value)
		}
	}
	return nil
}
