package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional tool configuration file.
	ConfigFileName = "cratedock.yaml"

	// DefaultLockfileName is the well-known dependency lockfile name.
	DefaultLockfileName = "Cargo.lock"

	// DefaultVendorDirName is the directory the vendoring engine populates.
	DefaultVendorDirName = "vendor"

	// DefaultVendorConfigName is the file capturing the engine's source configuration.
	DefaultVendorConfigName = "vendor-config.toml"

	// DefaultLicenseManifestName is the generated license manifest.
	DefaultLicenseManifestName = "licenses.txt"

	// DefaultChecksumManifestName is the generated checksum manifest.
	DefaultChecksumManifestName = "checksums.txt"

	// ChecksumFileName is the per-package checksum file the vendoring engine
	// writes into every vendored directory.
	ChecksumFileName = ".cargo-checksum.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for generated files (rw-r--r--).
	FilePerm = 0o644
)

// Layout resolves every artifact the tool reads or writes against an explicit
// working root. Passing it around instead of relying on the process working
// directory keeps the tool invocable from anywhere and testable against a
// temporary directory.
type Layout struct {
	// Root is the working root all relative names resolve against.
	Root string

	// Lockfile is the lockfile name, relative to Root.
	Lockfile string

	// VendorDir is the vendor directory name, relative to Root.
	VendorDir string

	// VendorConfig is the captured engine configuration, relative to Root.
	VendorConfig string

	// LicenseManifest is the license manifest name, relative to Root.
	LicenseManifest string

	// ChecksumManifest is the checksum manifest name, relative to Root.
	ChecksumManifest string
}

// DefaultLayout returns the layout with well-known artifact names rooted at root.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:             root,
		Lockfile:         DefaultLockfileName,
		VendorDir:        DefaultVendorDirName,
		VendorConfig:     DefaultVendorConfigName,
		LicenseManifest:  DefaultLicenseManifestName,
		ChecksumManifest: DefaultChecksumManifestName,
	}
}

// LockfilePath returns the absolute-or-root-relative path to the lockfile.
func (l Layout) LockfilePath() string {
	return filepath.Join(l.Root, l.Lockfile)
}

// VendorDirPath returns the path to the vendor directory.
func (l Layout) VendorDirPath() string {
	return filepath.Join(l.Root, l.VendorDir)
}

// VendorConfigPath returns the path to the captured engine configuration.
func (l Layout) VendorConfigPath() string {
	return filepath.Join(l.Root, l.VendorConfig)
}

// LicenseManifestPath returns the path to the license manifest.
func (l Layout) LicenseManifestPath() string {
	return filepath.Join(l.Root, l.LicenseManifest)
}

// ChecksumManifestPath returns the path to the checksum manifest.
func (l Layout) ChecksumManifestPath() string {
	return filepath.Join(l.Root, l.ChecksumManifest)
}
