package domain

// Default command lines for the external tools the workflow drives.
// Both are overridable through the cratedock.yaml configuration file.
var (
	// DefaultVendorCommand invokes the vendoring engine. The vendor directory
	// is appended as the final argument.
	DefaultVendorCommand = []string{"cargo", "vendor"}

	// DefaultScanCommand invokes the license-scanning helper. The vendored
	// package directory is appended as the final argument.
	DefaultScanCommand = []string{"askalono", "identify"}
)

// UnknownLicense is the marker written to the license manifest for a vendored
// package whose license the helper could not determine. Emitting a marker
// instead of dropping the package keeps the manifest's entry count equal to
// the vendored package count.
const UnknownLicense = "UNKNOWN"

// Config holds the tool configuration resolved for one working root.
type Config struct {
	// Layout locates every artifact of the run.
	Layout Layout

	// VendorCommand is the vendoring engine command line.
	VendorCommand []string

	// ScanCommand is the license-scanning helper command line.
	ScanCommand []string
}

// DefaultConfig returns the configuration used when no cratedock.yaml exists
// in the working root.
func DefaultConfig(root string) *Config {
	return &Config{
		Layout:        DefaultLayout(root),
		VendorCommand: DefaultVendorCommand,
		ScanCommand:   DefaultScanCommand,
	}
}
