package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cratedock/cratedock/internal/adapters/config"
	"github.com/cratedock/cratedock/internal/adapters/telemetry"
	"github.com/cratedock/cratedock/internal/app"
	"github.com/cratedock/cratedock/internal/core/domain"
	"github.com/cratedock/cratedock/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// deps bundles the mocked ports of an App under test. Telemetry is the no-op
// implementation; the workflow closes it once per run and nothing observes it.
type deps struct {
	loader    *mocks.MockConfigLoader
	reader    *mocks.MockLockfileReader
	vendorer  *mocks.MockVendorer
	scanner   *mocks.MockLicenseScanner
	manifests *mocks.MockManifestWriter
	verifier  *mocks.MockVerifier
	logger    *mocks.MockLogger
}

func newApp(t *testing.T) (*app.App, *deps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &deps{
		loader:    mocks.NewMockConfigLoader(ctrl),
		reader:    mocks.NewMockLockfileReader(ctrl),
		vendorer:  mocks.NewMockVendorer(ctrl),
		scanner:   mocks.NewMockLicenseScanner(ctrl),
		manifests: mocks.NewMockManifestWriter(ctrl),
		verifier:  mocks.NewMockVerifier(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	d.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	d.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(d.loader, d.reader, d.vendorer, d.scanner, d.manifests,
		d.verifier, d.logger, telemetry.NewNoOp())
	return a, d
}

func testLockfile() *domain.Lockfile {
	return &domain.Lockfile{
		Version: 3,
		Packages: []domain.Package{
			{Name: "libc", Version: "0.2.0", Source: "registry+https://github.com/rust-lang/crates.io-index", Checksum: "aaaa"},
			{Name: "serde", Version: "1.0.136", Source: "registry+https://github.com/rust-lang/crates.io-index", Checksum: "bbbb"},
			{Name: "rocket", Version: "0.5.0"},
		},
	}
}

// vendorTree creates a working root whose vendor directory holds one
// directory per vendored package, plus a stray file that must be skipped.
func vendorTree(t *testing.T, pkgs ...string) *domain.Config {
	t.Helper()
	root := t.TempDir()
	cfg := domain.DefaultConfig(root)

	vendorDir := cfg.Layout.VendorDirPath()
	require.NoError(t, os.MkdirAll(vendorDir, domain.DirPerm))
	for _, pkg := range pkgs {
		require.NoError(t, os.Mkdir(filepath.Join(vendorDir, pkg), domain.DirPerm))
	}
	require.NoError(t, os.WriteFile(filepath.Join(vendorDir, ".stray"), nil, 0o600))

	return cfg
}

func TestApp_Build(t *testing.T) {
	a, d := newApp(t)
	cfg := vendorTree(t, "libc-0.2.0", "serde-1.0.136")
	ctx := context.Background()

	d.loader.EXPECT().Load(cfg.Layout.Root).Return(cfg, nil)
	d.reader.EXPECT().Read(cfg.Layout.LockfilePath()).Return(testLockfile(), nil)
	d.vendorer.EXPECT().Vendor(gomock.Any(), cfg).Return([]byte("[source.crates-io]\n"), nil)
	d.scanner.EXPECT().Scan(gomock.Any(), cfg, filepath.Join(cfg.Layout.VendorDirPath(), "libc-0.2.0")).
		Return([]string{"MIT", "Apache-2.0"}, nil)
	d.scanner.EXPECT().Scan(gomock.Any(), cfg, filepath.Join(cfg.Layout.VendorDirPath(), "serde-1.0.136")).
		Return([]string{"MIT"}, nil)

	d.manifests.EXPECT().Write(cfg.Layout.VendorConfigPath(), []byte("[source.crates-io]\n")).Return(nil)
	d.manifests.EXPECT().Write(cfg.Layout.LicenseManifestPath(), []byte("Apache-2.0\nMIT\nMIT\n")).Return(nil)
	d.manifests.EXPECT().Write(cfg.Layout.ChecksumManifestPath(), []byte("libc   aaaa\nserde  bbbb\n")).Return(nil)

	summary, err := a.Build(ctx, cfg.Layout.Root)
	require.NoError(t, err)
	assert.Equal(t, domain.Summary{Packages: 3, Licenses: 3, ChecksumRows: 2}, summary)
}

func TestApp_Build_ScanFailureDegradesToUnknown(t *testing.T) {
	a, d := newApp(t)
	cfg := vendorTree(t, "libc-0.2.0", "serde-1.0.136")
	ctx := context.Background()

	d.loader.EXPECT().Load(cfg.Layout.Root).Return(cfg, nil)
	d.reader.EXPECT().Read(cfg.Layout.LockfilePath()).Return(testLockfile(), nil)
	d.vendorer.EXPECT().Vendor(gomock.Any(), cfg).Return([]byte("cfg"), nil)
	d.scanner.EXPECT().Scan(gomock.Any(), cfg, gomock.Any()).Return(nil, assert.AnError)
	d.scanner.EXPECT().Scan(gomock.Any(), cfg, gomock.Any()).Return(nil, nil)

	d.manifests.EXPECT().Write(cfg.Layout.VendorConfigPath(), gomock.Any()).Return(nil)
	// Both packages degrade to the marker; neither is dropped.
	d.manifests.EXPECT().Write(cfg.Layout.LicenseManifestPath(), []byte("UNKNOWN\nUNKNOWN\n")).Return(nil)
	d.manifests.EXPECT().Write(cfg.Layout.ChecksumManifestPath(), gomock.Any()).Return(nil)

	summary, err := a.Build(ctx, cfg.Layout.Root)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Licenses)
}

func TestApp_Build_VendoringFailureWritesNothing(t *testing.T) {
	a, d := newApp(t)
	cfg := vendorTree(t)
	ctx := context.Background()

	d.loader.EXPECT().Load(cfg.Layout.Root).Return(cfg, nil)
	d.reader.EXPECT().Read(cfg.Layout.LockfilePath()).Return(testLockfile(), nil)
	d.vendorer.EXPECT().Vendor(gomock.Any(), cfg).Return(nil, domain.ErrVendoringFailed)
	// No Write expectation: a vendoring failure must leave every manifest
	// untouched, including the engine configuration capture.

	_, err := a.Build(ctx, cfg.Layout.Root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkflowFailed)
	assert.ErrorIs(t, err, domain.ErrVendoringFailed)
}

func TestApp_Build_MissingLockfile(t *testing.T) {
	a, d := newApp(t)
	cfg := vendorTree(t)
	ctx := context.Background()

	d.loader.EXPECT().Load(cfg.Layout.Root).Return(cfg, nil)
	d.reader.EXPECT().Read(cfg.Layout.LockfilePath()).Return(nil, domain.ErrLockfileNotFound)

	_, err := a.Build(ctx, cfg.Layout.Root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkflowFailed)
	assert.ErrorIs(t, err, domain.ErrLockfileNotFound)
}

func TestApp_Test_SkipsLicensePass(t *testing.T) {
	a, d := newApp(t)
	cfg := vendorTree(t, "libc-0.2.0")
	ctx := context.Background()

	d.loader.EXPECT().Load(cfg.Layout.Root).Return(cfg, nil)
	d.reader.EXPECT().Read(cfg.Layout.LockfilePath()).Return(testLockfile(), nil)
	d.vendorer.EXPECT().Vendor(gomock.Any(), cfg).Return([]byte("cfg"), nil)

	// The scanner is never invoked and the license manifest is never written.
	d.manifests.EXPECT().Write(cfg.Layout.VendorConfigPath(), gomock.Any()).Return(nil)
	d.manifests.EXPECT().Write(cfg.Layout.ChecksumManifestPath(), gomock.Any()).Return(nil)

	summary, err := a.Test(ctx, cfg.Layout.Root)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Licenses)
	assert.Equal(t, 2, summary.ChecksumRows)
}

func TestApp_Verify(t *testing.T) {
	a, d := newApp(t)
	cfg := domain.DefaultConfig(t.TempDir())
	ctx := context.Background()

	lf := testLockfile()
	d.loader.EXPECT().Load(cfg.Layout.Root).Return(cfg, nil)
	d.reader.EXPECT().Read(cfg.Layout.LockfilePath()).Return(lf, nil)
	d.verifier.EXPECT().VerifyVendorTree(lf, cfg.Layout.VendorDirPath()).Return(nil)

	summary, err := a.Verify(ctx, cfg.Layout.Root)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Packages)
}

func TestApp_Verify_Mismatch(t *testing.T) {
	a, d := newApp(t)
	cfg := domain.DefaultConfig(t.TempDir())
	ctx := context.Background()

	d.loader.EXPECT().Load(cfg.Layout.Root).Return(cfg, nil)
	d.reader.EXPECT().Read(cfg.Layout.LockfilePath()).Return(testLockfile(), nil)
	d.verifier.EXPECT().VerifyVendorTree(gomock.Any(), gomock.Any()).Return(domain.ErrVerificationFailed)

	_, err := a.Verify(ctx, cfg.Layout.Root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkflowFailed)
	assert.ErrorIs(t, err, domain.ErrVerificationFailed)
}

func TestApp_Clean(t *testing.T) {
	a, d := newApp(t)
	root := t.TempDir()
	cfg := domain.DefaultConfig(root)

	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Layout.VendorDirPath(), "serde-1.0.136"), domain.DirPerm))
	require.NoError(t, os.WriteFile(cfg.Layout.LockfilePath(), []byte("version = 3\n"), 0o600))
	require.NoError(t, os.WriteFile(cfg.Layout.VendorConfigPath(), []byte("[source]\n"), 0o600))
	keep := filepath.Join(root, "Cargo.toml")
	require.NoError(t, os.WriteFile(keep, []byte("[package]\n"), 0o600))

	d.loader.EXPECT().Load(root).Return(cfg, nil).Times(2)

	require.NoError(t, a.Clean(context.Background(), root))

	assert.NoDirExists(t, cfg.Layout.VendorDirPath())
	assert.NoFileExists(t, cfg.Layout.LockfilePath())
	assert.NoFileExists(t, cfg.Layout.VendorConfigPath())
	assert.FileExists(t, keep)

	// A second pass over the already-clean root succeeds.
	require.NoError(t, a.Clean(context.Background(), root))
}

func TestApp_Clean_RejectsVendorDirOutsideRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "project")
	victim := filepath.Join(base, "victim")
	require.NoError(t, os.MkdirAll(root, domain.DirPerm))
	require.NoError(t, os.MkdirAll(victim, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName),
		[]byte("vendorDir: ../victim\n"), 0o600))

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	a := app.New(config.NewLoader(), mocks.NewMockLockfileReader(ctrl),
		mocks.NewMockVendorer(ctrl), mocks.NewMockLicenseScanner(ctrl),
		mocks.NewMockManifestWriter(ctrl), mocks.NewMockVerifier(ctrl),
		logger, telemetry.NewNoOp())

	err := a.Clean(context.Background(), root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkflowFailed)

	// The sibling directory the override pointed at is untouched.
	assert.DirExists(t, victim)
}

func TestApp_ConfigLoadFailure(t *testing.T) {
	a, d := newApp(t)
	ctx := context.Background()

	d.loader.EXPECT().Load("nowhere").Return(nil, assert.AnError).Times(2)

	_, err := a.Build(ctx, "nowhere")
	assert.ErrorIs(t, err, domain.ErrWorkflowFailed)

	err = a.Clean(ctx, "nowhere")
	assert.ErrorIs(t, err, domain.ErrWorkflowFailed)
}
