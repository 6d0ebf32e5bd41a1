// Package app implements the workflow coordinator for cratedock.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cratedock/cratedock/internal/adapters/manifest"
	"github.com/cratedock/cratedock/internal/core/domain"
	"github.com/cratedock/cratedock/internal/core/ports"
	"go.trai.ch/zerr"
)

// App coordinates the staging workflow. Operations run their steps strictly
// in order; a failing step short-circuits the rest, so manifests are only
// ever written after everything they depend on succeeded.
//
// The tool assumes exclusive use of the working root per invocation.
// Concurrent invocations against the same root are unsupported and may
// corrupt output; no locking is attempted.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.LockfileReader
	vendorer     ports.Vendorer
	scanner      ports.LicenseScanner
	manifests    ports.ManifestWriter
	verifier     ports.Verifier
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.LockfileReader,
	vendorer ports.Vendorer,
	scanner ports.LicenseScanner,
	manifests ports.ManifestWriter,
	verifier ports.Verifier,
	log ports.Logger,
	tel ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		vendorer:     vendorer,
		scanner:      scanner,
		manifests:    manifests,
		verifier:     verifier,
		logger:       log,
		telemetry:    tel,
	}
}

// runState carries the artifacts of one workflow run between steps.
// The lockfile is read exactly once; every later step operates on that
// snapshot rather than re-reading a file that may have changed mid-run.
type runState struct {
	cfg      *domain.Config
	lockfile *domain.Lockfile
	summary  domain.Summary
}

// step is one named unit of an operation.
type step struct {
	name string
	run  func(ctx context.Context, st *runState) error
}

// Build stages all dependencies, collects licenses, and writes both manifests.
func (a *App) Build(ctx context.Context, root string) (domain.Summary, error) {
	return a.execute(ctx, root, []step{
		{"read lockfile", a.readLockfile},
		{"vendor dependencies", a.vendorDependencies},
		{"collect licenses", a.collectLicenses},
		{"write checksum manifest", a.writeChecksumManifest},
	})
}

// Test stages dependencies and writes the checksum manifest, skipping the
// license pass to shorten the cycle. The license manifest is not touched.
func (a *App) Test(ctx context.Context, root string) (domain.Summary, error) {
	return a.execute(ctx, root, []step{
		{"read lockfile", a.readLockfile},
		{"vendor dependencies", a.vendorDependencies},
		{"write checksum manifest", a.writeChecksumManifest},
	})
}

// execute loads the configuration once and runs the steps in order,
// recording each as a telemetry vertex and stopping at the first failure.
func (a *App) execute(ctx context.Context, root string, steps []step) (domain.Summary, error) {
	defer func() {
		_ = a.telemetry.Close()
	}()

	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return domain.Summary{}, errors.Join(domain.ErrWorkflowFailed,
			zerr.Wrap(err, "failed to load configuration"))
	}
	st := &runState{cfg: cfg}

	for _, s := range steps {
		stepCtx, vtx := a.telemetry.Record(ctx, s.name)
		err := s.run(stepCtx, st)
		vtx.Complete(err)
		if err != nil {
			return st.summary, errors.Join(domain.ErrWorkflowFailed,
				zerr.Wrap(err, s.name+" failed"))
		}
	}

	return st.summary, nil
}

func (a *App) readLockfile(_ context.Context, st *runState) error {
	lf, err := a.reader.Read(st.cfg.Layout.LockfilePath())
	if err != nil {
		return err
	}
	st.lockfile = lf
	st.summary.Packages = len(lf.Packages)
	a.logger.Info(fmt.Sprintf("lockfile pins %d packages", len(lf.Packages)))
	return nil
}

// vendorDependencies runs the engine and persists its configuration output.
// The capture is written only after the engine succeeded, so a vendoring
// failure leaves every generated file from a previous run untouched.
func (a *App) vendorDependencies(ctx context.Context, st *runState) error {
	engineConfig, err := a.vendorer.Vendor(ctx, st.cfg)
	if err != nil {
		return err
	}
	return a.manifests.Write(st.cfg.Layout.VendorConfigPath(), engineConfig)
}

// collectLicenses scans every vendored package and writes the sorted license
// manifest. A package whose scan fails or reports nothing contributes the
// UnknownLicense marker instead of being dropped, so the manifest never has
// fewer entries than there are vendored packages.
func (a *App) collectLicenses(ctx context.Context, st *runState) error {
	vendorDir := st.cfg.Layout.VendorDirPath()

	entries, err := os.ReadDir(vendorDir)
	if err != nil {
		return errors.Join(domain.ErrLicenseScanFailed,
			zerr.With(zerr.Wrap(err, "failed to enumerate vendored packages"), "path", vendorDir))
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pkgDir := filepath.Join(vendorDir, entry.Name())

		pkgIDs, err := a.scanner.Scan(ctx, st.cfg, pkgDir)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("license scan failed for %s, recording %s", entry.Name(), domain.UnknownLicense))
			ids = append(ids, domain.UnknownLicense)
			continue
		}
		if len(pkgIDs) == 0 {
			ids = append(ids, domain.UnknownLicense)
			continue
		}
		ids = append(ids, pkgIDs...)
	}

	st.summary.Licenses = len(ids)
	return a.manifests.Write(st.cfg.Layout.LicenseManifestPath(), manifest.RenderLicenseList(ids))
}

func (a *App) writeChecksumManifest(_ context.Context, st *runState) error {
	rows := st.lockfile.ChecksumRows()
	st.summary.ChecksumRows = len(rows)
	return a.manifests.Write(st.cfg.Layout.ChecksumManifestPath(), manifest.RenderChecksumTable(rows))
}

// Verify checks the vendored tree against the lockfile's pinned checksums.
func (a *App) Verify(ctx context.Context, root string) (domain.Summary, error) {
	return a.execute(ctx, root, []step{
		{"read lockfile", a.readLockfile},
		{"verify vendored tree", func(_ context.Context, st *runState) error {
			return a.verifier.VerifyVendorTree(st.lockfile, st.cfg.Layout.VendorDirPath())
		}},
	})
}

// Clean removes the vendored tree, the lockfile, and the captured engine
// configuration. Removal is idempotent: targets that are already absent are
// not an error.
func (a *App) Clean(_ context.Context, root string) error {
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return errors.Join(domain.ErrWorkflowFailed,
			zerr.Wrap(err, "failed to load configuration"))
	}

	var errs error
	remove := func(path, name string) {
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove "+name), "path", path))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(cfg.Layout.VendorDirPath(), "vendored tree")
	remove(cfg.Layout.LockfilePath(), "lockfile")
	remove(cfg.Layout.VendorConfigPath(), "vendor configuration")

	return errs
}
