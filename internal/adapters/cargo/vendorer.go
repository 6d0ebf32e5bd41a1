// Package cargo invokes the external vendoring engine.
package cargo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/cratedock/cratedock/internal/core/domain"
	"github.com/cratedock/cratedock/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTailLimit bounds how much engine stderr is attached to a failure.
const stderrTailLimit = 4096

// Vendorer implements ports.Vendorer by shelling out to the configured
// vendoring engine (cargo vendor by default).
type Vendorer struct {
	logger ports.Logger
}

// NewVendorer creates a new Vendorer.
func NewVendorer(logger ports.Logger) *Vendorer {
	return &Vendorer{
		logger: logger,
	}
}

// Vendor runs the engine with the working root as its directory and the
// vendor directory as its final argument. The engine's stdout is its source
// configuration and is returned verbatim; stderr streams to the current
// telemetry vertex (or the logger) while a bounded tail is kept for error
// reporting.
func (v *Vendorer) Vendor(ctx context.Context, cfg *domain.Config) ([]byte, error) {
	name := cfg.VendorCommand[0]
	args := make([]string, 0, len(cfg.VendorCommand))
	args = append(args, cfg.VendorCommand[1:]...)
	args = append(args, cfg.Layout.VendorDir)

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command comes from configuration
	cmd.Dir = cfg.Layout.Root

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	var stderrTail bytes.Buffer
	cmd.Stderr = io.MultiWriter(&stderrTail, v.stderrSink(ctx))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		venErr := zerr.Wrap(err, "vendoring engine failed")
		venErr = zerr.With(venErr, "command", strings.Join(cfg.VendorCommand, " "))
		venErr = zerr.With(venErr, "exit_code", exitCode)
		venErr = zerr.With(venErr, "stderr", tail(stderrTail.Bytes()))
		return nil, errors.Join(domain.ErrVendoringFailed, venErr)
	}

	return stdout.Bytes(), nil
}

// stderrSink picks where live engine output goes: the current step vertex if
// one is recording, the logger otherwise.
func (v *Vendorer) stderrSink(ctx context.Context) io.Writer {
	if vtx, ok := ports.VertexFromContext(ctx); ok {
		return vtx.Stderr()
	}
	return &logWriter{logger: v.logger}
}

func tail(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > stderrTailLimit {
		s = s[len(s)-stderrTailLimit:]
	}
	return s
}

// logWriter forwards subprocess output lines to the logger.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		w.logger.Info(line)
	}
	return len(p), nil
}
