package telemetry

import (
	"io"
	"strings"

	"github.com/cratedock/cratedock/internal/core/ports"
	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
// Writers tee into the logger so subprocess output stays visible.
type Vertex struct {
	vertex *progrock.VertexRecorder
	logger ports.Logger
}

// Stdout returns a writer capturing the step's standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return io.MultiWriter(v.vertex.Stdout(), &logWriter{logger: v.logger})
}

// Stderr returns a writer capturing the step's error output stream.
func (v *Vertex) Stderr() io.Writer {
	return io.MultiWriter(v.vertex.Stderr(), &logWriter{logger: v.logger})
}

// Complete marks the step as finished, successfully or with an error.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// logWriter forwards recorded output lines to the logger.
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
