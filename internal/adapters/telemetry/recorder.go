// Package telemetry records workflow steps as progress vertices.
package telemetry

import (
	"context"

	"github.com/cratedock/cratedock/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

// Recorder implements ports.Telemetry using the progrock library. Vertex
// writers tee into the logger; the tape alone has no display path, so
// without the echo a long engine run would produce no visible output.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	logger ports.Logger
}

// New creates a Recorder with a default tape.
func New(log ports.Logger) ports.Telemetry {
	return NewRecorder(progrock.NewTape(), log)
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer, log ports.Logger) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		logger: log,
	}
}

// Record starts recording a new step vertex and attaches it to the context
// so adapters can stream subprocess output into it.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := &Vertex{vertex: r.rec.Vertex(d, name), logger: r.logger}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
