package lockfile

import (
	"context"

	"github.com/cratedock/cratedock/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.lockfile_reader"

func init() {
	graft.Register(graft.Node[ports.LockfileReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileReader, error) {
			return NewReader(), nil
		},
	})
}
