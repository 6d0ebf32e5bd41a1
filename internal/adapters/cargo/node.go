package cargo

import (
	"context"

	"github.com/cratedock/cratedock/internal/adapters/logger"
	"github.com/cratedock/cratedock/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.vendorer"

func init() {
	graft.Register(graft.Node[ports.Vendorer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Vendorer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewVendorer(log), nil
		},
	})
}
