package license

import (
	"context"

	"github.com/cratedock/cratedock/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.license_scanner"

func init() {
	graft.Register(graft.Node[ports.LicenseScanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LicenseScanner, error) {
			return NewScanner(), nil
		},
	})
}
