package app

import (
	"context"

	"github.com/cratedock/cratedock/internal/adapters/cargo"     //nolint:depguard // Wired in app layer
	"github.com/cratedock/cratedock/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/cratedock/cratedock/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/cratedock/cratedock/internal/adapters/license"   //nolint:depguard // Wired in app layer
	"github.com/cratedock/cratedock/internal/adapters/lockfile"  //nolint:depguard // Wired in app layer
	"github.com/cratedock/cratedock/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/cratedock/cratedock/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"github.com/cratedock/cratedock/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/cratedock/cratedock/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			lockfile.NodeID,
			cargo.NodeID,
			license.NodeID,
			manifest.NodeID,
			fs.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.LockfileReader](ctx)
			if err != nil {
				return nil, err
			}
			vendorer, err := graft.Dep[ports.Vendorer](ctx)
			if err != nil {
				return nil, err
			}
			scanner, err := graft.Dep[ports.LicenseScanner](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestWriter](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, reader, vendorer, scanner, manifests, verifier, log, tel), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

// Components provides controlled access to the pieces the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
