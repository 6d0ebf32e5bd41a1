// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/cratedock/cratedock/internal/adapters/cargo"
	_ "github.com/cratedock/cratedock/internal/adapters/config"
	_ "github.com/cratedock/cratedock/internal/adapters/fs"
	_ "github.com/cratedock/cratedock/internal/adapters/license"
	_ "github.com/cratedock/cratedock/internal/adapters/lockfile"
	_ "github.com/cratedock/cratedock/internal/adapters/logger"
	_ "github.com/cratedock/cratedock/internal/adapters/manifest"
	_ "github.com/cratedock/cratedock/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/cratedock/cratedock/internal/app"
)
