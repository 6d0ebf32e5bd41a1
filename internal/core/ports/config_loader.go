// Package ports defines the core interfaces for the application.
package ports

import "github.com/cratedock/cratedock/internal/core/domain"

// ConfigLoader resolves the tool configuration for a working root.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the optional configuration file from the given working root
	// and returns it merged over the defaults.
	Load(root string) (*domain.Config, error)
}
