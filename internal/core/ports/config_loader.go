package ports

import "go.trai.ch/fractile/internal/core/domain"

// ConfigLoader defines the interface for loading the render configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path, overlays it on the defaults and
	// validates the result.
	Load(path string) (*domain.Config, error)

	// Discover walks up from cwd and returns the path of the nearest fractile.yaml.
	Discover(cwd string) (string, error)
}
