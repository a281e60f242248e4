package ports

import "go.trai.ch/xcinfo/internal/core/domain"

// ConfigLoader defines the interface for loading project settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads xcinfo.yaml from the given working directory.
	// A missing file yields domain.DefaultConfig().
	Load(cwd string) (domain.Config, error)
}
