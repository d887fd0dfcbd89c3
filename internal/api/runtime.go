package api

import (
	"github.com/draftforge/draftforge/internal/config"
	"github.com/draftforge/draftforge/internal/infrastructure"
	"github.com/draftforge/draftforge/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Generator  config.GeneratorConfig
	Workers    int
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Vault:     infra.Vault,
			Blob:      infra.Blob,
		},
		Pagination: cfg.API.Pagination,
		Generator:  cfg.Generator,
		Workers:    cfg.Export.UploadWorkers,
	}
}
