// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, artifact storage, blob export) that
// domain systems require.
package infrastructure

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/draftforge/draftforge/internal/config"
	"github.com/draftforge/draftforge/pkg/blob"
	"github.com/draftforge/draftforge/pkg/lifecycle"
	"github.com/draftforge/draftforge/pkg/vault"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, the artifact vault, and the optional blob export target.
// Blob is nil when the export mirror is disabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Vault     vault.System
	Blob      blob.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := vault.New(&cfg.Vault, logger)
	if err != nil {
		return nil, fmt.Errorf("vault init failed: %w", err)
	}

	var exporter blob.System
	exporter, err = blob.New(&cfg.Export, logger)
	if err != nil {
		if !errors.Is(err, blob.ErrDisabled) {
			return nil, fmt.Errorf("blob init failed: %w", err)
		}
		exporter = nil
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Vault:     store,
		Blob:      exporter,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Vault.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("vault start failed: %w", err)
	}
	if i.Blob != nil {
		if err := i.Blob.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("blob start failed: %w", err)
		}
	}
	return nil
}
