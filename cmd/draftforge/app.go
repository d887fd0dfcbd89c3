package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/draftforge/draftforge/internal/config"
	"github.com/draftforge/draftforge/internal/export"
	"github.com/draftforge/draftforge/internal/generator"
	"github.com/draftforge/draftforge/internal/infrastructure"
	"github.com/draftforge/draftforge/internal/inventory"
	"github.com/draftforge/draftforge/pkg/layout"
)

// app wires the domain systems for a single command invocation.
type app struct {
	cfg       *config.Config
	infra     *infrastructure.Infrastructure
	generator generator.System
	inventory inventory.System
	export    export.System
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := infra.Start(); err != nil {
		return nil, err
	}
	infra.Lifecycle.WaitForStartup()

	var rng *rand.Rand
	if cfg.Generator.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Generator.Seed))
	}

	return &app{
		cfg:       cfg,
		infra:     infra,
		generator: generator.New(infra.Vault, layout.DefaultStyles(), infra.Logger, rng),
		inventory: inventory.New(infra.Vault, infra.Logger),
		export:    export.New(infra.Vault, infra.Blob, cfg.Export.UploadWorkers, infra.Logger),
	}, nil
}

func (a *app) close() {
	if err := a.infra.Lifecycle.Shutdown(a.cfg.ShutdownTimeoutDuration()); err != nil {
		a.infra.Logger.Error("shutdown error", "error", err)
	}
}

// emit writes v as indented JSON to stdout.
func emit(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
