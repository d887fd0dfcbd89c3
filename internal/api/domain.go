package api

import (
	"math/rand"

	"github.com/draftforge/draftforge/internal/dataset"
	"github.com/draftforge/draftforge/internal/export"
	"github.com/draftforge/draftforge/internal/generator"
	"github.com/draftforge/draftforge/internal/inventory"
	"github.com/draftforge/draftforge/pkg/layout"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Generator generator.System
	Inventory inventory.System
	Export    export.System
	Dataset   *dataset.Corpus
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	var rng *rand.Rand
	if runtime.Generator.Seed != 0 {
		rng = rand.New(rand.NewSource(runtime.Generator.Seed))
	}

	corpus := &dataset.Corpus{}
	if runtime.Generator.DatasetDir != "" {
		loaded, err := dataset.Load(runtime.Generator.DatasetDir, runtime.Logger)
		if err != nil {
			runtime.Logger.Warn("reference corpus load failed", "error", err)
		} else {
			corpus = loaded
		}
	}

	generatorSystem := generator.New(
		runtime.Vault,
		layout.DefaultStyles(),
		runtime.Logger,
		rng,
	)

	inventorySystem := inventory.New(
		runtime.Vault,
		runtime.Logger,
	)

	exportSystem := export.New(
		runtime.Vault,
		runtime.Blob,
		runtime.Workers,
		runtime.Logger,
	)

	return &Domain{
		Generator: generatorSystem,
		Inventory: inventorySystem,
		Export:    exportSystem,
		Dataset:   corpus,
	}
}
