// Package generator orchestrates contract document production: it
// assembles documents from the clause library, renders them to PDF,
// writes the artifacts into the vault, and emits metadata records.
package generator

import (
	"context"

	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/pagination"
)

// System defines the public contract for generation operations.
type System interface {
	Handler(pagination pagination.Config) *Handler

	Generate(ctx context.Context, cfg contracts.GenerateConfig) (*contracts.Record, error)
	GenerateAmendment(ctx context.Context, cfg contracts.AmendmentConfig) (*contracts.Record, error)
	GenerateBatch(ctx context.Context, cfg contracts.BatchConfig) ([]contracts.BatchResult, error)
}
