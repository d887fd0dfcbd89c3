package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/draftforge/draftforge/internal/assemble"
	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/formatting"
	"github.com/draftforge/draftforge/pkg/layout"
	"github.com/draftforge/draftforge/pkg/pagination"
	"github.com/draftforge/draftforge/pkg/vault"
)

// defaultVendors supplies a vendor name per agreement type when the
// config omits one.
var defaultVendors = map[contracts.Type]string{
	contracts.SoftwareLicense:      "TechVendor Solutions Inc.",
	contracts.ProfessionalServices: "Apex Consulting Group LLC",
	contracts.Consulting:           "Apex Consulting Group LLC",
	contracts.CloudServices:        "CloudTech Services Inc.",
}

// defaultValues supplies a contract value per agreement type when the
// config omits one. Types without an entry draw a random value in the
// standard range.
var defaultValues = map[contracts.Type]int64{
	contracts.SoftwareLicense:      850000,
	contracts.ProfessionalServices: 1200000,
	contracts.Consulting:           1200000,
	contracts.CloudServices:        950000,
}

type generator struct {
	vault    vault.System
	renderer *layout.Renderer
	logger   *slog.Logger
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a generation System backed by the given vault. The rand
// source drives synthesized header details and default value selection;
// passing a seeded source makes output reproducible.
func New(v vault.System, styles layout.StyleSheet, logger *slog.Logger, rng *rand.Rand) System {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &generator{
		vault:    v,
		renderer: layout.NewRenderer(styles),
		logger:   logger.With("system", "generator"),
		now:      time.Now,
		rng:      rng,
	}
}

func (g *generator) Handler(pagination pagination.Config) *Handler {
	return NewHandler(g, g.logger, pagination)
}

func (g *generator) Generate(ctx context.Context, cfg contracts.GenerateConfig) (*contracts.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fn, err := assemble.Resolve(cfg.Type)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.normalize(&cfg)
	now := g.now()

	doc := fn(cfg, now, g.rng)
	data, err := g.renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render contract: %w", err)
	}

	folder, err := g.resolveFolder(cfg.Folder, now)
	if err != nil {
		return nil, err
	}

	id := shortID(8)
	filename := fmt.Sprintf("contract_%s_%s_%s.pdf",
		contracts.Abbrev(cfg.Type), now.Format(vault.StampLayout), shortID(4))

	path, err := g.vault.Write(folder, filename, data)
	if err != nil {
		return nil, err
	}

	rec := &contracts.Record{
		ID:       id,
		Name:     "Contract " + strings.ToUpper(id),
		Type:     string(cfg.Type),
		Vendor:   cfg.Vendor,
		Value:    cfg.Value,
		Date:     now.Format(vault.DateLayout),
		Filename: filename,
		Path:     path,
		Issues:   doc.RiskCount(),
		Folder:   filepath.Base(folder),
	}
	g.applyStat(rec, path)

	g.logger.Info("contract generated",
		"id", rec.ID, "type", rec.Type, "issues", rec.Issues,
		"size", formatting.FormatBytes(rec.FileSize, 1), "path", path)
	return rec, nil
}

func (g *generator) GenerateAmendment(ctx context.Context, cfg contracts.AmendmentConfig) (*contracts.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.Base.ID == "" {
		return nil, fmt.Errorf("%w: amendment requires a base contract", contracts.ErrInvalidConfig)
	}
	if cfg.Number <= 0 {
		cfg.Number = 1
	}
	if cfg.Date.IsZero() {
		cfg.Date = g.now()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	doc := assemble.Amendment(cfg)
	data, err := g.renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render amendment: %w", err)
	}

	now := g.now()
	folder, err := g.vault.DateFolder(cfg.Date)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("amendment_%s_no%d_%s.pdf",
		cfg.Base.ID, cfg.Number, now.Format(vault.StampLayout))

	path, err := g.vault.Write(folder, filename, data)
	if err != nil {
		return nil, err
	}

	value := cfg.Base.Value
	if cfg.Changes.Pricing {
		value = cfg.Changes.NewValue
	}

	rec := &contracts.Record{
		ID:             fmt.Sprintf("%s_AMD%d", cfg.Base.ID, cfg.Number),
		Name:           fmt.Sprintf("Amendment %d to %s", cfg.Number, cfg.Base.Name),
		Type:           "Amendment to " + cfg.Base.Type,
		Vendor:         cfg.Base.Vendor,
		Value:          value,
		Date:           cfg.Date.Format(vault.DateLayout),
		Filename:       filename,
		Path:           path,
		Issues:         doc.RiskCount(),
		Folder:         filepath.Base(folder),
		IsAmendment:    true,
		BaseContractID: cfg.Base.ID,
	}
	g.applyStat(rec, path)

	g.logger.Info("amendment generated",
		"id", rec.ID, "base", cfg.Base.ID, "issues", rec.Issues, "path", path)
	return rec, nil
}

func (g *generator) GenerateBatch(ctx context.Context, cfg contracts.BatchConfig) ([]contracts.BatchResult, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("%w: batch count must be positive", contracts.ErrInvalidConfig)
	}

	types := cfg.Types
	if len(types) == 0 {
		types = contracts.Types
	}

	folder, err := g.vault.StampFolder(g.now())
	if err != nil {
		return nil, err
	}
	folderName := filepath.Base(folder)

	results := make([]contracts.BatchResult, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		g.mu.Lock()
		t := types[g.rng.Intn(len(types))]
		var vendor string
		if len(cfg.Vendors) > 0 {
			vendor = cfg.Vendors[g.rng.Intn(len(cfg.Vendors))]
		}
		var value int64
		if cfg.MaxValue > cfg.MinValue {
			value = cfg.MinValue + g.rng.Int63n(cfg.MaxValue-cfg.MinValue)
		}
		g.mu.Unlock()

		rec, err := g.Generate(ctx, contracts.GenerateConfig{
			Type:       t,
			Vendor:     vendor,
			Value:      value,
			Complexity: cfg.Complexity,
			Risks:      cfg.Risks,
			Folder:     folderName,
		})
		if err != nil {
			g.logger.Error("batch item failed", "index", i, "type", t, "error", err)
			results = append(results, contracts.BatchResult{Error: err.Error()})
			continue
		}
		results = append(results, contracts.BatchResult{Record: rec})
	}

	g.logger.Info("batch complete", "count", cfg.Count, "folder", folderName)
	return results, nil
}

// normalize fills config defaults in place. Callers hold g.mu.
func (g *generator) normalize(cfg *contracts.GenerateConfig) {
	if cfg.Vendor == "" {
		if v, ok := defaultVendors[cfg.Type]; ok {
			cfg.Vendor = v
		} else {
			cfg.Vendor = strings.ToUpper(contracts.Abbrev(cfg.Type)) + " Vendor Solutions Inc."
		}
	}
	if cfg.Value <= 0 {
		if v, ok := defaultValues[cfg.Type]; ok {
			cfg.Value = v
		} else {
			cfg.Value = 400000 + g.rng.Int63n(500001)
		}
	}
	if cfg.TermYears <= 0 {
		cfg.TermYears = 3
	}
	if cfg.Complexity == "" {
		cfg.Complexity = contracts.Standard
	}
}

// resolveFolder returns the named override folder, or the date folder
// for now when no override is set.
func (g *generator) resolveFolder(override string, now time.Time) (string, error) {
	if override != "" {
		return g.vault.Folder(override)
	}
	return g.vault.DateFolder(now)
}

// applyStat fills file size and modified time from the written
// artifact. A stat failure leaves the zero values and is logged rather
// than failing the generation.
func (g *generator) applyStat(rec *contracts.Record, path string) {
	info, err := g.vault.Stat(path)
	if err != nil {
		g.logger.Warn("artifact stat failed", "path", path, "error", err)
		return
	}
	rec.FileSize = info.Size()
	rec.Modified = info.ModTime()
}

// shortID returns the first n characters of a fresh UUID.
func shortID(n int) string {
	return uuid.NewString()[:n]
}
