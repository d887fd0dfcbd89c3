// Package assemble composes contract documents from the clause library.
// Each agreement type has a template function that selects and orders
// clauses according to the generation config, producing a layout
// document ready for rendering. Randomness is confined to synthesized
// header details (contract numbers, addresses) and always flows through
// the caller's rand source.
package assemble

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/draftforge/draftforge/internal/clauses"
	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/layout"
)

// Func builds a complete document for one agreement type.
type Func func(cfg contracts.GenerateConfig, date time.Time, rng *rand.Rand) *layout.Document

var registry = map[contracts.Type]Func{
	contracts.SoftwareLicense:      License,
	contracts.ProfessionalServices: Services,
	contracts.CloudServices:        Cloud,
	contracts.HardwarePurchase:     Standard,
	contracts.MasterService:        Standard,
	contracts.Consulting:           Services,
	contracts.Distribution:         Standard,
	contracts.Maintenance:          Standard,
	contracts.JointVenture:         Standard,
	contracts.StrategicAlliance:    Standard,
}

// Resolve returns the template for the given agreement type, or
// contracts.ErrUnknownType when the type is not registered.
func Resolve(t contracts.Type) (Func, error) {
	if fn, ok := registry[t]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %q", contracts.ErrUnknownType, t)
}

// ResolveOrDefault returns the template for the given agreement type,
// falling back to the Software License template for unknown types.
func ResolveOrDefault(t contracts.Type) Func {
	if fn, ok := registry[t]; ok {
		return fn
	}
	return License
}

var complexityRank = map[contracts.Complexity]int{
	contracts.Minimal:       0,
	contracts.Standard:      1,
	contracts.Detailed:      2,
	contracts.Comprehensive: 3,
}

// atLeast reports whether the configured complexity meets the minimum
// required for an optional provision. Unrecognized levels read as Standard.
func atLeast(c, min contracts.Complexity) bool {
	rank, ok := complexityRank[c]
	if !ok {
		rank = complexityRank[contracts.Standard]
	}
	return rank >= complexityRank[min]
}

// clauseContext converts a generation config into the clause library's
// parameter set.
func clauseContext(cfg contracts.GenerateConfig) clauses.Context {
	return clauses.Context{
		Vendor:          cfg.Vendor,
		Value:           cfg.Value,
		TermYears:       cfg.TermYears,
		UncappedFees:    cfg.Risks.UncappedFees,
		LowLiability:    cfg.Risks.LowLiability,
		DataSovereignty: cfg.Risks.DataSovereignty,
		AsymmetricTerms: cfg.Risks.AsymmetricTerms,
		IPIssues:        cfg.Risks.IPIssues,
		WarrantyGaps:    cfg.Risks.WarrantyGaps,
	}
}

// article is one numbered section of a contract body.
type article struct {
	title   string
	clauses []clauses.Clause
}

// writeArticles renders numbered articles with dotted sub-clause
// numbering, matching the body conventions of the generated agreements.
func writeArticles(doc *layout.Document, articles []article) {
	for i, a := range articles {
		doc.Heading(fmt.Sprintf("ARTICLE %d: %s", i+1, strings.ToUpper(a.title)))
		for j, c := range a.clauses {
			text := fmt.Sprintf("%d.%d %s. %s", i+1, j+1, c.Title, c.Body)
			if c.Risk() {
				doc.RiskParagraph(text, c.Note)
			} else {
				doc.Paragraph(text)
			}
		}
		doc.Spacer(12)
	}
}
