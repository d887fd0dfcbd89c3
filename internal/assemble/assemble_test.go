package assemble_test

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/draftforge/draftforge/internal/assemble"
	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/layout"
)

var testDate = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func buildConfig(t contracts.Type, risks contracts.RiskFactors) contracts.GenerateConfig {
	return contracts.GenerateConfig{
		Type:       t,
		Vendor:     "TechVendor Solutions Inc.",
		Value:      850000,
		TermYears:  3,
		Complexity: contracts.Standard,
		Risks:      risks,
	}
}

func build(t *testing.T, cfg contracts.GenerateConfig) *layout.Document {
	t.Helper()
	fn, err := assemble.Resolve(cfg.Type)
	if err != nil {
		t.Fatalf("Resolve(%s) failed: %v", cfg.Type, err)
	}
	return fn(cfg, testDate, rand.New(rand.NewSource(1)))
}

func TestResolveUnknownType(t *testing.T) {
	_, err := assemble.Resolve(contracts.Type("Rental Agreement"))
	if err == nil {
		t.Fatal("Resolve should fail for an unregistered type")
	}
	if !errors.Is(err, contracts.ErrUnknownType) {
		t.Errorf("error = %v, want ErrUnknownType", err)
	}
}

func TestResolveCoversAllTypes(t *testing.T) {
	for _, typ := range contracts.Types {
		if _, err := assemble.Resolve(typ); err != nil {
			t.Errorf("Resolve(%s) failed: %v", typ, err)
		}
	}
}

func TestRiskCounts(t *testing.T) {
	tests := []struct {
		name      string
		t         contracts.Type
		risks     contracts.RiskFactors
		wantRisks int
	}{
		{"license clean", contracts.SoftwareLicense, contracts.RiskFactors{}, 3},
		{"license all risks", contracts.SoftwareLicense, contracts.AllRisks(), 6},
		{"services clean", contracts.ProfessionalServices, contracts.RiskFactors{}, 7},
		{"services all risks", contracts.ProfessionalServices, contracts.AllRisks(), 12},
		{"consulting all risks", contracts.Consulting, contracts.AllRisks(), 12},
		{"cloud clean", contracts.CloudServices, contracts.RiskFactors{}, 7},
		{"cloud all risks", contracts.CloudServices, contracts.AllRisks(), 10},
		{"master service clean", contracts.MasterService, contracts.RiskFactors{}, 10},
		{"master service all risks", contracts.MasterService, contracts.AllRisks(), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := build(t, buildConfig(tt.t, tt.risks))
			if got := doc.RiskCount(); got != tt.wantRisks {
				t.Errorf("RiskCount = %d, want %d", got, tt.wantRisks)
			}
		})
	}
}

func TestComplexityGating(t *testing.T) {
	minimal := buildConfig(contracts.SoftwareLicense, contracts.RiskFactors{})
	minimal.Complexity = contracts.Minimal

	comprehensive := minimal
	comprehensive.Complexity = contracts.Comprehensive

	minDoc := build(t, minimal)
	compDoc := build(t, comprehensive)

	if len(compDoc.Blocks) <= len(minDoc.Blocks) {
		t.Errorf("comprehensive document (%d blocks) should be longer than minimal (%d blocks)",
			len(compDoc.Blocks), len(minDoc.Blocks))
	}

	if containsHeading(minDoc, "GENERAL PROVISIONS") {
		t.Error("minimal license should omit the general provisions article")
	}
	if !containsHeading(compDoc, "GENERAL PROVISIONS") {
		t.Error("comprehensive license should include the general provisions article")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	cfg := buildConfig(contracts.SoftwareLicense, contracts.AllRisks())

	a := assemble.ResolveOrDefault(cfg.Type)(cfg, testDate, rand.New(rand.NewSource(42)))
	b := assemble.ResolveOrDefault(cfg.Type)(cfg, testDate, rand.New(rand.NewSource(42)))

	if !reflect.DeepEqual(a.Blocks, b.Blocks) {
		t.Error("same seed and config should produce identical documents")
	}
}

func TestDocumentStructure(t *testing.T) {
	doc := build(t, buildConfig(contracts.SoftwareLicense, contracts.RiskFactors{}))

	if len(doc.Blocks) == 0 {
		t.Fatal("document has no blocks")
	}
	if doc.Blocks[0].Kind != layout.KindTitle {
		t.Errorf("first block kind = %v, want title", doc.Blocks[0].Kind)
	}
	if doc.Blocks[0].Text != "SOFTWARE LICENSE AGREEMENT" {
		t.Errorf("title = %s, want SOFTWARE LICENSE AGREEMENT", doc.Blocks[0].Text)
	}

	if !containsHeading(doc, "PARTIES") {
		t.Error("document missing the parties section")
	}
	if !containsHeading(doc, "IN WITNESS WHEREOF") {
		t.Error("document missing the execution section")
	}

	var sawSignature bool
	for _, b := range doc.Blocks {
		if b.Kind == layout.KindSignature {
			sawSignature = true
		}
	}
	if !sawSignature {
		t.Error("document missing a signature block")
	}
}

func TestConsultingTitle(t *testing.T) {
	doc := build(t, buildConfig(contracts.Consulting, contracts.RiskFactors{}))
	if doc.Blocks[0].Text != "CONSULTING AGREEMENT" {
		t.Errorf("consulting title = %s, want CONSULTING AGREEMENT", doc.Blocks[0].Text)
	}
}

func TestAmendmentDocument(t *testing.T) {
	cfg := contracts.AmendmentConfig{
		Base: contracts.Record{
			ID:     "3f2a9b1c",
			Name:   "Contract 3F2A9B1C",
			Type:   string(contracts.SoftwareLicense),
			Vendor: "TechVendor Solutions Inc.",
			Value:  500000,
			Date:   "2026-01-10",
		},
		Number: 2,
		Date:   testDate,
		Changes: contracts.AmendmentChanges{
			Pricing:       true,
			NewValue:      575000,
			TermExtension: 2,
			Liability:     true,
		},
	}

	doc := assemble.Amendment(cfg)

	if doc.Blocks[0].Text != "AMENDMENT NO. 2" {
		t.Errorf("amendment title = %s, want AMENDMENT NO. 2", doc.Blocks[0].Text)
	}
	if got := doc.RiskCount(); got != cfg.Changes.Count() {
		t.Errorf("RiskCount = %d, want one flagged article per change (%d)", got, cfg.Changes.Count())
	}

	var body strings.Builder
	for _, b := range doc.Blocks {
		body.WriteString(b.Text)
		body.WriteString("\n")
	}
	if !strings.Contains(body.String(), "$575,000") {
		t.Error("amendment body missing the revised contract value")
	}
	if !strings.Contains(body.String(), "15.0%") {
		t.Error("amendment body missing the price increase percentage")
	}
}

func containsHeading(doc *layout.Document, text string) bool {
	for _, b := range doc.Blocks {
		if b.Kind == layout.KindHeading && strings.Contains(b.Text, text) {
			return true
		}
	}
	return false
}
