package clauses_test

import (
	"strings"
	"testing"

	"github.com/draftforge/draftforge/internal/clauses"
)

func riskyContext() clauses.Context {
	return clauses.Context{
		Vendor:          "TechVendor Solutions Inc.",
		Value:           850000,
		TermYears:       3,
		UncappedFees:    true,
		LowLiability:    true,
		DataSovereignty: true,
		AsymmetricTerms: true,
		IPIssues:        true,
		WarrantyGaps:    true,
	}
}

func cleanContext() clauses.Context {
	return clauses.Context{
		Vendor:    "TechVendor Solutions Inc.",
		Value:     850000,
		TermYears: 3,
	}
}

func TestPriceIncreasePct(t *testing.T) {
	tests := []struct {
		name string
		old  int64
		new  int64
		want float64
	}{
		{"normal increase", 500000, 575000, 15},
		{"zero old falls back to default base", 0, 575000, 15},
		{"negative old falls back to default base", -1, 750000, 50},
		{"decrease", 1000000, 900000, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clauses.PriceIncreasePct(tt.old, tt.new); got != tt.want {
				t.Errorf("PriceIncreasePct(%d, %d) = %v, want %v", tt.old, tt.new, got, tt.want)
			}
		})
	}
}

func TestCapSharePct(t *testing.T) {
	if got := clauses.CapSharePct(50000, 850000); got < 5.88 || got > 5.89 {
		t.Errorf("CapSharePct(50000, 850000) = %v, want ~5.88", got)
	}
}

func TestLiabilityCapRiskGating(t *testing.T) {
	clean := clauses.LiabilityCap(cleanContext(), 50000, 3)
	if clean.Risk() {
		t.Error("liability cap without the low-liability factor should not carry a note")
	}
	if !strings.Contains(clean.Body, "$50,000") {
		t.Errorf("body missing cap amount: %s", clean.Body)
	}

	risky := clauses.LiabilityCap(riskyContext(), 50000, 3)
	if !risky.Risk() {
		t.Fatal("liability cap with the low-liability factor should carry a note")
	}
	if !strings.Contains(risky.Note, "5.9%") {
		t.Errorf("note missing cap share percentage: %s", risky.Note)
	}
	if !strings.Contains(risky.Note, "$850,000") {
		t.Errorf("note missing contract value: %s", risky.Note)
	}
}

func TestVariableUsageFeesCapAlternative(t *testing.T) {
	clean := clauses.VariableUsageFees(cleanContext())
	if clean.Risk() {
		t.Error("capped usage fees should not carry a note")
	}
	if !strings.Contains(clean.Body, "shall not exceed twenty percent") {
		t.Errorf("capped variant missing the monthly cap sentence: %s", clean.Body)
	}

	risky := clauses.VariableUsageFees(riskyContext())
	if !risky.Risk() {
		t.Error("uncapped usage fees should carry a note")
	}
	if strings.Contains(risky.Body, "shall not exceed") {
		t.Errorf("uncapped variant must omit the cap sentence: %s", risky.Body)
	}
}

func TestDataLocationVariants(t *testing.T) {
	clean := clauses.DataLocation(cleanContext())
	if clean.Risk() {
		t.Error("US-resident data location should not carry a note")
	}

	risky := clauses.DataLocation(riskyContext())
	if !risky.Risk() {
		t.Error("unrestricted data location should carry a note")
	}
}

func TestPricingAmendment(t *testing.T) {
	c := clauses.PricingAmendment(500000, 575000)
	if !strings.Contains(c.Body, "$500,000") || !strings.Contains(c.Body, "$575,000") {
		t.Errorf("body missing amounts: %s", c.Body)
	}
	if !strings.Contains(c.Body, "15.0%") {
		t.Errorf("body missing increase percentage: %s", c.Body)
	}
	if !c.Risk() {
		t.Error("pricing amendment should always carry a note")
	}
}

func TestPricingAmendmentUnknownBase(t *testing.T) {
	c := clauses.PricingAmendment(0, 750000)
	if !strings.Contains(c.Body, "$500,000") {
		t.Errorf("zero base should fall back to the default base value: %s", c.Body)
	}
	if !strings.Contains(c.Body, "50.0%") {
		t.Errorf("increase should be computed against the default base: %s", c.Body)
	}
}

func TestClientIndemnificationAlwaysFlagged(t *testing.T) {
	if !clauses.ClientIndemnification(cleanContext()).Risk() {
		t.Error("client indemnification should carry a note regardless of risk factors")
	}
}

func TestTerminationForConvenienceAsymmetry(t *testing.T) {
	clean := clauses.TerminationForConvenience(cleanContext())
	if clean.Risk() {
		t.Error("mutual termination terms should not carry a note")
	}
	if !strings.Contains(clean.Body, "ninety (90)") {
		t.Errorf("mutual variant should use a 90-day window: %s", clean.Body)
	}

	risky := clauses.TerminationForConvenience(riskyContext())
	if !risky.Risk() {
		t.Error("asymmetric termination terms should carry a note")
	}
	if !strings.Contains(risky.Body, "one hundred twenty (120)") {
		t.Errorf("asymmetric variant should use a 120-day window: %s", risky.Body)
	}
	// 40% of 850000
	if !strings.Contains(risky.Note, "$340,000") {
		t.Errorf("note should state the early termination penalty: %s", risky.Note)
	}
}

func TestVendorWarrantyGating(t *testing.T) {
	if clauses.VendorWarranty(cleanContext()).Risk() {
		t.Error("standard vendor warranty should not carry a note")
	}
	if !clauses.VendorWarranty(riskyContext()).Risk() {
		t.Error("vendor warranty with warranty gaps should carry a note")
	}
}
