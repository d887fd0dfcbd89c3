package assemble

import (
	"math/rand"
	"strings"
	"time"

	"github.com/draftforge/draftforge/internal/clauses"
	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/layout"
)

// serviceDescriptions parameterize the shared template for agreement
// types without a dedicated one.
var serviceDescriptions = map[contracts.Type]string{
	contracts.HardwarePurchase:  "hardware equipment and related services",
	contracts.MasterService:     "various services as specified in Statements of Work",
	contracts.Distribution:      "product distribution and resale services",
	contracts.Maintenance:       "maintenance and support services",
	contracts.JointVenture:      "joint venture activities and shared resources",
	contracts.StrategicAlliance: "strategic partnership and collaboration",
}

// Standard builds the shared template used by agreement types without a
// dedicated one: hardware purchase, master service, distribution,
// maintenance, joint venture, and strategic alliance.
func Standard(cfg contracts.GenerateConfig, date time.Time, rng *rand.Rand) *layout.Document {
	ctx := clauseContext(cfg)
	doc := &layout.Document{}

	t := cfg.Type
	desc, ok := serviceDescriptions[t]
	if !ok {
		desc = "general business services"
	}

	header(doc, strings.ToUpper(string(t)), t, date, rng)

	doc.Heading("PARTIES")
	doc.Paragraph("This Agreement is entered into between " + cfg.Vendor +
		" (\"Vendor\"), a Delaware corporation with principal offices at " + vendorAddress(rng) +
		", and " + clauses.ClientName + " (\"Client\"), a New York corporation with principal " +
		"offices at " + clientAddress(rng) + ".")
	doc.Spacer(12)

	recitals(doc,
		"Vendor is engaged in the business of providing "+desc+"; and",
		"Client desires to engage Vendor to provide "+desc+" in accordance with the terms and "+
			"conditions set forth herein;",
	)

	scope := article{"Scope of Services", []clauses.Clause{
		clauses.GenericScope(ctx, desc),
		clauses.ScopeChanges(ctx),
	}}

	fees := article{"Fees and Payment Terms", []clauses.Clause{
		clauses.ContractValue(ctx),
		clauses.AdditionalFees(ctx),
		clauses.PriceAdjustments(ctx),
		clauses.LatePayment(ctx),
	}}

	term := article{"Term and Termination", []clauses.Clause{
		clauses.InitialTerm(ctx, true),
		clauses.TerminationForConvenience(ctx),
		clauses.EffectOfTermination(ctx),
	}}

	ip := article{"Intellectual Property", []clauses.Clause{
		clauses.VendorOwnership(ctx),
		clauses.VendorMaterials(ctx),
	}}

	warranty := article{"Warranties and Disclaimers", []clauses.Clause{
		clauses.VendorWarranty(ctx),
		clauses.WarrantyDisclaimer(ctx),
	}}

	liability := article{"Limitation of Liability", []clauses.Clause{
		clauses.LiabilityCap(ctx, 150000, 6),
		clauses.ExclusionOfDamages(ctx),
	}}

	articles := []article{scope, fees, term, ip, warranty, liability}

	if atLeast(cfg.Complexity, contracts.Standard) {
		articles = append(articles, article{"Confidential Information", []clauses.Clause{
			clauses.Confidentiality(ctx),
			clauses.PermittedDisclosures(ctx),
		}})
	}

	general := article{"General Provisions", []clauses.Clause{
		clauses.EntireAgreement(ctx),
		clauses.UnilateralAmendments(ctx),
		clauses.GoverningLawVenue(ctx),
		clauses.Assignment(ctx),
		clauses.ForceMajeure(ctx),
	}}
	if atLeast(cfg.Complexity, contracts.Comprehensive) {
		general.clauses = append(general.clauses,
			clauses.Notices(ctx),
			clauses.Severability(ctx),
			clauses.Counterparts(ctx),
		)
	}
	articles = append(articles, general)

	writeArticles(doc, articles)
	signatures(doc, cfg.Vendor, date)
	return doc
}
