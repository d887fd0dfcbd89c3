package assemble

import (
	"math/rand"
	"time"

	"github.com/draftforge/draftforge/internal/clauses"
	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/layout"
)

// License builds a Software License Agreement.
func License(cfg contracts.GenerateConfig, date time.Time, rng *rand.Rand) *layout.Document {
	ctx := clauseContext(cfg)
	doc := &layout.Document{}

	header(doc, "SOFTWARE LICENSE AGREEMENT", contracts.SoftwareLicense, date, rng)

	doc.Heading("PARTIES")
	doc.Paragraph("This Software License Agreement (\"Agreement\") is entered into between " +
		cfg.Vendor + " (\"Licensor\"), a Delaware corporation with principal offices at " +
		vendorAddress(rng) + ", and " + clauses.ClientName + " (\"Licensee\"), a New York " +
		"corporation with principal offices at " + clientAddress(rng) + ".")
	doc.Spacer(12)

	recitals(doc,
		"Licensor has developed and owns certain proprietary software products and related documentation; and",
		"Licensee desires to obtain a license to use such software for its internal business "+
			"operations, and Licensor desires to grant such license, all in accordance with the terms "+
			"and conditions set forth herein;",
	)

	grant := article{"License Grant and Restrictions", []clauses.Clause{
		clauses.LicenseGrant(ctx, 100+rng.Intn(401), 5+rng.Intn(16)),
		clauses.LicenseRestrictions(ctx),
	}}
	if atLeast(cfg.Complexity, contracts.Standard) {
		grant.clauses = append(grant.clauses, clauses.ReservationOfRights(ctx))
	}

	fees := article{"Fees and Payment Terms", []clauses.Clause{
		clauses.BaseLicenseFee(ctx),
		clauses.VariableUsageFees(ctx),
		clauses.PriceEscalation(ctx),
	}}
	if atLeast(cfg.Complexity, contracts.Detailed) {
		fees.clauses = append(fees.clauses, clauses.LatePayment(ctx))
	}

	articles := []article{
		grant,
		fees,
		{"Term and Termination", []clauses.Clause{
			clauses.InitialTerm(ctx, true),
		}},
		{"Warranties and Disclaimers", []clauses.Clause{
			clauses.SoftwareWarranty(ctx),
		}},
		{"Limitation of Liability", []clauses.Clause{
			clauses.LiabilityCap(ctx, 50000, 3),
		}},
	}

	if atLeast(cfg.Complexity, contracts.Detailed) {
		general := article{"General Provisions", []clauses.Clause{
			clauses.Assignment(ctx),
			clauses.ForceMajeure(ctx),
			clauses.EntireAgreement(ctx),
		}}
		if atLeast(cfg.Complexity, contracts.Comprehensive) {
			general.clauses = append(general.clauses,
				clauses.Notices(ctx),
				clauses.Severability(ctx),
				clauses.Counterparts(ctx),
			)
		}
		articles = append(articles, general)
	}

	writeArticles(doc, articles)
	signatures(doc, cfg.Vendor, date)
	return doc
}
