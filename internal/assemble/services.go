package assemble

import (
	"math/rand"
	"time"

	"github.com/draftforge/draftforge/internal/clauses"
	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/layout"
)

// Services builds a Professional Services Agreement. The Consulting
// Agreement shares this template with its own title and header code.
func Services(cfg contracts.GenerateConfig, date time.Time, rng *rand.Rand) *layout.Document {
	ctx := clauseContext(cfg)
	doc := &layout.Document{}

	t := cfg.Type
	title := "PROFESSIONAL SERVICES AGREEMENT"
	if t == contracts.Consulting {
		title = "CONSULTING AGREEMENT"
	}
	header(doc, title, t, date, rng)

	doc.Heading("PARTIES")
	doc.Paragraph("This " + string(t) + " (\"Agreement\") is entered into between " + cfg.Vendor +
		" (\"Consultant\"), a limited liability company organized under the laws of Delaware, and " +
		clauses.ClientName + " (\"Client\"), a New York corporation.")
	doc.Spacer(12)

	recitals(doc,
		"Consultant possesses specialized expertise in enterprise software implementation, "+
			"business process optimization, and digital transformation; and",
		"Client desires to engage Consultant to provide certain professional services as more "+
			"particularly described herein;",
	)

	scope := article{"Scope of Services", []clauses.Clause{
		clauses.ScopeOfServices(ctx),
		clauses.StandardOfPerformance(ctx),
		clauses.PersonnelSubstitution(ctx),
	}}

	fees := article{"Fees and Payment Terms", []clauses.Clause{
		clauses.ConsultingRates(ctx),
		clauses.ExpenseReimbursement(ctx),
		clauses.InvoicingTerms(ctx),
		clauses.RateIncreases(ctx),
	}}

	ip := article{"Intellectual Property Rights", []clauses.Clause{
		clauses.WorkProductOwnership(ctx),
		clauses.PreExistingMaterials(ctx),
		clauses.UseRestrictions(ctx),
	}}

	term := article{"Term and Termination", []clauses.Clause{
		clauses.InitialTerm(ctx, false),
		clauses.TerminationForConvenience(ctx),
	}}
	if atLeast(cfg.Complexity, contracts.Standard) {
		term.clauses = append(term.clauses, clauses.EffectOfTermination(ctx))
	}

	articles := []article{
		scope,
		fees,
		ip,
		term,
		{"Warranties and Disclaimers", []clauses.Clause{
			clauses.ServicesWarranty(ctx),
		}},
		{"Limitation of Liability and Indemnification", []clauses.Clause{
			clauses.LiabilityCap(ctx, 100000, 6),
			clauses.ClientIndemnification(ctx),
		}},
	}

	if atLeast(cfg.Complexity, contracts.Standard) {
		articles = append(articles, article{"Confidential Information", []clauses.Clause{
			clauses.Confidentiality(ctx),
			clauses.ConfidentialityExceptions(ctx),
		}})
	}

	general := article{"General Provisions", []clauses.Clause{
		clauses.IndependentContractor(ctx),
		clauses.GoverningLawArbitration(ctx),
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

	writeArticles(doc, articles)
	signatures(doc, cfg.Vendor, date)
	return doc
}
