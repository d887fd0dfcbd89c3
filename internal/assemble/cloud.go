package assemble

import (
	"math/rand"
	"time"

	"github.com/draftforge/draftforge/internal/clauses"
	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/layout"
)

// Cloud builds a Cloud Services Agreement.
func Cloud(cfg contracts.GenerateConfig, date time.Time, rng *rand.Rand) *layout.Document {
	ctx := clauseContext(cfg)
	doc := &layout.Document{}

	header(doc, "CLOUD SERVICES AGREEMENT", contracts.CloudServices, date, rng)

	doc.Heading("PARTIES")
	doc.Paragraph("This Cloud Services Agreement is entered into between " + cfg.Vendor +
		" (\"Provider\"), a Delaware corporation, and " + clauses.ClientName +
		" (\"Customer\"), a New York corporation.")
	doc.Spacer(12)

	services := article{"Cloud Services", []clauses.Clause{
		clauses.ServiceDescription(ctx),
		clauses.ServiceAvailability(ctx),
		clauses.ServiceModifications(ctx),
	}}

	fees := article{"Fees and Payment", []clauses.Clause{
		clauses.UsagePricing(ctx),
		clauses.RateChanges(ctx),
		clauses.CloudBilling(ctx),
	}}

	data := article{"Data Security and Privacy", []clauses.Clause{
		clauses.CustomerData(ctx),
		clauses.SecuritySafeguards(ctx),
		clauses.DataLocation(ctx),
	}}

	term := article{"Term and Termination", []clauses.Clause{
		clauses.InitialTerm(ctx, false),
		clauses.TerminationDataRetrieval(ctx),
	}}

	articles := []article{
		services,
		fees,
		data,
		term,
		{"Warranties and Disclaimers", []clauses.Clause{
			clauses.CloudWarranty(ctx),
		}},
		{"Limitation of Liability", []clauses.Clause{
			clauses.LiabilityCap(ctx, 200000, 3),
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
