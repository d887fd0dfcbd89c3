package assemble

import (
	"fmt"
	"strings"

	"github.com/draftforge/draftforge/internal/clauses"
	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/formatting"
	"github.com/draftforge/draftforge/pkg/layout"
)

// Amendment builds an amendment document against a base contract
// record. Change articles appear in fixed order: pricing, term,
// services, liability, termination, audit rights.
func Amendment(cfg contracts.AmendmentConfig) *layout.Document {
	base := cfg.Base
	doc := &layout.Document{}

	doc.Title(fmt.Sprintf("AMENDMENT NO. %d", cfg.Number))
	doc.Title("TO " + strings.ToUpper(base.Type))
	doc.Spacer(20)

	doc.Meta("Amendment Date:", formatting.FormatDateLong(cfg.Date))
	doc.Meta("Original Contract ID:", strings.ToUpper(base.ID))
	doc.Meta("Original Effective Date:", base.Date)
	doc.Spacer(20)

	doc.Heading("RECITALS")
	doc.Paragraph(fmt.Sprintf(
		"WHEREAS, %s (\"Vendor\") and %s (\"Client\") entered into a %s dated %s (the "+
			"\"Original Agreement\"); and",
		base.Vendor, clauses.ClientName, base.Type, base.Date))
	doc.Spacer(6)
	doc.Paragraph("WHEREAS, the parties desire to amend certain terms and conditions of the " +
		"Original Agreement as set forth herein;")
	doc.Spacer(6)
	doc.Paragraph("NOW, THEREFORE, in consideration of the mutual covenants and agreements " +
		"contained herein, the parties agree as follows:")
	doc.Spacer(20)

	doc.Heading("AMENDMENTS")
	num := 0
	writeChange := func(c clauses.Clause) {
		num++
		text := fmt.Sprintf("Article %d: %s. %s", num, c.Title, c.Body)
		if c.Risk() {
			doc.RiskParagraph(text, c.Note)
		} else {
			doc.Paragraph(text)
		}
		doc.Spacer(12)
	}

	ch := cfg.Changes
	if ch.Pricing {
		writeChange(clauses.PricingAmendment(base.Value, ch.NewValue))
	}
	if ch.TermExtension > 0 {
		writeChange(clauses.TermAmendment(ch.TermExtension))
	}
	if ch.ServicesDescription != "" {
		writeChange(clauses.ServicesAmendment(ch.ServicesDescription))
	}
	if ch.Liability {
		writeChange(clauses.LiabilityAmendment())
	}
	if ch.Termination {
		writeChange(clauses.TerminationAmendment())
	}
	if ch.AuditRights {
		writeChange(clauses.AuditRightsAmendment())
	}

	controls := clauses.AmendmentControls()
	doc.Heading(strings.ToUpper(controls.Title))
	doc.Paragraph(controls.Body)
	doc.Spacer(20)

	doc.Heading("SIGNATURES")
	doc.Spacer(12)
	dateLine := "Date: " + formatting.FormatDateLong(cfg.Date)
	doc.Signature(
		[]string{
			"VENDOR: " + base.Vendor,
			"",
			"_________________________________",
			"Authorized Signatory",
			dateLine,
		},
		[]string{
			"CLIENT: " + clauses.ClientName,
			"",
			"_________________________________",
			"Authorized Signatory",
			dateLine,
		},
	)

	return doc
}
