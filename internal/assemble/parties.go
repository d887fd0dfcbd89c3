package assemble

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/draftforge/draftforge/internal/clauses"
	"github.com/draftforge/draftforge/internal/contracts"
	"github.com/draftforge/draftforge/pkg/formatting"
	"github.com/draftforge/draftforge/pkg/layout"
)

// contractNumber synthesizes a header reference like "SLA-2026-412".
func contractNumber(t contracts.Type, date time.Time, rng *rand.Rand) string {
	return fmt.Sprintf("%s-%d-%d",
		strings.ToUpper(contracts.Abbrev(t)), date.Year(), 100+rng.Intn(900))
}

// vendorAddress synthesizes a plausible vendor office address.
func vendorAddress(rng *rand.Rand) string {
	return fmt.Sprintf("%d Commerce Street, Suite %d",
		100+rng.Intn(9900), 100+rng.Intn(900))
}

// clientAddress synthesizes the client's Manhattan office address.
func clientAddress(rng *rand.Rand) string {
	return fmt.Sprintf("%d Wall Street, New York, NY %d",
		100+rng.Intn(900), 10001+rng.Intn(99))
}

// header writes the document title and contract metadata lines.
func header(doc *layout.Document, title string, t contracts.Type, date time.Time, rng *rand.Rand) {
	doc.Title(title)
	doc.Spacer(12)
	doc.Meta("Contract Number:", contractNumber(t, date, rng))
	doc.Meta("Effective Date:", formatting.FormatDateLong(date))
	doc.Spacer(20)
}

// recitals writes the WHEREAS preamble shared by every agreement.
func recitals(doc *layout.Document, whereas ...string) {
	doc.Heading("RECITALS")
	for _, w := range whereas {
		doc.Paragraph("WHEREAS, " + w)
		doc.Spacer(6)
	}
	doc.Paragraph("NOW, THEREFORE, in consideration of the mutual covenants and agreements " +
		"contained herein, and for other good and valuable consideration, the receipt and " +
		"sufficiency of which are hereby acknowledged, the parties agree as follows:")
	doc.Spacer(12)
}

// signatures writes the closing signature table.
func signatures(doc *layout.Document, vendor string, date time.Time) {
	doc.Spacer(20)
	doc.Heading("IN WITNESS WHEREOF")
	doc.Paragraph("The parties have executed this Agreement as of the date first written above.")
	doc.Spacer(12)
	dateLine := "Date: " + formatting.FormatDateLong(date)
	doc.Signature(
		[]string{
			"VENDOR: " + vendor,
			"",
			"By: _________________________________",
			"Name: ______________________________",
			"Title: _______________________________",
			dateLine,
		},
		[]string{
			"CLIENT: " + clauses.ClientName,
			"",
			"By: _________________________________",
			"Name: ______________________________",
			"Title: _______________________________",
			dateLine,
		},
	)
}
