// Package clauses implements the contract clause library. Each clause
// function takes the numeric contract context and returns formatted
// prose plus an optional audit note; a non-empty note marks the clause
// as a non-standard term and counts toward the document's issues total.
// Clause production is pure: no I/O, no randomness.
package clauses

import (
	"github.com/draftforge/draftforge/pkg/formatting"
)

// DefaultBaseValue substitutes for a historical contract value that is
// unknown or zero, e.g. for contracts recovered from a disk scan.
// Substitution is documented policy, not an error path.
const DefaultBaseValue = 500000

// ClientName is the fixed counterparty on every generated document.
const ClientName = "Global Finance Corp."

// Clause is one parameterized block of contract prose covering a
// single legal topic.
type Clause struct {
	Title string
	Body  string
	Note  string
}

// Risk reports whether the clause represents a non-standard term.
func (c Clause) Risk() bool {
	return c.Note != ""
}

// Context carries the numeric inputs and risk-factor toggles that
// parameterize clause production.
type Context struct {
	Vendor    string
	Value     int64
	TermYears int

	UncappedFees    bool
	LowLiability    bool
	DataSovereignty bool
	AsymmetricTerms bool
	IPIssues        bool
	WarrantyGaps    bool
}

// PriceIncreasePct computes the percentage increase from old to new.
// A zero or negative old value falls back to DefaultBaseValue.
func PriceIncreasePct(old, new int64) float64 {
	if old <= 0 {
		old = DefaultBaseValue
	}
	return float64(new-old) / float64(old) * 100
}

// CapSharePct expresses a liability cap as a percentage of contract value.
func CapSharePct(cap, value int64) float64 {
	return float64(cap) / float64(value) * 100
}

func money(amount int64) string {
	return formatting.FormatMoney(amount)
}

func pct(v float64) string {
	return formatting.FormatPercent(v)
}
