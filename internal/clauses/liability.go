package clauses

import "fmt"

// LiabilityCap emits an aggregate liability cap of capAmount against a
// trailing fee window of months. When the low-liability risk factor is
// enabled the note states the cap as an exact percentage of annual value.
func LiabilityCap(ctx Context, capAmount int64, months int) Clause {
	c := Clause{
		Title: "Limitation of Liability",
		Body: fmt.Sprintf(
			"IN NO EVENT SHALL VENDOR'S TOTAL AGGREGATE LIABILITY ARISING OUT OF OR RELATED TO THIS "+
				"AGREEMENT EXCEED THE LESSER OF (I) %s OR (II) THE AGGREGATE FEES PAID IN THE %d MONTHS "+
				"IMMEDIATELY PRECEDING THE EVENT GIVING RISE TO THE CLAIM.",
			money(capAmount), months,
		),
	}

	if ctx.LowLiability {
		c.Note = fmt.Sprintf(
			"AUDIT NOTE: Liability cap is significantly lower than annual contract value (%s). "+
				"The %s cap represents only %s of annual fees.",
			money(ctx.Value), money(capAmount), pct(CapSharePct(capAmount, ctx.Value)),
		)
	}

	return c
}

// ExclusionOfDamages emits the mutual consequential damages waiver.
func ExclusionOfDamages(ctx Context) Clause {
	return Clause{
		Title: "Exclusion of Damages",
		Body: "IN NO EVENT SHALL EITHER PARTY BE LIABLE FOR INDIRECT, INCIDENTAL, SPECIAL, " +
			"CONSEQUENTIAL, OR PUNITIVE DAMAGES, INCLUDING LOST PROFITS, LOST DATA, OR BUSINESS " +
			"INTERRUPTION, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGES.",
	}
}

// ClientIndemnification emits the one-sided indemnity with a seven-year
// survival period, flagged.
func ClientIndemnification(ctx Context) Clause {
	return Clause{
		Title: "Client Indemnification",
		Body: "Client shall indemnify, defend, and hold harmless Consultant from any claims arising " +
			"from: (a) Client's use of Work Product; (b) Client's breach of this Agreement; (c) any " +
			"claim that Client's data or materials infringe third party rights; or (d) Client's " +
			"negligence or willful misconduct. This indemnification obligation shall survive " +
			"termination for seven (7) years.",
		Note: "AUDIT NOTE: Broad indemnification obligation with extended seven-year survival period. " +
			"Client assumes liability for Consultant's work product usage.",
	}
}

// LiabilityAmendment records an amendment reducing the liability cap.
func LiabilityAmendment() Clause {
	return Clause{
		Title: "Liability Modification",
		Body: "The limitation of liability provision in the Original Agreement is hereby amended to " +
			"provide that Vendor's total liability shall not exceed the lesser of (i) $100,000 or " +
			"(ii) the fees paid in the six months preceding the claim.",
		Note: "AUDIT NOTE: Liability cap has been reduced from original terms. This may not adequately " +
			"cover potential damages.",
	}
}
