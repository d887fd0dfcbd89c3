package clauses

import "fmt"

// InitialTerm emits the term and auto-renewal provision. Flagged when
// auto-renewal is combined with the extended 180-day notice window.
func InitialTerm(ctx Context, autoRenewal bool) Clause {
	c := Clause{
		Title: "Term",
		Body: fmt.Sprintf(
			"This Agreement shall commence on the Effective Date and shall continue for an initial "+
				"term of %d years (the \"Initial Term\"), unless earlier terminated in accordance with "+
				"this Article.",
			ctx.TermYears,
		),
	}

	if autoRenewal {
		c.Body += " Upon expiration of the Initial Term, this Agreement shall automatically renew for " +
			"successive renewal periods unless either Party provides written notice of non-renewal at " +
			"least one hundred eighty (180) days prior to the end of the then-current term."
		c.Note = "AUDIT NOTE: Auto-renewal with extended notice period (typical is 60-90 days). The " +
			"180-day requirement may be difficult to track and could result in unintended renewals."
	}

	return c
}

// TerminationForConvenience emits the exit terms. When the asymmetric-
// terms risk factor is enabled the vendor exits freely while the client
// pays a 40% penalty, and the clause is flagged with the exact exposure.
func TerminationForConvenience(ctx Context) Clause {
	if !ctx.AsymmetricTerms {
		return Clause{
			Title: "Termination for Convenience",
			Body: "Either party may terminate this Agreement for convenience upon ninety (90) days " +
				"prior written notice without penalty.",
		}
	}

	return Clause{
		Title: "Termination for Convenience",
		Body: "Client may terminate this Agreement for convenience upon one hundred twenty (120) days " +
			"prior written notice and payment of an early termination fee equal to forty percent (40%) " +
			"of the remaining contract value. Vendor may terminate for convenience upon sixty (60) days " +
			"notice without penalty.",
		Note: fmt.Sprintf(
			"AUDIT NOTE: Asymmetric termination rights. Client faces 40%% penalty (potentially %s) "+
				"while Vendor can exit without penalty. This creates significant vendor lock-in.",
			money(ctx.Value*40/100),
		),
	}
}

// EffectOfTermination emits the standard wind-down obligations.
func EffectOfTermination(ctx Context) Clause {
	return Clause{
		Title: "Effect of Termination",
		Body: "Upon termination: (a) Client shall pay all fees through the termination date plus any " +
			"early termination fees; (b) Client shall return all Vendor materials; (c) all licenses " +
			"granted to Client shall immediately terminate; and (d) Vendor shall have no obligation to " +
			"provide transition assistance. Any data or materials held by Vendor will be deleted thirty " +
			"(30) days after termination unless Client pays for extended retention at Vendor's standard " +
			"rates.",
		Note: "AUDIT NOTE: No transition assistance provided. Short data retention period may not allow " +
			"sufficient time for migration. Additional fees for data retention.",
	}
}

// TermAmendment records an amendment extending the term by years.
func TermAmendment(years int) Clause {
	return Clause{
		Title: "Term Extension",
		Body: fmt.Sprintf(
			"The term of the Original Agreement is hereby extended for an additional %d year(s). All "+
				"other terms and conditions shall remain in full force and effect during the extended term.",
			years,
		),
		Note: "AUDIT NOTE: Extended commitment without renegotiation of other terms. Consider " +
			"reviewing liability caps and pricing for extended period.",
	}
}

// TerminationAmendment records an amendment tightening exit rights.
func TerminationAmendment() Clause {
	return Clause{
		Title: "Termination Rights",
		Body: "Client's termination for convenience provision is hereby amended to require 180 days " +
			"prior written notice and payment of an early termination fee equal to 40% of the remaining " +
			"contract value.",
		Note: "AUDIT NOTE: Termination penalty has been increased. This restricts Client's flexibility " +
			"to exit the agreement.",
	}
}
