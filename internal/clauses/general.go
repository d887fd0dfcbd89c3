package clauses

// Confidentiality emits the mutual confidentiality obligations with a
// five-year survival period.
func Confidentiality(ctx Context) Clause {
	return Clause{
		Title: "Confidentiality Obligations",
		Body: "Each party agrees to maintain the confidentiality of the other party's Confidential " +
			"Information and to use such information solely for purposes of this Agreement. The " +
			"receiving party shall protect Confidential Information using the same degree of care it " +
			"uses for its own confidential information, but in no event less than reasonable care. " +
			"These obligations shall survive termination for a period of five (5) years.",
	}
}

// ConfidentialityExceptions emits the standard carve-outs.
func ConfidentialityExceptions(ctx Context) Clause {
	return Clause{
		Title: "Exceptions",
		Body: "Confidential Information does not include information that: (a) is or becomes publicly " +
			"available through no breach of this Agreement; (b) was rightfully known prior to " +
			"disclosure; (c) is rightfully received from a third party without breach; or (d) is " +
			"independently developed without use of Confidential Information.",
	}
}

// PermittedDisclosures emits the vendor's broad disclosure rights, flagged.
func PermittedDisclosures(ctx Context) Clause {
	return Clause{
		Title: "Permitted Disclosures",
		Body: "Vendor may disclose Client's Confidential Information to its subcontractors, affiliates, " +
			"and professional advisors as necessary to perform services. Vendor may also use Client's " +
			"name and general project description in marketing materials and client lists unless Client " +
			"objects in writing.",
		Note: "AUDIT NOTE: Broad disclosure rights to subcontractors without confidentiality flow-down " +
			"requirements. Marketing use of Client's name may not be acceptable for confidential projects.",
	}
}

// IndependentContractor emits the contractor relationship provision.
func IndependentContractor(ctx Context) Clause {
	return Clause{
		Title: "Independent Contractor",
		Body: "Consultant is an independent contractor and not an employee of Client. Consultant shall " +
			"be solely responsible for all taxes, insurance, and benefits for its personnel.",
	}
}

// GoverningLawArbitration emits Delaware law with binding arbitration.
func GoverningLawArbitration(ctx Context) Clause {
	return Clause{
		Title: "Governing Law",
		Body: "This Agreement shall be governed by the laws of the State of Delaware, without regard to " +
			"conflicts of law principles. Any disputes shall be resolved through binding arbitration in " +
			"Wilmington, Delaware under the rules of the American Arbitration Association.",
	}
}

// GoverningLawVenue emits Delaware law with exclusive court venue.
func GoverningLawVenue(ctx Context) Clause {
	return Clause{
		Title: "Governing Law and Venue",
		Body: "This Agreement shall be governed by the laws of the State of Delaware without regard to " +
			"conflict of laws principles. Any disputes shall be resolved exclusively in the state or " +
			"federal courts located in Wilmington, Delaware. Client consents to personal jurisdiction " +
			"in such courts and waives any objection to venue.",
	}
}

// EntireAgreement emits the integration clause.
func EntireAgreement(ctx Context) Clause {
	return Clause{
		Title: "Entire Agreement",
		Body: "This Agreement, including all Exhibits and Statements of Work, constitutes the entire " +
			"agreement between the parties and supersedes all prior agreements, understandings, and " +
			"communications relating to the subject matter hereof.",
	}
}

// UnilateralAmendments emits the vendor's exhibit amendment right, flagged.
func UnilateralAmendments(ctx Context) Clause {
	return Clause{
		Title: "Amendments",
		Body: "This Agreement may be amended only by written instrument signed by both parties. However, " +
			"Vendor may amend Exhibits and Statements of Work upon thirty (30) days written notice, and " +
			"Client's continued use of services constitutes acceptance of such amendments.",
		Note: "AUDIT NOTE: Vendor can unilaterally amend key terms through Exhibit modifications. " +
			"Implied acceptance through continued use bypasses formal approval process.",
	}
}

// Assignment emits the asymmetric assignment rights, flagged when the
// asymmetric-terms risk factor is enabled.
func Assignment(ctx Context) Clause {
	c := Clause{
		Title: "Assignment",
		Body: "Client may not assign this Agreement without Vendor's prior written consent. Vendor may " +
			"freely assign this Agreement to any affiliate or in connection with a merger, acquisition, " +
			"or sale of assets.",
	}

	if ctx.AsymmetricTerms {
		c.Note = "AUDIT NOTE: Asymmetric assignment rights. Vendor can assign to potentially unknown " +
			"entities while Client cannot assign even to its own subsidiaries."
	}

	return c
}

// ForceMajeure emits the one-sided force majeure carve-out, flagged when
// the asymmetric-terms risk factor is enabled.
func ForceMajeure(ctx Context) Clause {
	c := Clause{
		Title: "Force Majeure",
		Body: "Neither party shall be liable for delays or failures in performance resulting from causes " +
			"beyond its reasonable control. However, Client's payment obligations are not excused by " +
			"force majeure events.",
	}

	if ctx.AsymmetricTerms {
		c.Note = "AUDIT NOTE: Asymmetric force majeure clause. Vendor's performance obligations are " +
			"excused but Client must continue paying even during extended service outages."
	}

	return c
}

// Notices emits the formal notice delivery provision.
func Notices(ctx Context) Clause {
	return Clause{
		Title: "Notices",
		Body: "All notices under this Agreement shall be in writing and delivered by certified mail, " +
			"nationally recognized overnight courier, or electronic mail with confirmation of receipt, " +
			"to the addresses set forth in the preamble. Notices are effective upon receipt.",
	}
}

// Severability emits the severability provision.
func Severability(ctx Context) Clause {
	return Clause{
		Title: "Severability",
		Body: "If any provision of this Agreement is held invalid or unenforceable, the remaining " +
			"provisions shall continue in full force and effect, and the invalid provision shall be " +
			"reformed to the minimum extent necessary to make it enforceable.",
	}
}

// Counterparts emits the execution-in-counterparts provision.
func Counterparts(ctx Context) Clause {
	return Clause{
		Title: "Counterparts",
		Body: "This Agreement may be executed in counterparts, each of which shall be deemed an " +
			"original and all of which together shall constitute one instrument. Electronic signatures " +
			"shall have the same effect as original signatures.",
	}
}

// AuditRightsAmendment records an amendment granting limited audit rights.
func AuditRightsAmendment() Clause {
	return Clause{
		Title: "Audit Rights",
		Body: "Client shall have the right to audit Vendor's records related to this Agreement upon 30 " +
			"days prior written notice, not more than once per calendar year. Client shall bear all " +
			"costs of such audit unless the audit reveals an overcharge of more than 5%.",
		Note: "AUDIT NOTE: Limited audit frequency and Client bears audit costs unless significant " +
			"discrepancy found.",
	}
}

// AmendmentControls emits the amendment's precedence provision.
func AmendmentControls() Clause {
	return Clause{
		Title: "General Provisions",
		Body: "Except as expressly amended herein, all terms and conditions of the Original Agreement " +
			"shall remain in full force and effect. In the event of any conflict between this Amendment " +
			"and the Original Agreement, the terms of this Amendment shall control.",
	}
}
