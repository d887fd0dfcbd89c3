package clauses

// SoftwareWarranty emits the ninety-day software warranty with the
// repair-only remedy.
func SoftwareWarranty(ctx Context) Clause {
	return Clause{
		Title: "Limited Warranty",
		Body: "Licensor warrants that for a period of ninety (90) days from the Effective Date, the " +
			"Software will perform substantially in accordance with the Documentation. Licensor's sole " +
			"obligation and Licensee's exclusive remedy for any breach of this warranty shall be for " +
			"Licensor to use commercially reasonable efforts to correct any reproducible error.",
	}
}

// ServicesWarranty emits the professional-services warranty and its
// all-caps disclaimer.
func ServicesWarranty(ctx Context) Clause {
	return Clause{
		Title: "Limited Warranty",
		Body: "Consultant warrants that Services will be performed in a professional manner consistent " +
			"with industry standards. EXCEPT FOR THE FOREGOING, CONSULTANT MAKES NO OTHER WARRANTIES, " +
			"EXPRESS OR IMPLIED, INCLUDING WARRANTIES OF MERCHANTABILITY OR FITNESS FOR A PARTICULAR " +
			"PURPOSE. Consultant does not warrant that Services will meet Client's requirements or " +
			"achieve any particular results.",
	}
}

// CloudWarranty emits the as-is cloud services warranty.
func CloudWarranty(ctx Context) Clause {
	return Clause{
		Title: "Limited Warranty",
		Body: "PROVIDER WARRANTS THAT SERVICES WILL PERFORM SUBSTANTIALLY AS DESCRIBED IN THE " +
			"DOCUMENTATION. EXCEPT AS EXPRESSLY PROVIDED, SERVICES ARE PROVIDED \"AS IS\" WITHOUT " +
			"WARRANTIES OF ANY KIND. PROVIDER DISCLAIMS ALL WARRANTIES, EXPRESS OR IMPLIED, INCLUDING " +
			"MERCHANTABILITY, FITNESS FOR PARTICULAR PURPOSE, AND NON-INFRINGEMENT.",
	}
}

// VendorWarranty emits the standard-template thirty-day warranty.
// Flagged when the warranty-gaps risk factor is enabled.
func VendorWarranty(ctx Context) Clause {
	c := Clause{
		Title: "Limited Warranty",
		Body: "Vendor warrants that services will be performed in a professional manner. This warranty " +
			"is valid for thirty (30) days from delivery. Vendor's sole obligation for breach of " +
			"warranty is to re-perform defective services or refund fees paid for such services, at " +
			"Vendor's option.",
	}

	if ctx.WarrantyGaps {
		c.Note = "AUDIT NOTE: Very limited 30-day warranty period. Vendor controls remedy " +
			"(re-performance vs. refund), potentially forcing Client to accept re-performance even if " +
			"relationship has deteriorated."
	}

	return c
}

// WarrantyDisclaimer emits the all-caps general disclaimer.
func WarrantyDisclaimer(ctx Context) Clause {
	return Clause{
		Title: "Disclaimer",
		Body: "EXCEPT AS EXPRESSLY PROVIDED ABOVE, VENDOR MAKES NO WARRANTIES, EXPRESS OR IMPLIED, " +
			"INCLUDING WARRANTIES OF MERCHANTABILITY, FITNESS FOR PARTICULAR PURPOSE, OR " +
			"NON-INFRINGEMENT. VENDOR DOES NOT WARRANT THAT SERVICES WILL MEET CLIENT'S REQUIREMENTS OR " +
			"ACHIEVE ANY PARTICULAR RESULTS.",
	}
}
