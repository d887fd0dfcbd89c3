package clauses

import "fmt"

// LicenseGrant emits the software license grant with user count caps.
// Flagged when the ip-issues risk factor is enabled.
func LicenseGrant(ctx Context, namedUsers, concurrentUsers int) Clause {
	c := Clause{
		Title: "Grant of License",
		Body: fmt.Sprintf(
			"Subject to the terms and conditions of this Agreement, Licensor hereby grants to Licensee "+
				"a non-exclusive, non-transferable, non-sublicensable license to use the Software solely "+
				"for Licensee's internal business operations during the Term. The license granted "+
				"hereunder is limited to use by up to %d named users and shall not exceed %d concurrent "+
				"users at any given time.",
			namedUsers, concurrentUsers,
		),
	}

	if ctx.IPIssues {
		c.Note = "AUDIT NOTE: Non-transferable license restricts Licensee's flexibility in corporate " +
			"restructuring scenarios."
	}

	return c
}

// LicenseRestrictions emits the standard use restrictions on licensed software.
func LicenseRestrictions(ctx Context) Clause {
	return Clause{
		Title: "License Restrictions",
		Body: "Licensee shall not, and shall not permit any third party to: (a) copy, modify, or create " +
			"derivative works of the Software; (b) reverse engineer, disassemble, or decompile the " +
			"Software or attempt to derive the source code; (c) rent, lease, lend, sell, sublicense, " +
			"assign, distribute, publish, transfer, or otherwise make available the Software; (d) remove, " +
			"alter, or obscure any proprietary notices on the Software; (e) use the Software for " +
			"timesharing or service bureau purposes or otherwise for the benefit of any third party; or " +
			"(f) use the Software in any manner that violates any applicable law, regulation, or rule.",
	}
}

// ReservationOfRights emits the licensor rights reservation.
func ReservationOfRights(ctx Context) Clause {
	return Clause{
		Title: "Reservation of Rights",
		Body: "Licensor reserves all rights not expressly granted to Licensee in this Agreement. Except " +
			"for the limited rights and licenses expressly granted under this Agreement, nothing in this " +
			"Agreement grants, by implication, waiver, estoppel, or otherwise, to Licensee or any third " +
			"party any intellectual property rights or other right, title, or interest in or to the " +
			"Licensor's intellectual property.",
	}
}

// WorkProductOwnership emits the consultant-retains-ownership provision.
// Flagged when the ip-issues risk factor is enabled.
func WorkProductOwnership(ctx Context) Clause {
	c := Clause{
		Title: "Ownership of Work Product",
		Body: "All work product, deliverables, inventions, discoveries, improvements, methodologies, " +
			"processes, tools, templates, and materials created or developed by Consultant in connection " +
			"with the Services (collectively, \"Work Product\") shall remain the exclusive property of " +
			"Consultant. Client is granted a non-exclusive, non-transferable, perpetual license to use " +
			"the Work Product solely for its internal business purposes.",
	}

	if ctx.IPIssues {
		c.Note = "AUDIT NOTE: Client does not own work product despite paying for development. " +
			"Non-transferable license limits Client's ability to share with subsidiaries or use after " +
			"corporate restructuring."
	}

	return c
}

// PreExistingMaterials emits the consultant's retained materials provision.
func PreExistingMaterials(ctx Context) Clause {
	return Clause{
		Title: "Pre-Existing Materials",
		Body: "Consultant retains all rights to any pre-existing materials, methodologies, tools, " +
			"templates, or intellectual property that existed prior to this engagement or that Consultant " +
			"develops independently outside the scope of Services for Client. To the extent any such " +
			"pre-existing materials are incorporated into Work Product, Client's license to use such " +
			"materials is limited to the specific implementation provided to Client.",
	}
}

// UseRestrictions emits the restrictions on the client's use of work
// product. Flagged when the ip-issues risk factor is enabled.
func UseRestrictions(ctx Context) Clause {
	c := Clause{
		Title: "Restrictions on Use",
		Body: "Client shall not: (a) modify, adapt, or create derivative works from the Work Product; " +
			"(b) reverse engineer, decompile, or disassemble any software or tools provided by " +
			"Consultant; (c) remove or alter any proprietary notices; (d) use the Work Product to " +
			"provide services to third parties; or (e) sublicense, sell, rent, lease, or otherwise " +
			"transfer rights to the Work Product.",
	}

	if ctx.IPIssues {
		c.Note = "AUDIT NOTE: Severe restrictions on Client's use of work product it paid to develop. " +
			"Cannot modify or create derivatives, limiting ability to adapt to changing business needs."
	}

	return c
}

// VendorOwnership emits the standard-template ownership provision where
// the vendor keeps all deliverables. Flagged when the ip-issues risk
// factor is enabled.
func VendorOwnership(ctx Context) Clause {
	c := Clause{
		Title: "Ownership",
		Body: "All work product, deliverables, and intellectual property created under this Agreement " +
			"shall be owned by Vendor. Client is granted a limited, non-exclusive, non-transferable " +
			"license to use such work product solely for its internal business purposes. This license " +
			"does not include the right to modify, create derivatives, or sublicense.",
	}

	if ctx.IPIssues {
		c.Note = "AUDIT NOTE: Vendor retains ownership of work product paid for by Client. Restrictive " +
			"license terms limit Client's ability to adapt or extend the work product."
	}

	return c
}

// VendorMaterials emits the retained vendor materials provision.
func VendorMaterials(ctx Context) Clause {
	return Clause{
		Title: "Vendor Materials",
		Body: "Vendor retains all rights to pre-existing materials, methodologies, tools, and processes " +
			"used in providing services. Client acquires no rights to such materials except as expressly " +
			"licensed herein.",
	}
}
