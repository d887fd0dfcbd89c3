package clauses

import "fmt"

// ScopeOfServices emits the consulting engagement scope.
func ScopeOfServices(ctx Context) Clause {
	return Clause{
		Title: "Services",
		Body: "Consultant shall provide professional consulting services including, but not limited to: " +
			"(a) enterprise architecture design and review; (b) software development and integration; " +
			"(c) project management and oversight; (d) business process analysis and optimization; " +
			"(e) technical training and knowledge transfer; and (f) such other services as may be " +
			"mutually agreed upon in writing by the parties (collectively, the \"Services\"). The " +
			"specific scope, deliverables, and timelines for each engagement shall be set forth in one " +
			"or more Statements of Work executed by both parties.",
	}
}

// StandardOfPerformance emits the vague performance standard, flagged.
func StandardOfPerformance(ctx Context) Clause {
	return Clause{
		Title: "Standard of Performance",
		Body: "Consultant shall perform the Services in a professional and workmanlike manner consistent " +
			"with industry standards. Consultant shall assign qualified personnel with appropriate skills " +
			"and experience to perform the Services. However, Consultant makes no guarantee regarding " +
			"specific outcomes or results from the Services provided.",
		Note: "AUDIT NOTE: No specific performance metrics or success criteria defined. \"Industry " +
			"standards\" is vague and difficult to enforce.",
	}
}

// PersonnelSubstitution emits the unrestricted staffing substitution right.
func PersonnelSubstitution(ctx Context) Clause {
	return Clause{
		Title: "Personnel Substitution",
		Body: "Consultant reserves the right to substitute personnel assigned to perform Services at any " +
			"time without prior notice to Client, provided that substitute personnel possess " +
			"substantially similar qualifications and experience.",
		Note: "AUDIT NOTE: Unlimited substitution rights without Client approval may result in " +
			"inconsistent service quality and loss of institutional knowledge.",
	}
}

// ServiceDescription emits the cloud service catalog.
func ServiceDescription(ctx Context) Clause {
	return Clause{
		Title: "Service Description",
		Body: "Provider shall make available to Customer cloud-based infrastructure, platform, and " +
			"software services including: (a) compute resources (virtual machines, containers); " +
			"(b) storage services (object, block, and file storage); (c) database services; " +
			"(d) networking and content delivery; (e) security and identity management; (f) analytics " +
			"and machine learning tools; and (g) monitoring and management tools (collectively, the " +
			"\"Services\"). Specific service tiers, performance specifications, and resource allocations " +
			"are detailed in the Service Level Agreement attached as Exhibit A.",
	}
}

// ServiceAvailability emits the below-market 99.5% uptime commitment.
func ServiceAvailability(ctx Context) Clause {
	return Clause{
		Title: "Service Availability",
		Body: "Provider shall use commercially reasonable efforts to maintain Service availability of " +
			"99.5% measured monthly, excluding scheduled maintenance windows. Scheduled maintenance may " +
			"occur at any time upon 48 hours notice.",
		Note: "AUDIT NOTE: 99.5% uptime SLA is below industry standard (typically 99.9% or higher for " +
			"critical services). This allows for up to 3.6 hours of downtime per month. Maintenance " +
			"windows are not excluded from SLA calculation in most enterprise agreements.",
	}
}

// ServiceModifications emits the provider's unilateral change right.
func ServiceModifications(ctx Context) Clause {
	return Clause{
		Title: "Service Modifications",
		Body: "Provider reserves the right to modify, suspend, or discontinue any aspect of the Services " +
			"at any time with thirty (30) days notice. Provider may make emergency changes without " +
			"notice if required for security or system integrity.",
		Note: "AUDIT NOTE: Broad right to modify or discontinue services with minimal notice. No " +
			"compensation or migration assistance provided if critical services are discontinued.",
	}
}

// GenericScope emits the standard-template scope over a per-type service
// description, with unrestricted subcontracting flagged.
func GenericScope(ctx Context, serviceDesc string) Clause {
	return Clause{
		Title: "Services",
		Body: fmt.Sprintf(
			"Vendor shall provide %s as more particularly described in the attached Exhibits and "+
				"Statements of Work. All services shall be performed in accordance with industry standards "+
				"and applicable laws and regulations. Vendor reserves the right to use subcontractors "+
				"without prior notice to Client.",
			serviceDesc,
		),
		Note: "AUDIT NOTE: Vague scope definition. Unlimited subcontracting rights without Client " +
			"approval may impact quality and security.",
	}
}

// ScopeChanges emits the implied-acceptance change order terms.
func ScopeChanges(ctx Context) Clause {
	return Clause{
		Title: "Changes to Scope",
		Body: "Any changes to the scope of services must be requested in writing. Vendor shall provide a " +
			"quote for such changes within fifteen (15) business days. Vendor may adjust timelines and " +
			"fees for any scope changes. Client's continued acceptance of services after scope changes " +
			"constitutes acceptance of revised fees and timelines.",
		Note: "AUDIT NOTE: Implied acceptance through continued use. No requirement for explicit Client " +
			"approval of revised fees.",
	}
}

// ServicesAmendment records an amendment adding services without
// competitive bidding.
func ServicesAmendment(description string) Clause {
	return Clause{
		Title: "Additional Services",
		Body: fmt.Sprintf(
			"Vendor shall provide the following additional services: %s. Pricing for these additional "+
				"services shall be as set forth in Exhibit A attached hereto.",
			description,
		),
		Note: "AUDIT NOTE: New services added without competitive bidding. Pricing may be above market rate.",
	}
}
