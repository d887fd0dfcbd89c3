package clauses

// CustomerData emits the customer data license with the broad analytics
// grant flagged.
func CustomerData(ctx Context) Clause {
	return Clause{
		Title: "Customer Data",
		Body: "Customer retains all rights to data and content uploaded to the Services (\"Customer " +
			"Data\"). Provider is granted a worldwide, non-exclusive license to use, copy, store, " +
			"transmit, and display Customer Data solely to provide the Services. Provider may use " +
			"aggregated, anonymized data derived from Customer Data for analytics, benchmarking, and " +
			"service improvement.",
		Note: "AUDIT NOTE: Broad license grants Provider rights to use Customer Data for analytics and " +
			"benchmarking. \"Anonymized\" data may still contain sensitive business information.",
	}
}

// SecuritySafeguards emits the weak security commitment.
func SecuritySafeguards(ctx Context) Clause {
	return Clause{
		Title: "Security",
		Body: "Provider shall implement reasonable administrative, physical, and technical safeguards to " +
			"protect Customer Data. However, Provider does not guarantee that unauthorized access will " +
			"never occur. Customer is responsible for: (a) configuring security settings; (b) managing " +
			"access credentials; (c) encrypting sensitive data; and (d) maintaining backups.",
		Note: "AUDIT NOTE: \"Reasonable\" security is vague and unenforceable. Provider disclaims " +
			"responsibility for unauthorized access. Customer bears significant security " +
			"responsibilities typically handled by provider in enterprise agreements.",
	}
}

// DataLocation emits the data residency provision. Flagged when the
// data-sovereignty risk factor is enabled; otherwise the provision
// commits to in-country storage and carries no note.
func DataLocation(ctx Context) Clause {
	if !ctx.DataSovereignty {
		return Clause{
			Title: "Data Location and Compliance",
			Body: "Customer Data shall be stored and processed exclusively in data centers located within " +
				"the United States. Provider shall maintain compliance certifications relevant to " +
				"Customer's industry and shall notify Customer before any change in processing location.",
		}
	}

	return Clause{
		Title: "Data Location and Compliance",
		Body: "Customer Data may be stored and processed in any country where Provider maintains " +
			"facilities. Provider makes no representations regarding compliance with data localization " +
			"requirements or industry-specific regulations (e.g., HIPAA, PCI-DSS, GDPR). Customer is " +
			"solely responsible for ensuring its use of Services complies with applicable laws.",
		Note: "AUDIT NOTE: No data residency guarantees. Provider disclaims compliance " +
			"responsibilities, placing regulatory risk entirely on Customer. This may violate data " +
			"sovereignty requirements in certain jurisdictions.",
	}
}

// TerminationDataRetrieval emits the 30-day retrieval window with
// per-GB extraction fees flagged.
func TerminationDataRetrieval(ctx Context) Clause {
	return Clause{
		Title: "Termination and Data Retrieval",
		Body: "Upon termination, Customer shall have thirty (30) days to retrieve Customer Data, after " +
			"which Provider may permanently delete all Customer Data. Data retrieval services are " +
			"available for a fee of $0.15 per GB. Provider is not obligated to provide data in any " +
			"particular format.",
		Note: "AUDIT NOTE: Short 30-day data retrieval window. Additional fees for data extraction. No " +
			"guarantee of data format compatibility, potentially making migration difficult.",
	}
}
