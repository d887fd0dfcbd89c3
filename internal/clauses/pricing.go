package clauses

import "fmt"

// BaseLicenseFee covers the annual license fee and its quarterly
// installment schedule. The 15-day first payment window is flagged.
func BaseLicenseFee(ctx Context) Clause {
	return Clause{
		Title: "License Fees",
		Body: fmt.Sprintf(
			"In consideration for the license granted hereunder, Licensee shall pay Licensor an "+
				"annual license fee of %s (the \"Base License Fee\"), payable in quarterly installments "+
				"of %s each. The first installment shall be due and payable within fifteen (15) days of "+
				"the Effective Date, with subsequent installments due on the first day of each calendar "+
				"quarter thereafter.",
			money(ctx.Value), money(ctx.Value/4),
		),
		Note: "AUDIT NOTE: First payment due within 15 days of contract execution (non-standard - " +
			"typically 30 days). This accelerated payment term creates cash flow pressure.",
	}
}

// VariableUsageFees emits the tiered per-transaction fee schedule.
// When the uncapped-fees risk factor is enabled the schedule carries no
// monthly maximum and the clause is flagged.
func VariableUsageFees(ctx Context) Clause {
	c := Clause{
		Title: "Variable Usage Fees",
		Body: "In addition to the Base License Fee, Licensee shall pay usage-based fees calculated as " +
			"follows: (a) $0.15 per transaction for the first 1,000,000 transactions per month; " +
			"(b) $0.10 per transaction for transactions 1,000,001 to 5,000,000 per month; and " +
			"(c) $0.05 per transaction for all transactions exceeding 5,000,000 per month. Usage fees " +
			"shall be calculated monthly and invoiced in arrears, with payment due within thirty (30) " +
			"days of invoice date.",
	}

	if ctx.UncappedFees {
		c.Note = "AUDIT NOTE: Usage fees are uncapped and could result in significant cost overruns. " +
			"No maximum monthly cap specified, creating unlimited financial exposure for high-volume usage."
	} else {
		c.Body += " Aggregate usage fees shall not exceed twenty percent (20%) of the Base License Fee " +
			"in any calendar month."
	}

	return c
}

// PriceEscalation emits the annual escalation formula. Flagged: the 8%
// floor is well above market adjustments.
func PriceEscalation(ctx Context) Clause {
	return Clause{
		Title: "Price Escalation",
		Body: "The Base License Fee and per-transaction rates shall automatically increase annually on " +
			"each anniversary of the Effective Date by the greater of (a) eight percent (8%) or (b) the " +
			"Consumer Price Index (CPI) for All Urban Consumers plus three percentage points (3%).",
		Note: "AUDIT NOTE: Escalation clause is significantly above market rate (typical is 3-5% " +
			"annually). The 8% minimum increase substantially exceeds typical inflation rates.",
	}
}

// ConsultingRates emits the time-and-materials rate card with a
// non-binding estimate. Flagged when fees are uncapped.
func ConsultingRates(ctx Context) Clause {
	c := Clause{
		Title: "Fee Structure",
		Body: fmt.Sprintf(
			"Client shall pay Consultant for Services rendered on a time and materials basis according "+
				"to the following hourly rates: (a) Senior Consultants: $325 per hour; (b) Mid-Level "+
				"Consultants: $250 per hour; (c) Junior Consultants: $175 per hour; (d) Project Managers: "+
				"$350 per hour; and (e) Subject Matter Experts: $450 per hour. The estimated total "+
				"engagement value is %s, however this is an estimate only and not a cap on fees.",
			money(ctx.Value),
		),
	}

	if ctx.UncappedFees {
		c.Note = fmt.Sprintf(
			"AUDIT NOTE: No cap on total hours or monthly billing. Rates are 15-20%% above market. "+
				"Estimated value of %s is non-binding and could significantly exceed budget.",
			money(ctx.Value),
		)
	}

	return c
}

// ExpenseReimbursement emits the expense pass-through terms with the
// 15% administrative markup flagged.
func ExpenseReimbursement(ctx Context) Clause {
	return Clause{
		Title: "Expenses",
		Body: "In addition to fees, Client shall reimburse Consultant for all reasonable and documented " +
			"out-of-pocket expenses incurred in connection with the Services, including but not limited " +
			"to: travel, lodging, meals, telecommunications, shipping, and reproduction costs. Consultant " +
			"may charge a fifteen percent (15%) administrative fee on all reimbursable expenses.",
		Note: "AUDIT NOTE: 15% administrative fee on expenses is excessive (typical is 0-5%). No " +
			"pre-approval requirement for expenses or spending limits specified.",
	}
}

// InvoicingTerms emits the bi-weekly invoicing schedule with aggressive
// payment and interest terms flagged.
func InvoicingTerms(ctx Context) Clause {
	return Clause{
		Title: "Invoicing and Payment",
		Body: "Consultant shall invoice Client bi-weekly for Services rendered and expenses incurred. " +
			"Payment is due within ten (10) business days of invoice date. Late payments shall accrue " +
			"interest at the rate of two percent (2%) per month or the maximum rate permitted by law, " +
			"whichever is less.",
		Note: "AUDIT NOTE: 10-day payment terms are aggressive (typical is 30 days). 2% monthly " +
			"interest rate (24% annually) is excessive.",
	}
}

// RateIncreases emits the unilateral consulting rate increase right.
func RateIncreases(ctx Context) Clause {
	return Clause{
		Title: "Rate Increases",
		Body: "Consultant reserves the right to increase hourly rates upon thirty (30) days written " +
			"notice to Client. Rate increases shall not exceed ten percent (10%) in any twelve-month period.",
		Note: "AUDIT NOTE: Unilateral right to increase rates with only 30 days notice. 10% annual " +
			"increase cap is high and compounds over multi-year engagements.",
	}
}

// UsagePricing emits the cloud consumption pricing model. Flagged when
// fees are uncapped.
func UsagePricing(ctx Context) Clause {
	c := Clause{
		Title: "Pricing Model",
		Body: fmt.Sprintf(
			"Customer shall pay for Services based on actual usage according to Provider's published "+
				"rate card, as may be amended from time to time. Estimated annual spend is %s, however "+
				"actual costs will vary based on consumption. Pricing includes: (a) compute charges based "+
				"on instance type and hours used; (b) storage charges based on GB stored and data "+
				"transfer; (c) database charges based on instance size and IOPS; (d) network egress "+
				"charges; and (e) premium support fees of fifteen percent (15%%) of total monthly usage.",
			money(ctx.Value),
		),
	}

	if ctx.UncappedFees {
		c.Note = "AUDIT NOTE: Usage-based pricing with no caps creates unlimited cost exposure. 15% " +
			"premium support fee is excessive (typical is 5-10%). Provider can unilaterally change " +
			"rates via published rate card updates."
	}

	return c
}

// RateChanges emits the provider's unilateral rate modification right.
func RateChanges(ctx Context) Clause {
	return Clause{
		Title: "Rate Changes",
		Body: "Provider may modify its rates at any time upon sixty (60) days notice. Continued use of " +
			"Services after rate changes constitutes acceptance of new rates. Rate increases shall not " +
			"exceed fifteen percent (15%) in any twelve-month period.",
		Note: "AUDIT NOTE: Unilateral right to increase rates by up to 15% annually. No option to " +
			"terminate without penalty if rates increase significantly.",
	}
}

// CloudBilling emits monthly-in-arrears billing with rapid suspension.
func CloudBilling(ctx Context) Clause {
	return Clause{
		Title: "Billing and Payment",
		Body: "Provider shall invoice Customer monthly in arrears for all usage during the preceding " +
			"month. Payment is due within fifteen (15) days of invoice date. Provider may suspend " +
			"Services immediately if payment is more than five (5) days overdue.",
		Note: "AUDIT NOTE: Aggressive payment terms (15 days) and service suspension after only 5 days " +
			"of late payment could disrupt business operations.",
	}
}

// ContractValue emits the standard-template total value and
// non-refundable payment schedule.
func ContractValue(ctx Context) Clause {
	return Clause{
		Title: "Contract Value",
		Body: fmt.Sprintf(
			"The total estimated contract value is %s, payable according to the payment schedule set "+
				"forth in Exhibit B. All fees are non-refundable once services have commenced. Vendor may "+
				"invoice for services in advance of performance.",
			money(ctx.Value),
		),
		Note: "AUDIT NOTE: Non-refundable fees even if services are not satisfactorily performed. " +
			"Advance invoicing creates cash flow risk for Client.",
	}
}

// AdditionalFees emits the third-party cost markup terms.
func AdditionalFees(ctx Context) Clause {
	return Clause{
		Title: "Additional Fees",
		Body: "Client shall pay additional fees for: (a) services outside the defined scope; " +
			"(b) expedited delivery requests; (c) after-hours support; (d) travel and expenses; and " +
			"(e) any third-party costs incurred by Vendor. Vendor may charge a markup of up to twenty " +
			"percent (20%) on third-party costs.",
		Note: "AUDIT NOTE: 20% markup on third-party costs is excessive (typical is 5-10%). No cap on " +
			"additional fees or requirement for pre-approval.",
	}
}

// PriceAdjustments emits the standard-template annual adjustment right.
func PriceAdjustments(ctx Context) Clause {
	return Clause{
		Title: "Price Adjustments",
		Body: "Vendor may adjust prices annually based on changes in Vendor's costs, market conditions, " +
			"or the Consumer Price Index, whichever results in the greater increase. Price adjustments " +
			"shall not exceed twelve percent (12%) in any twelve-month period.",
		Note: "AUDIT NOTE: Unilateral right to increase prices by up to 12% annually. This is " +
			"significantly above typical inflation rates and market norms (3-5%).",
	}
}

// LatePayment emits the standard-template late payment and suspension terms.
func LatePayment(ctx Context) Clause {
	return Clause{
		Title: "Late Payment",
		Body: "Invoices are due within twenty (20) days of invoice date. Late payments shall accrue " +
			"interest at 1.5% per month (18% annually). Vendor may suspend services if payment is more " +
			"than ten (10) days overdue and may terminate this Agreement if payment is more than thirty " +
			"(30) days overdue.",
		Note: "AUDIT NOTE: High interest rate on late payments. Service suspension after only 10 days " +
			"could disrupt business operations.",
	}
}

// PricingAmendment records an amendment's contract value change,
// computing the exact percentage increase over the prior value.
// A zero prior value falls back to DefaultBaseValue.
func PricingAmendment(oldValue, newValue int64) Clause {
	if oldValue <= 0 {
		oldValue = DefaultBaseValue
	}
	increase := PriceIncreasePct(oldValue, newValue)

	return Clause{
		Title: "Pricing Modification",
		Body: fmt.Sprintf(
			"The annual contract value set forth in the Original Agreement is hereby amended from %s "+
				"to %s, representing an increase of %s.",
			money(oldValue), money(newValue), pct(increase),
		),
		Note: fmt.Sprintf(
			"AUDIT NOTE: Price increase of %s exceeds typical market adjustments (3-5%% annually).",
			pct(increase),
		),
	}
}
