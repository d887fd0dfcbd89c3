// Package contracts defines the contract domain model: agreement types,
// generation parameters, risk factor toggles, and the metadata record
// emitted for every generated document.
package contracts

import "time"

// Type identifies one of the supported agreement templates.
type Type string

const (
	SoftwareLicense      Type = "Software License Agreement"
	ProfessionalServices Type = "Professional Services Agreement"
	CloudServices        Type = "Cloud Services Agreement"
	HardwarePurchase     Type = "Hardware Purchase Agreement"
	MasterService        Type = "Master Service Agreement"
	Consulting           Type = "Consulting Agreement"
	Distribution         Type = "Distribution Agreement"
	Maintenance          Type = "Maintenance Agreement"
	JointVenture         Type = "Joint Venture Agreement"
	StrategicAlliance    Type = "Strategic Alliance Agreement"
)

// Types lists every supported agreement type in presentation order.
var Types = []Type{
	SoftwareLicense,
	ProfessionalServices,
	CloudServices,
	HardwarePurchase,
	MasterService,
	Consulting,
	Distribution,
	Maintenance,
	JointVenture,
	StrategicAlliance,
}

// Unknown is the display type for scanned files whose abbreviation code
// is not recognized.
const Unknown Type = "Unknown Agreement"

// Complexity controls how many optional provisions a generated document
// carries beyond its required article set.
type Complexity string

const (
	Minimal       Complexity = "Minimal"
	Standard      Complexity = "Standard"
	Detailed      Complexity = "Detailed"
	Comprehensive Complexity = "Comprehensive"
)

// RiskFactors toggles the non-standard terms a generated contract embeds.
// Each enabled factor swaps at least one provision for a variant carrying
// an audit note.
type RiskFactors struct {
	UncappedFees    bool `json:"uncapped_fees"`
	LowLiability    bool `json:"low_liability"`
	DataSovereignty bool `json:"data_sovereignty"`
	AsymmetricTerms bool `json:"asymmetric_terms"`
	IPIssues        bool `json:"ip_issues"`
	WarrantyGaps    bool `json:"warranty_gaps"`
}

// AllRisks returns a RiskFactors value with every toggle enabled.
func AllRisks() RiskFactors {
	return RiskFactors{
		UncappedFees:    true,
		LowLiability:    true,
		DataSovereignty: true,
		AsymmetricTerms: true,
		IPIssues:        true,
		WarrantyGaps:    true,
	}
}

// GenerateConfig carries the parameters for a single contract generation.
type GenerateConfig struct {
	Type       Type        `json:"type"`
	Vendor     string      `json:"vendor"`
	Value      int64       `json:"value"`
	TermYears  int         `json:"term_years"`
	Complexity Complexity  `json:"complexity"`
	Risks      RiskFactors `json:"risks"`

	// Folder overrides the date-based output folder when non-empty.
	Folder string `json:"folder,omitempty"`
}

// AmendmentChanges selects which articles an amendment contains. Fields
// are applied in declaration order when building the document.
type AmendmentChanges struct {
	Pricing             bool   `json:"pricing"`
	NewValue            int64  `json:"new_value,omitempty"`
	TermExtension       int    `json:"term_extension,omitempty"`
	ServicesDescription string `json:"services_description,omitempty"`
	Liability           bool   `json:"liability"`
	Termination         bool   `json:"termination"`
	AuditRights         bool   `json:"audit_rights"`
}

// Count reports how many amendment articles the selection produces.
func (c AmendmentChanges) Count() int {
	n := 0
	if c.Pricing {
		n++
	}
	if c.TermExtension > 0 {
		n++
	}
	if c.ServicesDescription != "" {
		n++
	}
	if c.Liability {
		n++
	}
	if c.Termination {
		n++
	}
	if c.AuditRights {
		n++
	}
	return n
}

// AmendmentConfig carries the parameters for amending a base contract.
type AmendmentConfig struct {
	Base    Record           `json:"base"`
	Number  int              `json:"number"`
	Date    time.Time        `json:"date"`
	Changes AmendmentChanges `json:"changes"`
}

// BatchConfig carries the parameters for a batch generation run. All
// documents in one batch land in a shared timestamp folder.
type BatchConfig struct {
	Count      int         `json:"count"`
	Types      []Type      `json:"types,omitempty"`
	Vendors    []string    `json:"vendors,omitempty"`
	MinValue   int64       `json:"min_value"`
	MaxValue   int64       `json:"max_value"`
	Complexity Complexity  `json:"complexity"`
	Risks      RiskFactors `json:"risks"`
}

// Record is the metadata emitted for every generated or scanned document.
type Record struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Vendor         string    `json:"vendor"`
	Value          int64     `json:"value"`
	Date           string    `json:"date"`
	Filename       string    `json:"filename"`
	Path           string    `json:"path"`
	Issues         int       `json:"issues"`
	FileSize       int64     `json:"file_size"`
	Modified       time.Time `json:"modified"`
	Folder         string    `json:"folder"`
	IsAmendment    bool      `json:"is_amendment"`
	BaseContractID string    `json:"base_contract_id,omitempty"`
}

// BatchResult reports the outcome of a single document within a batch.
// On success, Record is populated and Error is empty.
type BatchResult struct {
	Record *Record `json:"record,omitempty"`
	Error  string  `json:"error,omitempty"`
}
