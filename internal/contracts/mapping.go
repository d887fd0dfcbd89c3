package contracts

import "strings"

// typeFromAbbrev maps filename abbreviation codes back to full type
// names. Both "ma" and "msa" resolve to Master Service Agreement, so a
// Maintenance Agreement recovered from disk reads as Master Service.
// The code is all the filename preserves, and Master Service is the
// more common holding.
var typeFromAbbrev = map[string]Type{
	"sla": SoftwareLicense,
	"psa": ProfessionalServices,
	"csa": CloudServices,
	"hpa": HardwarePurchase,
	"ma":  MasterService,
	"msa": MasterService,
	"ca":  Consulting,
	"da":  Distribution,
	"jva": JointVenture,
	"saa": StrategicAlliance,
}

// Abbrev derives the filename code for a type: the first letter of each
// word, lowercased. Software License Agreement becomes "sla".
func Abbrev(t Type) string {
	var b strings.Builder
	for _, word := range strings.Fields(string(t)) {
		b.WriteByte(byte(word[0]))
	}
	return strings.ToLower(b.String())
}

// TypeFromAbbrev resolves a filename code to its full type name.
// Unrecognized codes yield Unknown and false.
func TypeFromAbbrev(code string) (Type, bool) {
	if t, ok := typeFromAbbrev[strings.ToLower(code)]; ok {
		return t, true
	}
	return Unknown, false
}

// ParseType resolves a full type name, case-insensitively.
func ParseType(s string) (Type, bool) {
	for _, t := range Types {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return Unknown, false
}

// ParseComplexity resolves a complexity level, case-insensitively.
// Empty input yields Standard.
func ParseComplexity(s string) (Complexity, bool) {
	if s == "" {
		return Standard, true
	}
	for _, c := range []Complexity{Minimal, Standard, Detailed, Comprehensive} {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return Standard, false
}
