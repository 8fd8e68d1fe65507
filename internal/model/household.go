package model

import "github.com/shopspring/decimal"

// FamilyStatus is the declared marital situation of a household.
type FamilyStatus uint8

const (
	FamilyStatusUnknown FamilyStatus = iota
	Single
	MarriedOrCivilUnion
)

// Wire labels accepted by the API. The French labels are the canonical
// ones; the English names are aliases.
const (
	LabelSingle  = "Célibataire"
	LabelMarried = "Marié/Pacsé"
)

var familyStatusLabels = map[string]FamilyStatus{
	LabelSingle:           Single,
	LabelMarried:          MarriedOrCivilUnion,
	"Single":              Single,
	"MarriedOrCivilUnion": MarriedOrCivilUnion,
}

// ParseFamilyStatus maps a wire label to its FamilyStatus. The second
// return value is false for any unrecognized label.
func ParseFamilyStatus(label string) (FamilyStatus, bool) {
	s, ok := familyStatusLabels[label]
	return s, ok
}

func (s FamilyStatus) Valid() bool {
	return s == Single || s == MarriedOrCivilUnion
}

func (s FamilyStatus) Married() bool {
	return s == MarriedOrCivilUnion
}

func (s FamilyStatus) String() string {
	switch s {
	case Single:
		return LabelSingle
	case MarriedOrCivilUnion:
		return LabelMarried
	default:
		return "unknown"
	}
}

// HouseholdInput is the declared situation a tax computation runs on.
type HouseholdInput struct {
	FamilyStatus         FamilyStatus
	MonthlyIncomePrimary decimal.Decimal
	MonthlyIncomePartner decimal.Decimal // ignored when Single
	NumberOfChildren     int
}
