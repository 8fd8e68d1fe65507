package engine

import (
	"github.com/shopspring/decimal"

	"tax-simulator/internal/model"
)

const (
	// perPartScale is the number of fractional digits kept when dividing
	// annual income by fiscal parts.
	perPartScale = 24
	resultScale  = 2
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	halfPart      = decimal.RequireFromString("0.5")
)

// Segment is the slice of per-part income taxed inside one bracket.
// Bounded is false for the top bracket, whose UpperBound is zero.
type Segment struct {
	LowerBound decimal.Decimal
	UpperBound decimal.Decimal
	Bounded    bool
	Rate       decimal.Decimal
	Taxable    decimal.Decimal
	Tax        decimal.Decimal
}

// Breakdown holds every intermediate value of one computation.
type Breakdown struct {
	Input         model.HouseholdInput
	AnnualIncome  decimal.Decimal
	FiscalParts   decimal.Decimal
	PerPartIncome decimal.Decimal
	Segments      []Segment
	PerPartTax    decimal.Decimal
	Tax           decimal.Decimal
}

// ComputeAnnualTax returns the household's annual tax rounded to cents.
// The only error it returns is *InvalidInputError.
func ComputeAnnualTax(input model.HouseholdInput) (decimal.Decimal, error) {
	b, err := ComputeBreakdown(input)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Tax, nil
}

// ComputeBreakdown validates input and runs the full quotient familial
// computation:
//  1. annual household income (partner income only when married)
//  2. fiscal parts from family status and children
//  3. income per part
//  4. progressive bracket tax on the per-part income
//  5. scale back by parts and round half-to-even to cents
func ComputeBreakdown(input model.HouseholdInput) (Breakdown, error) {
	if err := Validate(input); err != nil {
		return Breakdown{}, err
	}

	annual := AnnualIncome(input)
	parts := FiscalParts(input.FamilyStatus, input.NumberOfChildren)
	perPart := annual.DivRound(parts, perPartScale)

	segments := Segments(perPart)
	perPartTax := decimal.Zero
	for _, s := range segments {
		perPartTax = perPartTax.Add(s.Tax)
	}

	return Breakdown{
		Input:         input,
		AnnualIncome:  annual,
		FiscalParts:   parts,
		PerPartIncome: perPart,
		Segments:      segments,
		PerPartTax:    perPartTax,
		Tax:           perPartTax.Mul(parts).RoundBank(resultScale),
	}, nil
}

// Validate checks the household invariants in a fixed order so that the
// first violated rule decides the message.
func Validate(input model.HouseholdInput) error {
	if !input.FamilyStatus.Valid() {
		return invalidInput(MsgInvalidFamilyStatus)
	}

	if !input.MonthlyIncomePrimary.IsPositive() {
		return invalidInput(MsgIncomesNotPositive)
	}

	// Partner income is ignored, and so not checked, for single households.
	if input.FamilyStatus.Married() && input.MonthlyIncomePartner.IsNegative() {
		return invalidInput(MsgIncomesNotPositive)
	}

	if input.NumberOfChildren < 0 {
		return invalidInput(MsgNegativeChildren)
	}

	return nil
}

// AnnualIncome sums twelve months of the incomes counted for the household.
func AnnualIncome(input model.HouseholdInput) decimal.Decimal {
	if input.FamilyStatus.Married() {
		return input.MonthlyIncomePrimary.Add(input.MonthlyIncomePartner).Mul(monthsPerYear)
	}
	return input.MonthlyIncomePrimary.Mul(monthsPerYear)
}

// FiscalParts returns the household-size divisor: 1 part for a single
// person, 2 for a couple, plus half a part per child.
func FiscalParts(status model.FamilyStatus, children int) decimal.Decimal {
	base := decimal.NewFromInt(1)
	if status.Married() {
		base = decimal.NewFromInt(2)
	}

	var quotient decimal.Decimal
	switch {
	case children <= 0:
		quotient = decimal.Zero
	case children == 1:
		quotient = halfPart
	case children == 2:
		quotient = decimal.NewFromInt(1)
	default:
		quotient = decimal.NewFromInt(1).Add(decimal.NewFromInt(int64(children - 2)).Mul(halfPart))
	}

	return base.Add(quotient)
}

// BracketTax applies the progressive schedule to an income per fiscal part.
func BracketTax(perPart decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	for _, s := range Segments(perPart) {
		tax = tax.Add(s.Tax)
	}
	return tax
}

// Segments folds perPart over the schedule, one entry per finite bracket
// followed by the unbounded top bracket. Brackets above perPart have a
// zero taxable amount.
func Segments(perPart decimal.Decimal) []Segment {
	segments := make([]Segment, 0, len(brackets)+1)
	lower := decimal.Zero

	for _, b := range brackets {
		taxable := decimal.Max(decimal.Zero, decimal.Min(perPart, b.UpperBound).Sub(lower))
		segments = append(segments, Segment{
			LowerBound: lower,
			UpperBound: b.UpperBound,
			Bounded:    true,
			Rate:       b.Rate,
			Taxable:    taxable,
			Tax:        taxable.Mul(b.Rate),
		})
		lower = b.UpperBound
	}

	top := decimal.Max(decimal.Zero, perPart.Sub(lower))
	segments = append(segments, Segment{
		LowerBound: lower,
		Rate:       topRate,
		Taxable:    top,
		Tax:        top.Mul(topRate),
	})

	return segments
}
