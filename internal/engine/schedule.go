package engine

import "github.com/shopspring/decimal"

// Bracket is one finite slice of the progressive schedule. Income per
// fiscal part up to UpperBound (and above the previous bracket's bound)
// is taxed at Rate.
type Bracket struct {
	UpperBound decimal.Decimal
	Rate       decimal.Decimal
}

var (
	brackets = [...]Bracket{
		{UpperBound: decimal.NewFromInt(10225), Rate: decimal.Zero},
		{UpperBound: decimal.NewFromInt(26070), Rate: decimal.RequireFromString("0.11")},
		{UpperBound: decimal.NewFromInt(74545), Rate: decimal.RequireFromString("0.30")},
		{UpperBound: decimal.NewFromInt(160336), Rate: decimal.RequireFromString("0.41")},
	}
	topRate = decimal.RequireFromString("0.45")
)

// Brackets returns a copy of the finite brackets in ascending order.
func Brackets() []Bracket {
	out := make([]Bracket, len(brackets))
	copy(out, brackets[:])
	return out
}

// TopRate is the rate applied to per-part income above the last bound.
func TopRate() decimal.Decimal {
	return topRate
}
