package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Monthly amounts must stay within ±maxAmount with at most maxAmountScale
// fractional digits.
const (
	maxAmountScale    = 18
	maxAmountExponent = 15
)

var (
	maxAmount = decimal.New(1, maxAmountExponent)

	ErrAmountOutOfRange = errors.New("amount out of range")
)

// ParseAmount parses a monthly amount and rejects values outside the
// accepted range.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if err := CheckAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// CheckAmount checks the exponent before comparing magnitudes, so a huge
// exponent is never rescaled.
func CheckAmount(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp < -maxAmountScale || exp > maxAmountExponent {
		return ErrAmountOutOfRange
	}
	if d.Abs().GreaterThan(maxAmount) {
		return ErrAmountOutOfRange
	}
	return nil
}
