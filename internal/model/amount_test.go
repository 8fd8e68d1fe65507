package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{input: "2000", want: "2000"},
		{input: "-1000", want: "-1000"},
		{input: "1234.56", want: "1234.56"},
		{input: "1.5e3", want: "1500"},
		{input: "1e15", want: "1000000000000000"},
		{input: "-1e15", want: "-1000000000000000"},
		{input: "1000000000000001", wantErr: ErrAmountOutOfRange},
		{input: "1e16", wantErr: ErrAmountOutOfRange},
		{input: "1e300000", wantErr: ErrAmountOutOfRange},
		{input: "1e2147483640", wantErr: ErrAmountOutOfRange},
		{input: "0e2000000000", wantErr: ErrAmountOutOfRange},
		{input: "1e-300000", wantErr: ErrAmountOutOfRange},
		{input: "0.0000000000000000001", wantErr: ErrAmountOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestParseAmount_NotANumber(t *testing.T) {
	_, err := ParseAmount("lots")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAmountOutOfRange)
}

func TestCalculationRequest_CheckAmounts(t *testing.T) {
	req := CalculationRequest{
		FamilyStatus:         LabelMarried,
		MonthlyIncome:        decimal.NewFromInt(3000),
		PartnerMonthlyIncome: decimal.NewFromInt(2500),
	}
	assert.NoError(t, req.CheckAmounts())

	req.MonthlyIncome = decimal.New(1, 2147483640)
	assert.EqualError(t, req.CheckAmounts(), "invalid value for monthly_income")

	req.MonthlyIncome = decimal.NewFromInt(3000)
	req.PartnerMonthlyIncome = decimal.New(1, -300000)
	assert.EqualError(t, req.CheckAmounts(), "invalid value for partner_monthly_income")
}
