package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseFamilyStatus(t *testing.T) {
	tests := []struct {
		label  string
		want   FamilyStatus
		wantOK bool
	}{
		{"Célibataire", Single, true},
		{"Marié/Pacsé", MarriedOrCivilUnion, true},
		{"Single", Single, true},
		{"MarriedOrCivilUnion", MarriedOrCivilUnion, true},
		{"Divorcé", FamilyStatusUnknown, false},
		{"Divorced", FamilyStatusUnknown, false},
		{"célibataire", FamilyStatusUnknown, false},
		{"", FamilyStatusUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseFamilyStatus(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, got.Valid())
		})
	}
}

func TestFamilyStatus_String(t *testing.T) {
	assert.Equal(t, LabelSingle, Single.String())
	assert.Equal(t, LabelMarried, MarriedOrCivilUnion.String())
	assert.Equal(t, "unknown", FamilyStatusUnknown.String())
	assert.True(t, MarriedOrCivilUnion.Married())
	assert.False(t, Single.Married())
}

func TestCalculationRequest_Household(t *testing.T) {
	req := CalculationRequest{
		FamilyStatus:         LabelMarried,
		MonthlyIncome:        decimal.NewFromInt(3000),
		PartnerMonthlyIncome: decimal.NewFromInt(2500),
		Children:             2,
	}

	in := req.Household()

	assert.Equal(t, MarriedOrCivilUnion, in.FamilyStatus)
	assert.True(t, in.MonthlyIncomePrimary.Equal(decimal.NewFromInt(3000)))
	assert.True(t, in.MonthlyIncomePartner.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 2, in.NumberOfChildren)

	req.FamilyStatus = "Divorcé"
	assert.Equal(t, FamilyStatusUnknown, req.Household().FamilyStatus)
}
