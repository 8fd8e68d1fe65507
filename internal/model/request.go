package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Query parameters of GET /api/tax/calculate and GET /api/tax/breakdown.
const (
	ParamFamilyStatus  = "situationFamiliale"
	ParamMonthlyIncome = "salaireMensuel"
	ParamPartnerIncome = "salaireMensuelConjoint"
	ParamChildren      = "nombreEnfants"
)

// CalculationRequest is the JSON body accepted by POST /api/tax/calculate.
type CalculationRequest struct {
	FamilyStatus         string          `json:"family_status"`
	MonthlyIncome        decimal.Decimal `json:"monthly_income"`
	PartnerMonthlyIncome decimal.Decimal `json:"partner_monthly_income"`
	Children             int             `json:"children"`
}

// CheckAmounts rejects incomes outside the accepted range, naming the
// offending field.
func (r *CalculationRequest) CheckAmounts() error {
	if err := CheckAmount(r.MonthlyIncome); err != nil {
		return errors.New("invalid value for monthly_income")
	}
	if err := CheckAmount(r.PartnerMonthlyIncome); err != nil {
		return errors.New("invalid value for partner_monthly_income")
	}
	return nil
}

// Household converts the request into a HouseholdInput. An unrecognized
// family status label yields FamilyStatusUnknown, which the calculator
// rejects during validation.
func (r *CalculationRequest) Household() HouseholdInput {
	status, _ := ParseFamilyStatus(r.FamilyStatus)
	return HouseholdInput{
		FamilyStatus:         status,
		MonthlyIncomePrimary: r.MonthlyIncome,
		MonthlyIncomePartner: r.PartnerMonthlyIncome,
		NumberOfChildren:     r.Children,
	}
}
