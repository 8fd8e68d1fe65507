package model

import json "github.com/goccy/go-json"

type BreakdownResponse struct {
	CalculationID         string           `json:"calculation_id"`
	CalculatedAt          string           `json:"calculated_at"`
	CalculationDurationUs int64            `json:"calculation_duration_us"`
	FamilyStatus          string           `json:"family_status"`
	AnnualIncome          json.Number      `json:"annual_income"`
	FiscalParts           json.Number      `json:"fiscal_parts"`
	PerPartIncome         json.Number      `json:"per_part_income"`
	Segments              []BracketSegment `json:"segments"`
	PerPartTax            json.Number      `json:"per_part_tax"`
	AnnualTax             json.Number      `json:"annual_tax"`
}

// BracketSegment is the share of per-part income taxed inside one bracket.
// UpperBound is nil for the unbounded top bracket.
type BracketSegment struct {
	LowerBound json.Number  `json:"lower_bound"`
	UpperBound *json.Number `json:"upper_bound"`
	Rate       json.Number  `json:"rate"`
	Taxable    json.Number  `json:"taxable"`
	Tax        json.Number  `json:"tax"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
