package planner

import "github.com/fin-tools/plan-advisor/pkg/models/api"

// MonthlyIncrementVisible reports whether the monthly increment field should
// be shown for the selected investment type. Pure and idempotent; it never
// touches the hidden field's value.
func MonthlyIncrementVisible(investmentType string) bool {
	return investmentType == string(api.InvestmentFloating)
}
