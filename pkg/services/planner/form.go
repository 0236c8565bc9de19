package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fin-tools/plan-advisor/pkg/models/api"
)

// InvalidInputError marks a form value the reader refused to coerce. These
// never reach the calculation service.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid value %q for field %q", e.Value, e.Field)
}

// ReadForm coerces raw field values into an InvestmentRequest. Amount and
// time period must be positive numbers; a blank monthly increment defaults
// to 0. Type and risk selections pass through verbatim since the selectors
// only offer the enumerated values.
func ReadForm(form api.PlanForm) (api.InvestmentRequest, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)
	if err != nil || amount <= 0 {
		return api.InvestmentRequest{}, &InvalidInputError{Field: "amount", Value: form.Amount}
	}

	years, err := strconv.Atoi(strings.TrimSpace(form.TimePeriod))
	if err != nil || years <= 0 {
		return api.InvestmentRequest{}, &InvalidInputError{Field: "time_period", Value: form.TimePeriod}
	}

	increment := 0.0
	if raw := strings.TrimSpace(form.MonthlyIncrement); raw != "" {
		increment, err = strconv.ParseFloat(raw, 64)
		if err != nil || increment < 0 {
			return api.InvestmentRequest{}, &InvalidInputError{Field: "monthly_increment", Value: form.MonthlyIncrement}
		}
	}

	return api.InvestmentRequest{
		Amount:           amount,
		TimePeriod:       years,
		InvestmentType:   api.InvestmentType(form.InvestmentType),
		RiskTolerance:    api.RiskTolerance(form.RiskTolerance),
		MonthlyIncrement: increment,
	}, nil
}
