package view

import "github.com/fin-tools/plan-advisor/pkg/models/api"

// Stable element identifiers on the calculator page. Every mutation the
// controller issues is addressed to one of these.
const (
	ElemAmount               = "amount"
	ElemTimePeriod           = "time_period"
	ElemInvestmentType       = "investment_type"
	ElemRiskTolerance        = "risk_tolerance"
	ElemMonthlyIncrement     = "monthly_increment"
	ElemMonthlyIncrementWrap = "monthly_increment_group"
	ElemSubmit               = "calculate-btn"
	ElemResults              = "results"
	ElemSummary              = "summary-text"
	ElemRecommendations      = "recommendations-text"
	ElemChart                = "allocation-chart"
)

// Surface is the controller's handle on the page. Implementations must apply
// (or record) operations in call order; the submission lifecycle relies on
// the submit control being disabled before the request is issued and
// restored after everything else.
type Surface interface {
	SetControlEnabled(id string, enabled bool)
	SetControlLabel(id string, label string)
	SetFieldVisible(id string, visible bool)
	SetHTML(id string, html string)
	DrawChart(spec api.ChartSpec)
	ShowAlert(message string)
	RevealResults(id string)
}
