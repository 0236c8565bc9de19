package api

type InvestmentType string

const (
	InvestmentFixed    InvestmentType = "fixed"
	InvestmentFloating InvestmentType = "floating"
)

type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// PlanForm carries the raw field values exactly as the page submitted them.
// Coercion into an InvestmentRequest happens in the planner, not here.
type PlanForm struct {
	Amount           string `json:"amount"`
	TimePeriod       string `json:"time_period"`
	InvestmentType   string `json:"investment_type"`
	RiskTolerance    string `json:"risk_tolerance"`
	MonthlyIncrement string `json:"monthly_increment"`
}

// InvestmentRequest is the body of the POST to the calculation service.
// Built fresh per submission and never mutated afterwards.
type InvestmentRequest struct {
	Amount           float64        `json:"amount"`
	TimePeriod       int            `json:"time_period"`
	InvestmentType   InvestmentType `json:"investment_type"`
	RiskTolerance    RiskTolerance  `json:"risk_tolerance"`
	MonthlyIncrement float64        `json:"monthly_increment"`
}

// AllocationSlice holds one asset class share. The service names the field
// "percentage" but the value is a fraction in [0,1]; multiply by 100 for
// display.
type AllocationSlice struct {
	Percentage float64 `json:"percentage"`
}

type AssetAllocation struct {
	Stocks      AllocationSlice `json:"stocks"`
	MutualFunds AllocationSlice `json:"mutual_funds"`
	Bonds       AllocationSlice `json:"bonds"`
	Cash        AllocationSlice `json:"cash"`
}

type Advice struct {
	TimePeriod         int              `json:"time_period"`
	TotalExpectedValue float64          `json:"total_expected_value"`
	AssetAllocation    *AssetAllocation `json:"asset_allocation"`
}

type AdviceResponse struct {
	Advice   *Advice   `json:"advice"`
	Strategy Narrative `json:"strategy"`
}
