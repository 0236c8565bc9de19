package render

import (
	"github.com/fin-tools/plan-advisor/pkg/models/api"
	"github.com/fin-tools/plan-advisor/pkg/services/advisor"
	"github.com/fin-tools/plan-advisor/pkg/view"
)

const DefaultCurrency = "₹"

// AlertInvalidData is the user-visible notification for a response that
// failed shape validation, shared with the controller's own check.
const AlertInvalidData = "Received invalid data from the calculation service. Please try again."

// Renderer turns a validated advice response into the three visual
// artifacts: allocation chart, summary notice, recommendation blocks.
type Renderer struct {
	currency string
}

func NewRenderer(currency string) *Renderer {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Renderer{currency: currency}
}

// Render draws the chart, writes the summary and recommendation markup, and
// reveals the results panel. It re-checks the advice shape itself,
// independent of the controller's validation, and renders nothing on a bad
// response.
func (r *Renderer) Render(surface view.Surface, resp *api.AdviceResponse) error {
	if resp == nil || resp.Advice == nil || resp.Advice.AssetAllocation == nil {
		surface.ShowAlert(AlertInvalidData)
		return &advisor.MalformedResponseError{Reason: "missing advice.asset_allocation"}
	}

	surface.DrawChart(BuildAllocationChart(*resp.Advice.AssetAllocation))

	summary, err := SummaryHTML(*resp.Advice, r.currency)
	if err != nil {
		return err
	}
	surface.SetHTML(view.ElemSummary, summary)

	recommendations, err := RecommendationHTML(resp.Strategy)
	if err != nil {
		return err
	}
	surface.SetHTML(view.ElemRecommendations, recommendations)

	surface.RevealResults(view.ElemResults)
	return nil
}
