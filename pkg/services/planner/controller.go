package planner

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/fin-tools/plan-advisor/pkg/models/api"
	"github.com/fin-tools/plan-advisor/pkg/render"
	"github.com/fin-tools/plan-advisor/pkg/services/advisor"
	"github.com/fin-tools/plan-advisor/pkg/view"
)

const (
	submitIdleLabel = "Calculate"
	submitBusyLabel = "Calculating…"

	alertInvalidInput = "Please enter a valid amount and time period."
	alertUnavailable  = "Unable to calculate your plan right now. Please try again."
)

// Controller runs one complete submission: read form state, disable the
// submit control, call the calculation service, render or report, restore
// the control. Every path ends back in an interactive idle state.
type Controller struct {
	advisor  advisor.Service
	renderer *render.Renderer
}

func NewController(svc advisor.Service, renderer *render.Renderer) *Controller {
	return &Controller{
		advisor:  svc,
		renderer: renderer,
	}
}

// Submit drives the full lifecycle against the given surface. The submit
// control must be disabled before the request is issued, since the disabled
// control is all that keeps a fast double-click from starting two
// submissions. Restoration is unconditional.
func (c *Controller) Submit(ctx context.Context, surface view.Surface, form api.PlanForm) {
	logger := zerolog.Ctx(ctx)

	surface.SetControlEnabled(view.ElemSubmit, false)
	surface.SetControlLabel(view.ElemSubmit, submitBusyLabel)
	defer func() {
		surface.SetControlLabel(view.ElemSubmit, submitIdleLabel)
		surface.SetControlEnabled(view.ElemSubmit, true)
	}()

	req, err := ReadForm(form)
	if err != nil {
		logger.Warn().Err(err).Msg("rejected form input")
		surface.ShowAlert(alertInvalidInput)
		return
	}

	resp, err := c.advisor.GetAdvice(ctx, req)
	if err != nil {
		c.reportFailure(logger, surface, err)
		return
	}

	if err := c.renderer.Render(surface, resp); err != nil {
		// The renderer already alerted; nothing more to surface.
		logger.Error().Err(err).Msg("rendering rejected advice")
	}
}

// InvestmentTypeChanged projects the visibility rule onto the surface.
func (c *Controller) InvestmentTypeChanged(surface view.Surface, investmentType string) {
	surface.SetFieldVisible(view.ElemMonthlyIncrementWrap, MonthlyIncrementVisible(investmentType))
}

func (c *Controller) reportFailure(logger *zerolog.Logger, surface view.Surface, err error) {
	var malformed *advisor.MalformedResponseError
	if errors.As(err, &malformed) {
		logger.Error().
			Err(err).
			Str("payload", string(malformed.Payload)).
			Msg("calculation response failed validation")
		surface.ShowAlert(render.AlertInvalidData)
		return
	}

	logger.Error().Err(err).Msg("calculation request failed")
	surface.ShowAlert(alertUnavailable)
}
