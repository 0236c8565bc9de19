package plan

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/fin-tools/plan-advisor/pkg/models/api"
	"github.com/fin-tools/plan-advisor/pkg/services/planner"
	"github.com/fin-tools/plan-advisor/pkg/view"
)

// Handler exposes the submission lifecycle to the page. Each request gets a
// fresh patch recorder; the response body is the ordered mutation list the
// page script applies.
type Handler struct {
	controller *planner.Controller
}

func NewHandler(controller *planner.Controller) *Handler {
	return &Handler{controller: controller}
}

type patchResponse struct {
	Patches []view.Patch `json:"patches"`
}

// Submit runs one submission cycle for the posted form values.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var form api.PlanForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.Warn().Err(err).Msg("unreadable plan form")
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	recorder := view.NewPatchRecorder()
	h.controller.Submit(ctx, recorder, form)

	writePatches(w, logger, recorder)
}

// FieldVisibility answers an investment-type change with the visibility
// patch for the monthly increment field.
func (h *Handler) FieldVisibility(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	investmentType := r.URL.Query().Get("investment_type")

	recorder := view.NewPatchRecorder()
	h.controller.InvestmentTypeChanged(recorder, investmentType)

	writePatches(w, logger, recorder)
}

func writePatches(w http.ResponseWriter, logger *zerolog.Logger, recorder *view.PatchRecorder) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(patchResponse{Patches: recorder.Patches()}); err != nil {
		logger.Error().Err(err).Msg("failed to encode patches")
	}
}
