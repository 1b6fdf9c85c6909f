package httpadapter

import (
	"net/http"

	"mediaplan/internal/core/port"
)

// handleMediaPlan decodes {industry, country, budget} and returns the plan.
// Invalid figures give 400 and an industry without benchmarks gives 404.
func (h *Handler) handleMediaPlan(w http.ResponseWriter, r *http.Request) {
	var req port.MediaPlanReq
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.svc.MediaPlan(r.Context(), req)
	if err != nil {
		h.fail(w, r, "media plan", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
