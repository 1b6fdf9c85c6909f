package httpadapter

import (
	"net/http"
	"strings"

	"mediaplan/internal/core/port"
)

// handleProposal returns the market overview for the industry and country
// query parameters. Missing data never fails the request; it shows up as
// null fields and absent charts.
func (h *Handler) handleProposal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := port.ProposalReq{
		Industry: strings.TrimSpace(q.Get("industry")),
		Country:  strings.TrimSpace(q.Get("country")),
	}
	if req.Industry == "" || req.Country == "" {
		writeError(w, http.StatusBadRequest, "industry and country are required")
		return
	}
	resp, err := h.svc.Proposal(r.Context(), req)
	if err != nil {
		h.fail(w, r, "proposal", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
