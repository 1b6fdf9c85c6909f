package httpadapter

import (
	"net/http"

	"mediaplan/internal/core/port"
)

func (h *Handler) handleContent(w http.ResponseWriter, r *http.Request) {
	var req port.ContentReq
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Content(r.Context(), req)
	if err != nil {
		h.fail(w, r, "content", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type renderReq struct {
	Summary string `json:"summary"`
	Country string `json:"country"`
}

func (h *Handler) handleRenderContent(w http.ResponseWriter, r *http.Request) {
	var req renderReq
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.svc.RenderContent(r.Context(), req.Summary, req.Country)
	if err != nil {
		h.fail(w, r, "render content", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
