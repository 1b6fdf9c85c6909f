package httpadapter

import "net/http"

func (h *Handler) handleIndustries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"industries": h.svc.Industries(r.Context())})
}

func (h *Handler) handleCountries(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Countries(r.Context())
	if err != nil {
		h.fail(w, r, "countries", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"countries": names})
}
