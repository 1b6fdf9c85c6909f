package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mediaplan/internal/core/domain"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// fail maps a use case error onto a status. Invalid input and unknown
// industries echo their message; anything else is logged and hidden.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnknownIndustry):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnresolvedLookup):
		h.logger.Warn(op+" upstream error", slog.Any("error", err), slog.String("rid", RequestIDFrom(r.Context())))
		writeError(w, http.StatusBadGateway, "upstream source unavailable")
	default:
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("rid", RequestIDFrom(r.Context())))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decode reads a JSON body of at most 1MB into v.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}
