package dashboard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sartorproj/gosunspot/transform"
)

// StatusCode maps a panel error to an HTTP status.
func StatusCode(err error) int {
	var (
		validationErr *ValidationError
		divisionErr   *transform.DivisionError
		chartErr      *ChartError
	)
	switch {
	case errors.As(err, &validationErr), errors.Is(err, transform.ErrInvalidCycleLength):
		return http.StatusBadRequest
	case errors.As(err, &divisionErr), errors.As(err, &chartErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "path", r.URL.Path, "method", r.Method, "status", status, "error", err)
	} else {
		logger.Debug("request rejected", "path", r.URL.Path, "method", r.Method, "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Status: status})
}
