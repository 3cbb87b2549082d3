package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"sparse-calc/internal/matrix"
	"sparse-calc/internal/middleware"
	"sparse-calc/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and
// message, tagged with the request's correlation ID.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.GetCorrelationID(r.Context())
	logger.Error().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeDomainError maps a service error onto an HTTP status and error
// code, keeping the error's own message as the response body.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		if domainErr.Code == model.ErrCodeNotFound {
			status = http.StatusNotFound
		}
		writeError(w, r, status, domainErr.Code, domainErr.Message, logger)
		return
	}

	switch {
	case errors.Is(err, matrix.ErrMalformedHeader):
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMalformedHeader, err.Error(), logger)
	case errors.Is(err, matrix.ErrMalformedEntry):
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMalformedEntry, err.Error(), logger)
	case errors.Is(err, matrix.ErrInvalidIndex):
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidIndex, err.Error(), logger)
	case errors.Is(err, matrix.ErrInvalidOperation):
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidOperation, err.Error(), logger)
	case errors.Is(err, matrix.ErrDimensionMismatch):
		writeError(w, r, http.StatusUnprocessableEntity, model.ErrCodeDimensionMismatch, err.Error(), logger)
	case errors.Is(err, matrix.ErrSourceNotFound):
		writeError(w, r, http.StatusNotFound, model.ErrCodeSourceNotFound, err.Error(), logger)
	case errors.Is(err, matrix.ErrWriteFailure):
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeWriteFailure, err.Error(), logger)
	default:
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
	}
}
