package handler

import (
	"encoding/json"
	"net/http"

	"sparse-calc/internal/model"
	"sparse-calc/internal/service"

	"github.com/rs/zerolog"
)

// ComputeHandler handles computation HTTP requests.
type ComputeHandler struct {
	service service.ComputeService
	logger  zerolog.Logger
}

// NewComputeHandler creates a new compute handler.
func NewComputeHandler(service service.ComputeService, logger zerolog.Logger) *ComputeHandler {
	return &ComputeHandler{
		service: service,
		logger:  logger.With().Str("handler", "compute").Logger(),
	}
}

// Compute handles POST /api/compute requests. The body carries the
// operation name and both operand matrices in the sparse text format.
func (h *ComputeHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req model.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid JSON request body", h.logger)
		return
	}

	resp, err := h.service.Compute(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ComputeFiles handles POST /api/compute/files requests. The body
// names stored matrix sources instead of carrying the matrices inline.
func (h *ComputeHandler) ComputeFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req model.ComputeFilesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid JSON request body", h.logger)
		return
	}

	resp, err := h.service.ComputeFromSource(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
