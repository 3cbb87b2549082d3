package handler

import (
	"net/http"
	"strconv"

	"sparse-calc/internal/model"
	"sparse-calc/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ComputationHandler handles computation-history HTTP requests.
type ComputationHandler struct {
	service service.ComputeService
	logger  zerolog.Logger
}

// NewComputationHandler creates a new computation-history handler.
func NewComputationHandler(service service.ComputeService, logger zerolog.Logger) *ComputationHandler {
	return &ComputationHandler{
		service: service,
		logger:  logger.With().Str("handler", "computation").Logger(),
	}
}

// List handles GET /api/computations requests with pagination.
func (h *ComputationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid limit parameter", h.logger)
			return
		}
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid offset parameter", h.logger)
			return
		}
	}

	computations, err := h.service.ListComputations(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve computations", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, computations)
}

// GetByID handles GET /api/computations/{id} requests.
func (h *ComputationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	const prefix = "/api/computations/"
	if len(r.URL.Path) <= len(prefix) {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "computation ID is required", h.logger)
		return
	}

	idStr := r.URL.Path[len(prefix):]
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid computation ID", h.logger)
		return
	}

	computation, err := h.service.GetComputation(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, computation)
}
