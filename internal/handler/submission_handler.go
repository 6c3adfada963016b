package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nird-intake/internal/analysis"
	"nird-intake/internal/domain"
	"nird-intake/internal/service"
	"nird-intake/pkg/logger"
)

// SubmissionHandler handles the submission CRUD endpoints
type SubmissionHandler struct {
	service service.SubmissionService
	logger  *logger.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(service service.SubmissionService, logger *logger.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
		logger:  logger,
	}
}

// CreateResponse is the body returned on successful creation
type CreateResponse struct {
	Message  string             `json:"message"`
	ID       string             `json:"id"`
	Data     *domain.Submission `json:"data"`
	Analysis *analysis.Result   `json:"analysis,omitempty"`
}

// UpdateResponse is the body returned on successful update
type UpdateResponse struct {
	Message string             `json:"message"`
	Data    *domain.Submission `json:"data"`
}

// Create handles POST /api/submissions
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if domain.IsValidationError(err) {
			var ve *domain.ValidationError
			errors.As(err, &ve)
			h.sendError(w, http.StatusBadRequest, ve.Message)
			return
		}
		h.logger.WithError(err).Error("Failed to create submission")
		h.sendError(w, http.StatusInternalServerError, "Failed to create submission")
		return
	}

	h.sendJSON(w, http.StatusCreated, CreateResponse{
		Message:  "Submission created successfully",
		ID:       sub.ID.Hex(),
		Data:     sub,
		Analysis: result,
	})
}

// List handles GET /api/submissions
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.List(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch submissions")
		h.sendError(w, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}

	h.sendJSON(w, http.StatusOK, subs)
}

// Get handles GET /api/submissions/{id}
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sub, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			h.sendError(w, http.StatusNotFound, "Submission not found")
			return
		}
		h.logger.WithError(err).Error("Failed to fetch submission")
		h.sendError(w, http.StatusInternalServerError, "Failed to fetch submission")
		return
	}

	h.sendJSON(w, http.StatusOK, sub)
}

// Update handles PUT /api/submissions/{id}
func (h *SubmissionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSubmissionNotFound):
			h.sendError(w, http.StatusNotFound, "Submission not found")
		case domain.IsValidationError(err):
			var ve *domain.ValidationError
			errors.As(err, &ve)
			h.sendError(w, http.StatusBadRequest, ve.Message)
		default:
			h.logger.WithError(err).Error("Failed to update submission")
			h.sendError(w, http.StatusInternalServerError, "Failed to update submission")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, UpdateResponse{
		Message: "Submission updated successfully",
		Data:    sub,
	})
}

// Delete handles DELETE /api/submissions/{id}
func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			h.sendError(w, http.StatusNotFound, "Submission not found")
			return
		}
		h.logger.WithError(err).Error("Failed to delete submission")
		h.sendError(w, http.StatusInternalServerError, "Failed to delete submission")
		return
	}

	h.sendJSON(w, http.StatusOK, map[string]string{
		"message": "Submission deleted successfully",
	})
}

// Missions handles GET /api/missions
func (h *SubmissionHandler) Missions(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, http.StatusOK, h.service.Missions())
}

// RegisterRoutes registers the submission routes with the router
func (h *SubmissionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/submissions", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	r.Get("/missions", h.Missions)
}

// sendJSON writes a JSON response with the given status code
func (h *SubmissionHandler) sendJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithError(err).Error("Failed to encode response")
	}
}

// sendError writes the error body shared by all failure responses
func (h *SubmissionHandler) sendError(w http.ResponseWriter, statusCode int, message string) {
	h.sendJSON(w, statusCode, map[string]string{"error": message})
}
