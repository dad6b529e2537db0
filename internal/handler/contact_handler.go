package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/nchindhamani/portfolio-api/internal/model"
	"github.com/nchindhamani/portfolio-api/internal/repository"
	"github.com/nchindhamani/portfolio-api/internal/service"
)

// ContactHandler handles contact form submission and message moderation.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type submitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contact_id"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", []service.FieldError{
			{Field: "body", Reason: "must be a valid JSON object"},
		})
		return
	}

	msg, err := h.contactService.Create(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusUnprocessableEntity, "validation_failed", verr.Fields)
			return
		}
		slog.ErrorContext(r.Context(), "submit contact message", "error", err)
		writeError(w, http.StatusInternalServerError, "submit_failed", "Failed to send message. Please try again later.")
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success:   true,
		Message:   "Thank you for your message! I'll get back to you soon.",
		ContactID: msg.ID,
	})
}

// List handles GET /api/contact/messages.
// Query params: limit (>= 1, clamped to 100, default 50), skip (>= 0).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	var opts model.ContactListOptions
	var fields []service.FieldError

	q := r.URL.Query()
	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			fields = append(fields, service.FieldError{Field: "limit", Reason: "must be an integer greater than or equal to 1"})
		}
		opts.Limit = n
	}
	if s := q.Get("skip"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			fields = append(fields, service.FieldError{Field: "skip", Reason: "must be an integer greater than or equal to 0"})
		}
		opts.Skip = n
	}
	if len(fields) > 0 {
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", fields)
		return
	}

	messages, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		slog.ErrorContext(r.Context(), "list contact messages", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed", "Failed to retrieve messages")
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	writeJSON(w, http.StatusOK, messages)
}

// Get handles GET /api/contact/messages/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	msg, err := h.contactService.GetByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "Message not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "get contact message", "error", err)
		writeError(w, http.StatusInternalServerError, "get_failed", "Failed to retrieve message")
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

// UpdateStatus handles PATCH /api/contact/messages/{id}/status?status=.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	status := model.MessageStatus(r.URL.Query().Get("status"))
	err := h.contactService.UpdateStatus(r.Context(), r.PathValue("id"), status)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status", "Invalid status. Must be one of: "+allowedStatuses())
		return
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Message not found")
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "update contact message status", "error", err)
		writeError(w, http.StatusInternalServerError, "update_failed", "Failed to update message status")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Success: true,
		Message: fmt.Sprintf("Status updated to %s", status),
	})
}

func allowedStatuses() string {
	names := make([]string, len(model.MessageStatuses))
	for i, s := range model.MessageStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
