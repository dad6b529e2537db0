package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nchindhamani/portfolio-api/internal/model"
	"github.com/nchindhamani/portfolio-api/internal/repository"
	"github.com/nchindhamani/portfolio-api/internal/service"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	createFunc       func(ctx context.Context, in model.ContactSubmission) (*model.ContactMessage, error)
	listFunc         func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	getByIDFunc      func(ctx context.Context, id string) (*model.ContactMessage, error)
	updateStatusFunc func(ctx context.Context, id string, status model.MessageStatus) error
}

func (m *mockContactService) Create(ctx context.Context, in model.ContactSubmission) (*model.ContactMessage, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.ContactMessage{ID: "generated-id"}, nil
}

func (m *mockContactService) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockContactService) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) UpdateStatus(ctx context.Context, id string, status model.MessageStatus) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured model.ContactSubmission
	mock := &mockContactService{
		createFunc: func(ctx context.Context, in model.ContactSubmission) (*model.ContactMessage, error) {
			captured = in
			return &model.ContactMessage{ID: "msg-1", Status: model.StatusUnread}, nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","subject":"Hello there","message":"I would like to talk."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Email != "alice@example.com" || captured.Subject != "Hello there" {
		t.Errorf("unexpected submission %+v", captured)
	}
	var resp submitResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.ContactID != "msg-1" {
		t.Errorf("unexpected body %+v", resp)
	}
	if resp.Message != "Thank you for your message! I'll get back to you soon." {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	called := false
	h := NewContactHandler(&mockContactService{
		createFunc: func(ctx context.Context, in model.ContactSubmission) (*model.ContactMessage, error) {
			called = true
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp["error"] != "validation_failed" {
		t.Errorf("expected error=validation_failed, got %v", resp["error"])
	}
	if called {
		t.Error("service should not be called for malformed JSON")
	}
}

func TestContactHandler_Submit_ValidationError(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		createFunc: func(ctx context.Context, in model.ContactSubmission) (*model.ContactMessage, error) {
			return nil, &service.ValidationError{Fields: []service.FieldError{
				{Field: "email", Reason: "must be a valid email address"},
			}}
		},
	})

	body := `{"name":"Alice","email":"not-an-email","subject":"Hello there","message":"I would like to talk."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp struct {
		Error  string               `json:"error"`
		Detail []service.FieldError `json:"detail"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "validation_failed" {
		t.Errorf("expected error=validation_failed, got %q", resp.Error)
	}
	if len(resp.Detail) != 1 || resp.Detail[0].Field != "email" {
		t.Errorf("unexpected detail %+v", resp.Detail)
	}
}

func TestContactHandler_Submit_ServiceError(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		createFunc: func(ctx context.Context, in model.ContactSubmission) (*model.ContactMessage, error) {
			return nil, errors.New("db down")
		},
	})

	body := `{"name":"Alice","email":"alice@example.com","subject":"Hello there","message":"I would like to talk."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp["error"] != "submit_failed" {
		t.Errorf("expected error=submit_failed, got %v", resp["error"])
	}
	if resp["detail"] != "Failed to send message. Please try again later." {
		t.Errorf("unexpected detail %v", resp["detail"])
	}
}

// ---------------------------------------------------------------------------
// GET /api/contact/messages tests
// ---------------------------------------------------------------------------

func TestContactHandler_List_PassesOptions(t *testing.T) {
	var got model.ContactListOptions
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	h := NewContactHandler(&mockContactService{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
			got = opts
			return []*model.ContactMessage{{ID: "a", CreatedAt: created, Status: model.StatusRead}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages?limit=10&skip=5", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Limit != 10 || got.Skip != 5 {
		t.Errorf("expected limit=10 skip=5, got %+v", got)
	}
	var msgs []model.ContactMessage
	if err := json.NewDecoder(rec.Body).Decode(&msgs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != "a" || !msgs[0].CreatedAt.Equal(created) {
		t.Errorf("unexpected messages %+v", msgs)
	}
}

func TestContactHandler_List_DefaultsLeftToService(t *testing.T) {
	var got model.ContactListOptions
	h := NewContactHandler(&mockContactService{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
			got = opts
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if got.Limit != 0 || got.Skip != 0 {
		t.Errorf("expected zero options, got %+v", got)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected [], got %s", body)
	}
}

func TestContactHandler_List_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non-integer limit", "limit=abc"},
		{"zero limit", "limit=0"},
		{"negative limit", "limit=-1"},
		{"negative skip", "skip=-1"},
		{"non-integer skip", "skip=1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := NewContactHandler(&mockContactService{
				listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
					called = true
					return nil, nil
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/contact/messages?"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.List(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected 422, got %d", rec.Code)
			}
			if called {
				t.Error("service should not be called for invalid params")
			}
		})
	}
}

func TestContactHandler_List_ServiceError(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
			return nil, errors.New("db down")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/contact/messages/{id} tests
// ---------------------------------------------------------------------------

func TestContactHandler_Get(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		getByIDFunc: func(ctx context.Context, id string) (*model.ContactMessage, error) {
			return &model.ContactMessage{ID: id, Name: "Alice", Status: model.StatusUnread}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages/abc", nil)
	rec := serve("GET /api/contact/messages/{id}", h.Get, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var msg model.ContactMessage
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.ID != "abc" || msg.Name != "Alice" {
		t.Errorf("unexpected message %+v", msg)
	}
}

func TestContactHandler_Get_NotFound(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages/missing", nil)
	rec := serve("GET /api/contact/messages/{id}", h.Get, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp["detail"] != "Message not found" {
		t.Errorf("unexpected detail %v", resp["detail"])
	}
}

// ---------------------------------------------------------------------------
// PATCH /api/contact/messages/{id}/status tests
// ---------------------------------------------------------------------------

func TestContactHandler_UpdateStatus(t *testing.T) {
	var gotID string
	var gotStatus model.MessageStatus
	h := NewContactHandler(&mockContactService{
		updateStatusFunc: func(ctx context.Context, id string, status model.MessageStatus) error {
			gotID, gotStatus = id, status
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/messages/abc/status?status=read", nil)
	rec := serve("PATCH /api/contact/messages/{id}/status", h.UpdateStatus, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "abc" || gotStatus != model.StatusRead {
		t.Errorf("unexpected call id=%q status=%q", gotID, gotStatus)
	}
	var resp statusResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Message != "Status updated to read" {
		t.Errorf("unexpected body %+v", resp)
	}
}

func TestContactHandler_UpdateStatus_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"invalid status", service.ErrInvalidStatus, http.StatusBadRequest, "invalid_status"},
		{"not found", repository.ErrNotFound, http.StatusNotFound, "not_found"},
		{"db error", errors.New("db down"), http.StatusInternalServerError, "update_failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewContactHandler(&mockContactService{
				updateStatusFunc: func(ctx context.Context, id string, status model.MessageStatus) error {
					return tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPatch, "/api/contact/messages/abc/status?status=archived", nil)
			rec := serve("PATCH /api/contact/messages/{id}/status", h.UpdateStatus, req)

			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if resp := decodeError(t, rec); resp["error"] != tt.wantErr {
				t.Errorf("expected error=%s, got %v", tt.wantErr, resp["error"])
			}
		})
	}
}

func TestContactHandler_UpdateStatus_InvalidListsAllowed(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		updateStatusFunc: func(ctx context.Context, id string, status model.MessageStatus) error {
			return service.ErrInvalidStatus
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/messages/abc/status?status=archived", nil)
	rec := serve("PATCH /api/contact/messages/{id}/status", h.UpdateStatus, req)

	resp := decodeError(t, rec)
	if resp["detail"] != "Invalid status. Must be one of: unread, read, replied" {
		t.Errorf("unexpected detail %v", resp["detail"])
	}
}
