package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/school-dashboard/internal/domain"
)

type preferencesStore interface {
	SelectedTeacherID() string
	ViewMode() domain.ViewMode
	SetSelectedTeacherID(ctx context.Context, teacherID string)
	SetViewMode(ctx context.Context, mode domain.ViewMode)
}

type PreferencesHandler struct {
	store     preferencesStore
	responder responder
	logger    *slog.Logger
}

func NewPreferencesHandler(store preferencesStore, logger *slog.Logger) *PreferencesHandler {
	base := defaultLogger(logger)
	return &PreferencesHandler{store: store, responder: newResponder(base), logger: base}
}

func (h *PreferencesHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "PreferencesHandler", operation, attrs...)
}

func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, preferencesResponse{
		SelectedTeacherID: h.store.SelectedTeacherID(),
		ViewMode:          h.store.ViewMode(),
	})
}

// Update applies the preferences present in the request body; omitted
// fields keep their current value.
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req updatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Update", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode preferences request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	if req.SelectedTeacherID != nil {
		h.store.SetSelectedTeacherID(r.Context(), *req.SelectedTeacherID)
	}
	if req.ViewMode != nil {
		h.store.SetViewMode(r.Context(), *req.ViewMode)
	}

	h.log(r.Context(), "Update").InfoContext(r.Context(), "preferences updated")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, preferencesResponse{
		SelectedTeacherID: h.store.SelectedTeacherID(),
		ViewMode:          h.store.ViewMode(),
	})
}

type updatePreferencesRequest struct {
	SelectedTeacherID *string          `json:"selectedTeacherId"`
	ViewMode          *domain.ViewMode `json:"viewMode"`
}

type preferencesResponse struct {
	SelectedTeacherID string          `json:"selectedTeacherId"`
	ViewMode          domain.ViewMode `json:"viewMode"`
}
