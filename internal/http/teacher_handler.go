package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/school-dashboard/internal/domain"
)

type teacherStore interface {
	Teachers() []domain.Teacher
	TeacherByID(id string) (domain.Teacher, bool)
	TeacherGroups(teacherID string) []domain.Group
	AddTeacher(ctx context.Context, draft domain.Teacher) domain.Teacher
	UpdateTeacher(ctx context.Context, teacher domain.Teacher)
	DeleteTeacher(ctx context.Context, teacherID string)
}

type TeacherHandler struct {
	store     teacherStore
	responder responder
	logger    *slog.Logger
}

func NewTeacherHandler(store teacherStore, logger *slog.Logger) *TeacherHandler {
	base := defaultLogger(logger)
	return &TeacherHandler{store: store, responder: newResponder(base), logger: base}
}

func (h *TeacherHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "TeacherHandler", operation, attrs...)
}

func (h *TeacherHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	teachers := h.store.Teachers()
	h.log(r.Context(), "List").With("result_count", len(teachers)).InfoContext(r.Context(), "teachers listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listTeachersResponse{Teachers: teachers})
}

func (h *TeacherHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	teacherID, ok := TeacherIDFromContext(r.Context())
	if !ok || strings.TrimSpace(teacherID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTeacherID)
		return
	}

	teacher, found := h.store.TeacherByID(teacherID)
	if !found {
		h.responder.writeError(r.Context(), w, http.StatusNotFound, errNotFound)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, teacherResponse{Teacher: teacher})
}

func (h *TeacherHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var draft domain.Teacher
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode teacher request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	teacher := h.store.AddTeacher(r.Context(), draft)
	h.log(r.Context(), "Create").With("teacher_id", teacher.ID).InfoContext(r.Context(), "teacher created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, teacherResponse{Teacher: teacher})
}

func (h *TeacherHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	teacherID, ok := TeacherIDFromContext(r.Context())
	if !ok || strings.TrimSpace(teacherID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTeacherID)
		return
	}

	var teacher domain.Teacher
	if err := json.NewDecoder(r.Body).Decode(&teacher); err != nil {
		h.log(r.Context(), "Update", "teacher_id", teacherID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode teacher update", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	teacher.ID = teacherID

	h.store.UpdateTeacher(r.Context(), teacher)
	h.log(r.Context(), "Update").With("teacher_id", teacherID).InfoContext(r.Context(), "teacher updated")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *TeacherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	teacherID, ok := TeacherIDFromContext(r.Context())
	if !ok || strings.TrimSpace(teacherID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTeacherID)
		return
	}

	h.store.DeleteTeacher(r.Context(), teacherID)
	h.log(r.Context(), "Delete").With("teacher_id", teacherID).InfoContext(r.Context(), "teacher deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Groups serves the groups currently assigned to the teacher.
func (h *TeacherHandler) Groups(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	teacherID, ok := TeacherIDFromContext(r.Context())
	if !ok || strings.TrimSpace(teacherID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTeacherID)
		return
	}

	groups := h.store.TeacherGroups(teacherID)
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listGroupsResponse{Groups: groups})
}

type teacherResponse struct {
	Teacher domain.Teacher `json:"teacher"`
}

type listTeachersResponse struct {
	Teachers []domain.Teacher `json:"teachers"`
}
