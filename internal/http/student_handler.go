package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/school-dashboard/internal/domain"
)

type studentStore interface {
	Students() []domain.Student
	StudentByID(id string) (domain.Student, bool)
	StudentPayments(studentID string) []domain.Payment
	AddStudent(ctx context.Context, draft domain.Student) domain.Student
	UpdateStudent(ctx context.Context, student domain.Student)
	RemoveStudent(ctx context.Context, studentID string)
}

type StudentHandler struct {
	store     studentStore
	responder responder
	logger    *slog.Logger
}

func NewStudentHandler(store studentStore, logger *slog.Logger) *StudentHandler {
	base := defaultLogger(logger)
	return &StudentHandler{store: store, responder: newResponder(base), logger: base}
}

func (h *StudentHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "StudentHandler", operation, attrs...)
}

func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	students := h.store.Students()
	h.log(r.Context(), "List").With("result_count", len(students)).InfoContext(r.Context(), "students listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listStudentsResponse{Students: students})
}

func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	studentID, ok := StudentIDFromContext(r.Context())
	if !ok || strings.TrimSpace(studentID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidStudentID)
		return
	}

	student, found := h.store.StudentByID(studentID)
	if !found {
		h.responder.writeError(r.Context(), w, http.StatusNotFound, errNotFound)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, studentResponse{Student: student})
}

func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var draft domain.Student
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode student request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	student := h.store.AddStudent(r.Context(), draft)
	h.log(r.Context(), "Create").With("student_id", student.ID).InfoContext(r.Context(), "student created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, studentResponse{Student: student})
}

func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	studentID, ok := StudentIDFromContext(r.Context())
	if !ok || strings.TrimSpace(studentID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidStudentID)
		return
	}

	var student domain.Student
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		h.log(r.Context(), "Update", "student_id", studentID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode student update", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	student.ID = studentID

	h.store.UpdateStudent(r.Context(), student)
	h.log(r.Context(), "Update").With("student_id", studentID).InfoContext(r.Context(), "student updated")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	studentID, ok := StudentIDFromContext(r.Context())
	if !ok || strings.TrimSpace(studentID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidStudentID)
		return
	}

	h.store.RemoveStudent(r.Context(), studentID)
	h.log(r.Context(), "Delete").With("student_id", studentID).InfoContext(r.Context(), "student removed")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Payments serves the student's billing history.
func (h *StudentHandler) Payments(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	studentID, ok := StudentIDFromContext(r.Context())
	if !ok || strings.TrimSpace(studentID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidStudentID)
		return
	}

	payments := h.store.StudentPayments(studentID)
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listPaymentsResponse{Payments: payments})
}

type studentResponse struct {
	Student domain.Student `json:"student"`
}

type listStudentsResponse struct {
	Students []domain.Student `json:"students"`
}
