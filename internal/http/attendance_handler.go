package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/school-dashboard/internal/domain"
)

type attendanceStore interface {
	Attendance() []domain.Attendance
	RecordAttendance(ctx context.Context, record domain.Attendance) domain.Attendance
}

type AttendanceHandler struct {
	store     attendanceStore
	responder responder
	logger    *slog.Logger
}

func NewAttendanceHandler(store attendanceStore, logger *slog.Logger) *AttendanceHandler {
	base := defaultLogger(logger)
	return &AttendanceHandler{store: store, responder: newResponder(base), logger: base}
}

func (h *AttendanceHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "AttendanceHandler", operation, attrs...)
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	records := h.store.Attendance()
	h.log(r.Context(), "List").With("result_count", len(records)).InfoContext(r.Context(), "attendance listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listAttendanceResponse{Attendance: records})
}

// Record upserts the attendance for a (group, date) session and echoes the
// stored record, including its derived session label.
func (h *AttendanceHandler) Record(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var record domain.Attendance
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.log(r.Context(), "Record", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode attendance request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if strings.TrimSpace(record.GroupID) == "" || strings.TrimSpace(record.Date) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	stored := h.store.RecordAttendance(r.Context(), record)
	h.log(r.Context(), "Record").With("group_id", stored.GroupID, "date", stored.Date).InfoContext(r.Context(), "attendance recorded")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, attendanceResponse{Attendance: stored})
}

type attendanceResponse struct {
	Attendance domain.Attendance `json:"attendance"`
}

type listAttendanceResponse struct {
	Attendance []domain.Attendance `json:"attendance"`
}
