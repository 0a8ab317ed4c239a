package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/school-dashboard/internal/domain"
	"github.com/example/school-dashboard/internal/timetable"
)

type groupStore interface {
	Groups() []domain.Group
	GroupByID(id string) (domain.Group, bool)
	GroupStudents(groupID string) []domain.Student
	GroupAttendance(groupID string) []domain.Attendance
	GroupPayments(groupID string) []domain.Payment
	AddGroup(ctx context.Context, draft domain.Group) domain.Group
	UpdateGroup(ctx context.Context, group domain.Group)
	DeleteGroup(ctx context.Context, groupID string)
	GeneratePaymentPeriods(ctx context.Context, groupID string) int
}

type GroupHandler struct {
	store     groupStore
	responder responder
	logger    *slog.Logger
	now       func() time.Time
}

func NewGroupHandler(store groupStore, now func() time.Time, logger *slog.Logger) *GroupHandler {
	base := defaultLogger(logger)
	if now == nil {
		now = time.Now
	}
	return &GroupHandler{store: store, responder: newResponder(base), logger: base, now: now}
}

func (h *GroupHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "GroupHandler", operation, attrs...)
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	groups := h.store.Groups()
	h.log(r.Context(), "List").With("result_count", len(groups)).InfoContext(r.Context(), "groups listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listGroupsResponse{Groups: groups})
}

func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	groupID, ok := GroupIDFromContext(r.Context())
	if !ok || strings.TrimSpace(groupID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidGroupID)
		return
	}

	group, found := h.store.GroupByID(groupID)
	if !found {
		h.responder.writeError(r.Context(), w, http.StatusNotFound, errNotFound)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, groupResponse{Group: group})
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var draft domain.Group
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode group request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	group := h.store.AddGroup(r.Context(), draft)
	h.log(r.Context(), "Create").With("group_id", group.ID).InfoContext(r.Context(), "group created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, groupResponse{Group: group})
}

func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	groupID, ok := GroupIDFromContext(r.Context())
	if !ok || strings.TrimSpace(groupID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidGroupID)
		return
	}

	var group domain.Group
	if err := json.NewDecoder(r.Body).Decode(&group); err != nil {
		h.log(r.Context(), "Update", "group_id", groupID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode group update", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	group.ID = groupID

	h.store.UpdateGroup(r.Context(), group)
	h.log(r.Context(), "Update").With("group_id", groupID).InfoContext(r.Context(), "group updated")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	groupID, ok := GroupIDFromContext(r.Context())
	if !ok || strings.TrimSpace(groupID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidGroupID)
		return
	}

	h.store.DeleteGroup(r.Context(), groupID)
	h.log(r.Context(), "Delete").With("group_id", groupID).InfoContext(r.Context(), "group deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Students serves the group's current roster.
func (h *GroupHandler) Students(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	groupID, ok := GroupIDFromContext(r.Context())
	if !ok || strings.TrimSpace(groupID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidGroupID)
		return
	}

	students := h.store.GroupStudents(groupID)
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listStudentsResponse{Students: students})
}

// Attendance serves the group's recorded attendance.
func (h *GroupHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	groupID, ok := GroupIDFromContext(r.Context())
	if !ok || strings.TrimSpace(groupID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidGroupID)
		return
	}

	records := h.store.GroupAttendance(groupID)
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listAttendanceResponse{Attendance: records})
}

// Payments serves the payments of the group's currently enrolled students.
func (h *GroupHandler) Payments(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	groupID, ok := GroupIDFromContext(r.Context())
	if !ok || strings.TrimSpace(groupID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidGroupID)
		return
	}

	payments := h.store.GroupPayments(groupID)
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listPaymentsResponse{Payments: payments})
}

// GeneratePayments synthesizes the missing billing periods for the group.
func (h *GroupHandler) GeneratePayments(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	groupID, ok := GroupIDFromContext(r.Context())
	if !ok || strings.TrimSpace(groupID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidGroupID)
		return
	}
	if _, found := h.store.GroupByID(groupID); !found {
		h.responder.writeError(r.Context(), w, http.StatusNotFound, errNotFound)
		return
	}

	created := h.store.GeneratePaymentPeriods(r.Context(), groupID)
	h.log(r.Context(), "GeneratePayments").With("group_id", groupID, "created_count", created).InfoContext(r.Context(), "payment periods generated")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, generatePaymentsResponse{Created: created})
}

// Timetable expands the group's weekly schedule for a date range. Without
// query parameters the range defaults to the current week.
func (h *GroupHandler) Timetable(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	groupID, ok := GroupIDFromContext(r.Context())
	if !ok || strings.TrimSpace(groupID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidGroupID)
		return
	}

	group, found := h.store.GroupByID(groupID)
	if !found {
		h.responder.writeError(r.Context(), w, http.StatusNotFound, errNotFound)
		return
	}

	from, to, err := parseDateRange(r, h.now())
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidDateRange)
		return
	}

	occurrences := timetable.Expand(group, from, to)
	h.responder.writeJSON(r.Context(), w, http.StatusOK, timetableResponse{Occurrences: toOccurrenceDTOs(occurrences)})
}

// parseDateRange reads optional from/to yyyy-mm-dd query parameters,
// defaulting both to the week containing now.
func parseDateRange(r *http.Request, now time.Time) (time.Time, time.Time, error) {
	monday, sunday := timetable.WeekOf(now)
	from, to := monday, sunday

	if value := strings.TrimSpace(r.URL.Query().Get("from")); value != "" {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if value := strings.TrimSpace(r.URL.Query().Get("to")); value != "" {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}

type groupResponse struct {
	Group domain.Group `json:"group"`
}

type listGroupsResponse struct {
	Groups []domain.Group `json:"groups"`
}

type generatePaymentsResponse struct {
	Created int `json:"created"`
}

type timetableResponse struct {
	Occurrences []occurrenceDTO `json:"occurrences"`
}

type occurrenceDTO struct {
	GroupID   string `json:"groupId"`
	SessionID string `json:"sessionId"`
	RoomID    string `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func toOccurrenceDTOs(occurrences []timetable.Occurrence) []occurrenceDTO {
	out := make([]occurrenceDTO, 0, len(occurrences))
	for _, occurrence := range occurrences {
		out = append(out, occurrenceDTO{
			GroupID:   occurrence.GroupID,
			SessionID: occurrence.SessionID,
			RoomID:    occurrence.RoomID,
			Date:      occurrence.Date,
			StartTime: occurrence.StartTime,
			EndTime:   occurrence.EndTime,
		})
	}
	return out
}
