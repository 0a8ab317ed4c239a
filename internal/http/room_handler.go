package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/school-dashboard/internal/domain"
)

type roomStore interface {
	ClassRooms() []domain.ClassRoom
	ClassRoomByID(id string) (domain.ClassRoom, bool)
	RoomBookings(roomID string) []domain.ClassRoomBooking
	RoomBookingsOn(roomID, date string) []domain.ClassRoomBooking
	RoomBookingsInRange(roomID, from, to string) []domain.ClassRoomBooking
	AddClassRoom(ctx context.Context, draft domain.ClassRoom) domain.ClassRoom
	UpdateClassRoom(ctx context.Context, room domain.ClassRoom)
	DeleteClassRoom(ctx context.Context, roomID string)
}

type RoomHandler struct {
	store     roomStore
	responder responder
	logger    *slog.Logger
}

func NewRoomHandler(store roomStore, logger *slog.Logger) *RoomHandler {
	base := defaultLogger(logger)
	return &RoomHandler{store: store, responder: newResponder(base), logger: base}
}

func (h *RoomHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "RoomHandler", operation, attrs...)
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rooms := h.store.ClassRooms()
	h.log(r.Context(), "List").With("result_count", len(rooms)).InfoContext(r.Context(), "classrooms listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listRoomsResponse{ClassRooms: rooms})
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roomID, ok := RoomIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roomID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoomID)
		return
	}

	room, found := h.store.ClassRoomByID(roomID)
	if !found {
		h.responder.writeError(r.Context(), w, http.StatusNotFound, errNotFound)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, roomResponse{ClassRoom: room})
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var draft domain.ClassRoom
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode classroom request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	room := h.store.AddClassRoom(r.Context(), draft)
	h.log(r.Context(), "Create").With("room_id", room.ID).InfoContext(r.Context(), "classroom created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, roomResponse{ClassRoom: room})
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roomID, ok := RoomIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roomID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoomID)
		return
	}

	var room domain.ClassRoom
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		h.log(r.Context(), "Update", "room_id", roomID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode classroom update", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	room.ID = roomID

	h.store.UpdateClassRoom(r.Context(), room)
	h.log(r.Context(), "Update").With("room_id", roomID).InfoContext(r.Context(), "classroom updated")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roomID, ok := RoomIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roomID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoomID)
		return
	}

	h.store.DeleteClassRoom(r.Context(), roomID)
	h.log(r.Context(), "Delete").With("room_id", roomID).InfoContext(r.Context(), "classroom deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Bookings serves the room's bookings, narrowed by an optional date or
// from/to query pair.
func (h *RoomHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roomID, ok := RoomIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roomID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoomID)
		return
	}

	query := r.URL.Query()
	var bookings []domain.ClassRoomBooking
	switch {
	case query.Get("date") != "":
		bookings = h.store.RoomBookingsOn(roomID, query.Get("date"))
	case query.Get("from") != "" || query.Get("to") != "":
		from, to := query.Get("from"), query.Get("to")
		if from == "" || to == "" || from > to {
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidDateRange)
			return
		}
		bookings = h.store.RoomBookingsInRange(roomID, from, to)
	default:
		bookings = h.store.RoomBookings(roomID)
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, listBookingsResponse{Bookings: bookings})
}

type roomResponse struct {
	ClassRoom domain.ClassRoom `json:"classroom"`
}

type listRoomsResponse struct {
	ClassRooms []domain.ClassRoom `json:"classrooms"`
}
