package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/school-dashboard/internal/domain"
	"github.com/example/school-dashboard/internal/timetable"
)

type bookingStore interface {
	Bookings() []domain.ClassRoomBooking
	BookingByID(id string) (domain.ClassRoomBooking, bool)
	BookingsInRange(from, to string) []domain.ClassRoomBooking
	TimeSlotBookings(date, startTime string) []domain.ClassRoomBooking
	AddBooking(ctx context.Context, draft domain.ClassRoomBooking) domain.ClassRoomBooking
	UpdateBooking(ctx context.Context, booking domain.ClassRoomBooking)
	DeleteBooking(ctx context.Context, bookingID string)
}

type BookingHandler struct {
	store     bookingStore
	responder responder
	logger    *slog.Logger
}

func NewBookingHandler(store bookingStore, logger *slog.Logger) *BookingHandler {
	base := defaultLogger(logger)
	return &BookingHandler{store: store, responder: newResponder(base), logger: base}
}

func (h *BookingHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "BookingHandler", operation, attrs...)
}

// List serves the booking collection, narrowed by an optional from/to
// query pair of yyyy-mm-dd dates.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	var bookings []domain.ClassRoomBooking
	switch {
	case query.Get("date") != "" && query.Get("start") != "":
		bookings = h.store.TimeSlotBookings(query.Get("date"), query.Get("start"))
	case query.Get("from") != "" || query.Get("to") != "":
		from, to := query.Get("from"), query.Get("to")
		if from == "" || to == "" || from > to {
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidDateRange)
			return
		}
		bookings = h.store.BookingsInRange(from, to)
	default:
		bookings = h.store.Bookings()
	}

	h.log(r.Context(), "List").With("result_count", len(bookings)).InfoContext(r.Context(), "bookings listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listBookingsResponse{Bookings: bookings})
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bookingID, ok := BookingIDFromContext(r.Context())
	if !ok || strings.TrimSpace(bookingID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidBookingID)
		return
	}

	booking, found := h.store.BookingByID(bookingID)
	if !found {
		h.responder.writeError(r.Context(), w, http.StatusNotFound, errNotFound)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, bookingResponse{Booking: booking})
}

// Create stores the booking unconditionally and reports room conflicts as
// warnings alongside the created record. A double-booked room never blocks
// the booking.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var draft domain.ClassRoomBooking
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode booking request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create")
	conflicts := timetable.DetectRoomConflicts(h.store.Bookings(), draft)
	for _, conflict := range conflicts {
		logger.WarnContext(r.Context(), "room double-booked",
			"room_id", conflict.RoomID,
			"date", conflict.Date,
			"with_booking_id", conflict.WithBookingID,
		)
	}

	booking := h.store.AddBooking(r.Context(), draft)
	logger.With("booking_id", booking.ID).InfoContext(r.Context(), "booking created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, bookingResponse{
		Booking:  booking,
		Warnings: toConflictWarnings(conflicts),
	})
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bookingID, ok := BookingIDFromContext(r.Context())
	if !ok || strings.TrimSpace(bookingID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidBookingID)
		return
	}

	var booking domain.ClassRoomBooking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		h.log(r.Context(), "Update", "booking_id", bookingID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode booking update", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	booking.ID = bookingID

	h.store.UpdateBooking(r.Context(), booking)
	h.log(r.Context(), "Update").With("booking_id", bookingID).InfoContext(r.Context(), "booking updated")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.store == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bookingID, ok := BookingIDFromContext(r.Context())
	if !ok || strings.TrimSpace(bookingID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidBookingID)
		return
	}

	h.store.DeleteBooking(r.Context(), bookingID)
	h.log(r.Context(), "Delete").With("booking_id", bookingID).InfoContext(r.Context(), "booking deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

type bookingResponse struct {
	Booking  domain.ClassRoomBooking `json:"booking"`
	Warnings []conflictWarning       `json:"warnings,omitempty"`
}

type listBookingsResponse struct {
	Bookings []domain.ClassRoomBooking `json:"bookings"`
}

type conflictWarning struct {
	Message       string `json:"message"`
	RoomID        string `json:"roomId"`
	Date          string `json:"date"`
	WithBookingID string `json:"withBookingId"`
}

func toConflictWarnings(conflicts []timetable.Conflict) []conflictWarning {
	if len(conflicts) == 0 {
		return nil
	}
	out := make([]conflictWarning, 0, len(conflicts))
	for _, conflict := range conflicts {
		out = append(out, conflictWarning{
			Message:       fmt.Sprintf("Room %s is already booked on %s.", conflict.RoomID, conflict.Date),
			RoomID:        conflict.RoomID,
			Date:          conflict.Date,
			WithBookingID: conflict.WithBookingID,
		})
	}
	return out
}
