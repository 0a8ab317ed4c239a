package timetable

import (
	"testing"

	"github.com/example/school-dashboard/internal/domain"
)

func booking(id, room, date, start, end string) domain.ClassRoomBooking {
	return domain.ClassRoomBooking{
		ID:        id,
		RoomID:    room,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestDetectRoomConflicts(t *testing.T) {
	existing := []domain.ClassRoomBooking{
		booking("b1", "room-1", "2025-04-14", "10:00", "11:30"),
		booking("b2", "room-1", "2025-04-14", "14:00", "15:30"),
		booking("b3", "room-2", "2025-04-14", "10:00", "11:30"),
	}

	conflicts := DetectRoomConflicts(existing, booking("new", "room-1", "2025-04-14", "11:00", "12:30"))
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if conflicts[0].WithBookingID != "b1" {
		t.Fatalf("expected conflict with b1, got %q", conflicts[0].WithBookingID)
	}
	if conflicts[0].RoomID != "room-1" || conflicts[0].Date != "2025-04-14" {
		t.Fatalf("unexpected conflict details: %+v", conflicts[0])
	}
}

func TestDetectRoomConflictsTouchingWindowsDoNotConflict(t *testing.T) {
	existing := []domain.ClassRoomBooking{
		booking("b1", "room-1", "2025-04-14", "10:00", "11:30"),
	}

	conflicts := DetectRoomConflicts(existing, booking("new", "room-1", "2025-04-14", "11:30", "13:00"))
	if len(conflicts) != 0 {
		t.Fatalf("expected no conflicts for adjacent windows, got %d", len(conflicts))
	}
}

func TestDetectRoomConflictsIgnoresOtherRoomsAndDates(t *testing.T) {
	existing := []domain.ClassRoomBooking{
		booking("b1", "room-1", "2025-04-14", "10:00", "11:30"),
		booking("b2", "room-1", "2025-04-15", "10:00", "11:30"),
	}

	conflicts := DetectRoomConflicts(existing, booking("new", "room-2", "2025-04-14", "10:00", "11:30"))
	if len(conflicts) != 0 {
		t.Fatalf("expected no conflicts across rooms, got %d", len(conflicts))
	}
	conflicts = DetectRoomConflicts(existing, booking("new", "room-1", "2025-04-16", "10:00", "11:30"))
	if len(conflicts) != 0 {
		t.Fatalf("expected no conflicts across dates, got %d", len(conflicts))
	}
}

func TestDetectRoomConflictsSkipsCandidateItself(t *testing.T) {
	existing := []domain.ClassRoomBooking{
		booking("b1", "room-1", "2025-04-14", "10:00", "11:30"),
	}

	conflicts := DetectRoomConflicts(existing, booking("b1", "room-1", "2025-04-14", "10:00", "11:30"))
	if len(conflicts) != 0 {
		t.Fatalf("expected self-match to be skipped, got %d conflicts", len(conflicts))
	}
}
