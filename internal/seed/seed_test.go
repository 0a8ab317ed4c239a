package seed

import (
	"testing"
	"time"
)

func TestDatasetExpandsCurrentWeekBookings(t *testing.T) {
	// Tuesday 2025-04-15: the surrounding week runs Monday the 14th
	// through Sunday the 20th.
	now := time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)

	dataset := Dataset(now)

	// Three groups with two weekly sessions each.
	if len(dataset.Bookings) != 6 {
		t.Fatalf("expected 6 bookings for the week, got %d", len(dataset.Bookings))
	}

	byDate := make(map[string]int)
	for _, booking := range dataset.Bookings {
		byDate[booking.Date]++
		if booking.Date < "2025-04-14" || booking.Date > "2025-04-20" {
			t.Fatalf("booking %s dated %s falls outside the week", booking.ID, booking.Date)
		}
	}
	if byDate["2025-04-14"] != 1 {
		t.Fatalf("expected one Monday session, got %d", byDate["2025-04-14"])
	}
	if byDate["2025-04-19"] != 1 {
		t.Fatalf("expected one Saturday session, got %d", byDate["2025-04-19"])
	}
}

func TestDatasetRelationsResolve(t *testing.T) {
	dataset := Dataset(time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC))

	teacherIDs := make(map[string]struct{})
	for _, teacher := range dataset.Teachers {
		teacherIDs[teacher.ID] = struct{}{}
	}
	groupIDs := make(map[string]struct{})
	roomIDs := make(map[string]struct{})
	for _, room := range dataset.ClassRooms {
		roomIDs[room.ID] = struct{}{}
	}
	for _, group := range dataset.Groups {
		groupIDs[group.ID] = struct{}{}
		if _, ok := teacherIDs[group.TeacherID]; !ok {
			t.Fatalf("group %s references unknown teacher %s", group.ID, group.TeacherID)
		}
		for _, session := range group.Schedule {
			if _, ok := roomIDs[session.RoomID]; !ok {
				t.Fatalf("session %s references unknown room %s", session.ID, session.RoomID)
			}
		}
	}
	for _, student := range dataset.Students {
		if _, ok := groupIDs[student.GroupID]; !ok {
			t.Fatalf("student %s references unknown group %s", student.ID, student.GroupID)
		}
	}
	for _, booking := range dataset.Bookings {
		if _, ok := groupIDs[booking.GroupID]; !ok {
			t.Fatalf("booking %s references unknown group %s", booking.ID, booking.GroupID)
		}
		if _, ok := roomIDs[booking.RoomID]; !ok {
			t.Fatalf("booking %s references unknown room %s", booking.ID, booking.RoomID)
		}
	}
}
