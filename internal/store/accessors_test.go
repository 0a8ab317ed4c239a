package store

import (
	"context"
	"testing"

	"github.com/example/school-dashboard/internal/domain"
)

func openAccessorStore(t *testing.T) *Store {
	t.Helper()
	opts := testOptions(newMemorySnapshots())
	opts.Seed = Dataset{
		Teachers: []domain.Teacher{
			{ID: "t1", Name: "Anna Becker"},
			{ID: "t2", Name: "Elena Fischer"},
		},
		Groups: []domain.Group{
			{ID: "g1", Name: "English B2", TeacherID: "t1"},
			{ID: "g2", Name: "German A1", TeacherID: "t1"},
			{ID: "g3", Name: "Spanish A2", TeacherID: "t2"},
		},
		Students: []domain.Student{
			{ID: "s1", Name: "Maria", GroupID: "g1"},
			{ID: "s2", Name: "Pavel", GroupID: "g1"},
			{ID: "s3", Name: "Olga", GroupID: "g2"},
		},
		ClassRooms: []domain.ClassRoom{
			{ID: "r1", Name: "Room 101"},
			{ID: "r2", Name: "Room 102"},
		},
		Bookings: []domain.ClassRoomBooking{
			{ID: "b1", RoomID: "r1", GroupID: "g1", Date: "2025-04-14", StartTime: "10:00", EndTime: "11:30"},
			{ID: "b2", RoomID: "r1", GroupID: "g2", Date: "2025-04-15", StartTime: "10:00", EndTime: "11:30"},
			{ID: "b3", RoomID: "r2", GroupID: "g3", Date: "2025-04-15", StartTime: "10:00", EndTime: "12:00"},
			{ID: "b4", RoomID: "r1", GroupID: "g1", Date: "2025-04-21", StartTime: "14:00", EndTime: "15:30"},
		},
	}
	return Open(context.Background(), opts)
}

func TestTeacherGroups(t *testing.T) {
	s := openAccessorStore(t)

	groups := s.TeacherGroups("t1")
	if len(groups) != 2 || groups[0].ID != "g1" || groups[1].ID != "g2" {
		t.Fatalf("expected g1 and g2 in order, got %v", groups)
	}
	if got := s.TeacherGroups("missing"); len(got) != 0 {
		t.Fatalf("expected empty slice for unknown teacher, got %v", got)
	}
}

func TestGroupStudents(t *testing.T) {
	s := openAccessorStore(t)

	students := s.GroupStudents("g1")
	if len(students) != 2 || students[0].ID != "s1" || students[1].ID != "s2" {
		t.Fatalf("expected s1 and s2 in order, got %v", students)
	}
	if got := s.GroupStudents("g3"); len(got) != 0 {
		t.Fatalf("expected empty slice for group without students, got %v", got)
	}
}

func TestRoomBookings(t *testing.T) {
	s := openAccessorStore(t)

	if got := s.RoomBookings("r1"); len(got) != 3 {
		t.Fatalf("expected 3 bookings for r1, got %v", got)
	}
	if got := s.RoomBookingsOn("r1", "2025-04-15"); len(got) != 1 || got[0].ID != "b2" {
		t.Fatalf("expected only b2 on 2025-04-15, got %v", got)
	}
}

func TestTimeSlotBookings(t *testing.T) {
	s := openAccessorStore(t)

	got := s.TimeSlotBookings("2025-04-15", "10:00")
	if len(got) != 2 {
		t.Fatalf("expected b2 and b3 in the slot, got %v", got)
	}
	// b2 and b3 end at different times; the slot is keyed by start only.
	if got := s.TimeSlotBookings("2025-04-15", "11:30"); len(got) != 0 {
		t.Fatalf("expected no bookings starting at 11:30, got %v", got)
	}
}

func TestBookingsInRangeIsInclusive(t *testing.T) {
	s := openAccessorStore(t)

	got := s.BookingsInRange("2025-04-14", "2025-04-15")
	if len(got) != 3 {
		t.Fatalf("expected both boundary dates included, got %v", got)
	}
	for _, booking := range got {
		if booking.ID == "b4" {
			t.Fatalf("expected b4 outside the range, got %v", got)
		}
	}

	if got := s.RoomBookingsInRange("r1", "2025-04-14", "2025-04-21"); len(got) != 3 {
		t.Fatalf("expected all r1 bookings in range, got %v", got)
	}
	if got := s.RoomBookingsInRange("r1", "2025-04-16", "2025-04-20"); len(got) != 0 {
		t.Fatalf("expected empty slice for uncovered range, got %v", got)
	}
}

func TestGroupAttendance(t *testing.T) {
	s := openAccessorStore(t)
	s.RecordAttendance(context.Background(), domain.Attendance{GroupID: "g1", Date: "2025-04-14"})
	s.RecordAttendance(context.Background(), domain.Attendance{GroupID: "g2", Date: "2025-04-15"})

	got := s.GroupAttendance("g1")
	if len(got) != 1 || got[0].Date != "2025-04-14" {
		t.Fatalf("expected only the g1 record, got %v", got)
	}
}

func TestStudentAndGroupPayments(t *testing.T) {
	s := openAccessorStore(t)
	seedPaymentForEachStudent(t, s)

	if got := s.StudentPayments("s1"); len(got) != 1 || got[0].StudentID != "s1" {
		t.Fatalf("expected one payment for s1, got %v", got)
	}

	// Group payments follow current membership.
	if got := s.GroupPayments("g1"); len(got) != 2 {
		t.Fatalf("expected payments of s1 and s2, got %v", got)
	}

	// Moving a student out of the group removes their payments from the
	// group view without deleting them.
	s.UpdateStudent(context.Background(), domain.Student{ID: "s2", Name: "Pavel", GroupID: "g2"})
	if got := s.GroupPayments("g1"); len(got) != 1 || got[0].StudentID != "s1" {
		t.Fatalf("expected only s1 payments after reassignment, got %v", got)
	}
	if got := s.StudentPayments("s2"); len(got) != 1 {
		t.Fatalf("expected s2 payments preserved, got %v", got)
	}
}

func TestByIDLookups(t *testing.T) {
	s := openAccessorStore(t)

	if got, ok := s.GroupByID("g2"); !ok || got.Name != "German A1" {
		t.Fatalf("expected German A1, got %v (ok=%v)", got, ok)
	}
	if _, ok := s.GroupByID("missing"); ok {
		t.Fatal("expected lookup miss for unknown group")
	}
	if got, ok := s.BookingByID("b3"); !ok || got.RoomID != "r2" {
		t.Fatalf("expected booking b3 in r2, got %v (ok=%v)", got, ok)
	}
}

func TestCollectionAccessorsReturnCopies(t *testing.T) {
	s := openAccessorStore(t)

	teachers := s.Teachers()
	teachers[0].Name = "Mutated"

	if got := s.Teachers(); got[0].Name == "Mutated" {
		t.Fatal("expected accessor to return a copy, store was mutated")
	}
}
