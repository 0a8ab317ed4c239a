package store

import "github.com/example/school-dashboard/internal/domain"

// Teachers returns a copy of the teacher collection.
func (s *Store) Teachers() []domain.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Teacher(nil), s.teachers...)
}

// Groups returns a copy of the group collection.
func (s *Store) Groups() []domain.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Group(nil), s.groups...)
}

// ClassRooms returns a copy of the classroom collection.
func (s *Store) ClassRooms() []domain.ClassRoom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ClassRoom(nil), s.classrooms...)
}

// Students returns a copy of the student collection.
func (s *Store) Students() []domain.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Student(nil), s.students...)
}

// Bookings returns a copy of the booking collection.
func (s *Store) Bookings() []domain.ClassRoomBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ClassRoomBooking(nil), s.bookings...)
}

// Attendance returns a copy of the attendance collection.
func (s *Store) Attendance() []domain.Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Attendance(nil), s.attendance...)
}

// Payments returns a copy of the payment collection.
func (s *Store) Payments() []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Payment(nil), s.payments...)
}

// TeacherByID resolves a teacher. The second return reports presence.
func (s *Store) TeacherByID(id string) (domain.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := teacherIndex(s.teachers, id); idx >= 0 {
		return s.teachers[idx], true
	}
	return domain.Teacher{}, false
}

// GroupByID resolves a group. The second return reports presence.
func (s *Store) GroupByID(id string) (domain.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := groupIndex(s.groups, id); idx >= 0 {
		return s.groups[idx], true
	}
	return domain.Group{}, false
}

// StudentByID resolves a student. The second return reports presence.
func (s *Store) StudentByID(id string) (domain.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := studentIndex(s.students, id); idx >= 0 {
		return s.students[idx], true
	}
	return domain.Student{}, false
}

// ClassRoomByID resolves a classroom. The second return reports presence.
func (s *Store) ClassRoomByID(id string) (domain.ClassRoom, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := classRoomIndex(s.classrooms, id); idx >= 0 {
		return s.classrooms[idx], true
	}
	return domain.ClassRoom{}, false
}

// BookingByID resolves a booking. The second return reports presence.
func (s *Store) BookingByID(id string) (domain.ClassRoomBooking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := bookingIndex(s.bookings, id); idx >= 0 {
		return s.bookings[idx], true
	}
	return domain.ClassRoomBooking{}, false
}

// TeacherGroups returns the groups assigned to the teacher, in insertion
// order. An unknown teacher yields an empty slice.
func (s *Store) TeacherGroups(teacherID string) []domain.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Group{}
	for _, group := range s.groups {
		if group.TeacherID == teacherID {
			out = append(out, group)
		}
	}
	return out
}

// GroupStudents returns the students enrolled in the group, in insertion
// order.
func (s *Store) GroupStudents(groupID string) []domain.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Student{}
	for _, student := range s.students {
		if student.GroupID == groupID {
			out = append(out, student)
		}
	}
	return out
}

// RoomBookings returns every booking for the room.
func (s *Store) RoomBookings(roomID string) []domain.ClassRoomBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ClassRoomBooking{}
	for _, booking := range s.bookings {
		if booking.RoomID == roomID {
			out = append(out, booking)
		}
	}
	return out
}

// RoomBookingsOn returns the room's bookings for a single date.
func (s *Store) RoomBookingsOn(roomID, date string) []domain.ClassRoomBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ClassRoomBooking{}
	for _, booking := range s.bookings {
		if booking.RoomID == roomID && booking.Date == date {
			out = append(out, booking)
		}
	}
	return out
}

// TimeSlotBookings returns the bookings starting at the exact (date,
// startTime) slot across all rooms, regardless of when they end.
func (s *Store) TimeSlotBookings(date, startTime string) []domain.ClassRoomBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ClassRoomBooking{}
	for _, booking := range s.bookings {
		if booking.Date == date && booking.StartTime == startTime {
			out = append(out, booking)
		}
	}
	return out
}

// BookingsInRange returns bookings dated within [from, to] inclusive.
// Dates are zero-padded ISO strings, so plain string comparison orders
// them correctly.
func (s *Store) BookingsInRange(from, to string) []domain.ClassRoomBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ClassRoomBooking{}
	for _, booking := range s.bookings {
		if booking.Date >= from && booking.Date <= to {
			out = append(out, booking)
		}
	}
	return out
}

// RoomBookingsInRange returns the room's bookings dated within [from, to]
// inclusive.
func (s *Store) RoomBookingsInRange(roomID, from, to string) []domain.ClassRoomBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ClassRoomBooking{}
	for _, booking := range s.bookings {
		if booking.RoomID == roomID && booking.Date >= from && booking.Date <= to {
			out = append(out, booking)
		}
	}
	return out
}

// GroupAttendance returns the group's attendance records in recording
// order.
func (s *Store) GroupAttendance(groupID string) []domain.Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Attendance{}
	for _, record := range s.attendance {
		if record.GroupID == groupID {
			out = append(out, record)
		}
	}
	return out
}

// StudentPayments returns the student's payments in generation order.
func (s *Store) StudentPayments(studentID string) []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Payment{}
	for _, payment := range s.payments {
		if payment.StudentID == studentID {
			out = append(out, payment)
		}
	}
	return out
}

// GroupPayments returns the payments belonging to the group's currently
// enrolled students. Payments of students who have since left the group
// are not included.
func (s *Store) GroupPayments(groupID string) []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	enrolled := make(map[string]struct{})
	for _, student := range s.students {
		if student.GroupID == groupID {
			enrolled[student.ID] = struct{}{}
		}
	}
	out := []domain.Payment{}
	for _, payment := range s.payments {
		if _, ok := enrolled[payment.StudentID]; ok {
			out = append(out, payment)
		}
	}
	return out
}

// SelectedTeacherID returns the persisted journal teacher selection, or
// the empty string when none was chosen yet.
func (s *Store) SelectedTeacherID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedTeacherID
}

// ViewMode returns the persisted calendar granularity.
func (s *Store) ViewMode() domain.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}
