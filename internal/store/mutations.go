package store

import (
	"context"
	"fmt"

	"github.com/example/school-dashboard/internal/billing"
	"github.com/example/school-dashboard/internal/domain"
	"github.com/example/school-dashboard/internal/persistence"
)

// --- Teachers ---

// AddTeacher assigns a fresh identifier to the draft, appends it, and
// returns the stored record.
func (s *Store) AddTeacher(ctx context.Context, draft domain.Teacher) domain.Teacher {
	s.mu.Lock()
	draft.ID = s.idGen()
	s.teachers = append(s.teachers, draft)
	write := s.marshalSlot(ctx, "AddTeacher", persistence.SlotTeachers, s.teachers)
	s.mu.Unlock()

	s.persist(ctx, "AddTeacher", write)
	s.notify(ctx, "Teacher added", fmt.Sprintf("%s has been added.", draft.Name))
	return draft
}

// UpdateTeacher replaces the record matching by identifier. Unknown
// identifiers are ignored.
func (s *Store) UpdateTeacher(ctx context.Context, teacher domain.Teacher) {
	s.mu.Lock()
	idx := teacherIndex(s.teachers, teacher.ID)
	if idx < 0 {
		s.mu.Unlock()
		s.log(ctx, "UpdateTeacher", "teacher_id", teacher.ID).Warn("update for unknown teacher ignored")
		return
	}
	s.teachers[idx] = teacher
	write := s.marshalSlot(ctx, "UpdateTeacher", persistence.SlotTeachers, s.teachers)
	s.mu.Unlock()

	s.persist(ctx, "UpdateTeacher", write)
	s.notify(ctx, "Teacher updated", fmt.Sprintf("%s has been updated.", teacher.Name))
}

// DeleteTeacher removes the teacher. Groups keep their TeacherID reference;
// the teacher list on the group side is authoritative.
func (s *Store) DeleteTeacher(ctx context.Context, teacherID string) {
	s.mu.Lock()
	idx := teacherIndex(s.teachers, teacherID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	name := s.teachers[idx].Name
	s.teachers = append(s.teachers[:idx], s.teachers[idx+1:]...)
	write := s.marshalSlot(ctx, "DeleteTeacher", persistence.SlotTeachers, s.teachers)
	s.mu.Unlock()

	s.persist(ctx, "DeleteTeacher", write)
	s.notify(ctx, "Teacher removed", fmt.Sprintf("%s has been removed.", name))
}

// --- Groups ---

// AddGroup assigns a fresh identifier to the draft, appends it, and returns
// the stored record.
func (s *Store) AddGroup(ctx context.Context, draft domain.Group) domain.Group {
	s.mu.Lock()
	draft.ID = s.idGen()
	s.groups = append(s.groups, draft)
	write := s.marshalSlot(ctx, "AddGroup", persistence.SlotGroups, s.groups)
	s.mu.Unlock()

	s.persist(ctx, "AddGroup", write)
	s.notify(ctx, "Group created", fmt.Sprintf("Group %s has been created.", draft.Name))
	return draft
}

// UpdateGroup replaces the record matching by identifier. Unknown
// identifiers are ignored.
func (s *Store) UpdateGroup(ctx context.Context, group domain.Group) {
	s.mu.Lock()
	idx := groupIndex(s.groups, group.ID)
	if idx < 0 {
		s.mu.Unlock()
		s.log(ctx, "UpdateGroup", "group_id", group.ID).Warn("update for unknown group ignored")
		return
	}
	s.groups[idx] = group
	write := s.marshalSlot(ctx, "UpdateGroup", persistence.SlotGroups, s.groups)
	s.mu.Unlock()

	s.persist(ctx, "UpdateGroup", write)
	s.notify(ctx, "Group updated", fmt.Sprintf("Group %s has been updated.", group.Name))
}

// DeleteGroup removes the group and cascades to its students, its bookings,
// the payments of those students, and its attendance records. Every touched
// collection is snapshotted.
func (s *Store) DeleteGroup(ctx context.Context, groupID string) {
	s.mu.Lock()
	idx := groupIndex(s.groups, groupID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	name := s.groups[idx].Name
	s.groups = append(s.groups[:idx], s.groups[idx+1:]...)

	removedStudents := make(map[string]struct{})
	students := s.students[:0:0]
	for _, student := range s.students {
		if student.GroupID == groupID {
			removedStudents[student.ID] = struct{}{}
			continue
		}
		students = append(students, student)
	}
	s.students = students

	bookings := s.bookings[:0:0]
	for _, booking := range s.bookings {
		if booking.GroupID != groupID {
			bookings = append(bookings, booking)
		}
	}
	s.bookings = bookings

	payments := s.payments[:0:0]
	for _, payment := range s.payments {
		if _, gone := removedStudents[payment.StudentID]; !gone {
			payments = append(payments, payment)
		}
	}
	s.payments = payments

	attendance := s.attendance[:0:0]
	for _, record := range s.attendance {
		if record.GroupID != groupID {
			attendance = append(attendance, record)
		}
	}
	s.attendance = attendance

	writes := []snapshotWrite{
		s.marshalSlot(ctx, "DeleteGroup", persistence.SlotGroups, s.groups),
		s.marshalSlot(ctx, "DeleteGroup", persistence.SlotStudents, s.students),
		s.marshalSlot(ctx, "DeleteGroup", persistence.SlotBookings, s.bookings),
		s.marshalSlot(ctx, "DeleteGroup", persistence.SlotPayments, s.payments),
		s.marshalSlot(ctx, "DeleteGroup", persistence.SlotAttendance, s.attendance),
	}
	s.mu.Unlock()

	s.persist(ctx, "DeleteGroup", writes...)
	s.notify(ctx, "Group deleted", fmt.Sprintf("Group %s has been deleted.", name))
}

// --- Students ---

// AddStudent assigns a fresh identifier to the draft, appends it, and
// returns the stored record.
func (s *Store) AddStudent(ctx context.Context, draft domain.Student) domain.Student {
	s.mu.Lock()
	draft.ID = s.idGen()
	s.students = append(s.students, draft)
	write := s.marshalSlot(ctx, "AddStudent", persistence.SlotStudents, s.students)
	s.mu.Unlock()

	s.persist(ctx, "AddStudent", write)
	s.notify(ctx, "Student added", fmt.Sprintf("%s has been added to the group.", draft.Name))
	return draft
}

// UpdateStudent replaces the record matching by identifier. Unknown
// identifiers are ignored.
func (s *Store) UpdateStudent(ctx context.Context, student domain.Student) {
	s.mu.Lock()
	idx := studentIndex(s.students, student.ID)
	if idx < 0 {
		s.mu.Unlock()
		s.log(ctx, "UpdateStudent", "student_id", student.ID).Warn("update for unknown student ignored")
		return
	}
	s.students[idx] = student
	write := s.marshalSlot(ctx, "UpdateStudent", persistence.SlotStudents, s.students)
	s.mu.Unlock()

	s.persist(ctx, "UpdateStudent", write)
	s.notify(ctx, "Student updated", fmt.Sprintf("%s has been updated.", student.Name))
}

// RemoveStudent deletes the student. The student's payments are kept;
// they disappear only when the owning group is deleted.
func (s *Store) RemoveStudent(ctx context.Context, studentID string) {
	s.mu.Lock()
	idx := studentIndex(s.students, studentID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	name := s.students[idx].Name
	s.students = append(s.students[:idx], s.students[idx+1:]...)
	write := s.marshalSlot(ctx, "RemoveStudent", persistence.SlotStudents, s.students)
	s.mu.Unlock()

	s.persist(ctx, "RemoveStudent", write)
	s.notify(ctx, "Student removed", fmt.Sprintf("%s has been removed from the group.", name))
}

// --- Classrooms ---

// AddClassRoom assigns a fresh identifier to the draft, appends it, and
// returns the stored record.
func (s *Store) AddClassRoom(ctx context.Context, draft domain.ClassRoom) domain.ClassRoom {
	s.mu.Lock()
	draft.ID = s.idGen()
	s.classrooms = append(s.classrooms, draft)
	write := s.marshalSlot(ctx, "AddClassRoom", persistence.SlotClassRooms, s.classrooms)
	s.mu.Unlock()

	s.persist(ctx, "AddClassRoom", write)
	s.notify(ctx, "Classroom added", fmt.Sprintf("%s has been added.", draft.Name))
	return draft
}

// UpdateClassRoom replaces the record matching by identifier. Unknown
// identifiers are ignored.
func (s *Store) UpdateClassRoom(ctx context.Context, room domain.ClassRoom) {
	s.mu.Lock()
	idx := classRoomIndex(s.classrooms, room.ID)
	if idx < 0 {
		s.mu.Unlock()
		s.log(ctx, "UpdateClassRoom", "room_id", room.ID).Warn("update for unknown classroom ignored")
		return
	}
	s.classrooms[idx] = room
	write := s.marshalSlot(ctx, "UpdateClassRoom", persistence.SlotClassRooms, s.classrooms)
	s.mu.Unlock()

	s.persist(ctx, "UpdateClassRoom", write)
	s.notify(ctx, "Classroom updated", fmt.Sprintf("%s has been updated.", room.Name))
}

// DeleteClassRoom removes the classroom. Bookings referencing the room are
// kept; the schedule views simply stop resolving the room name.
func (s *Store) DeleteClassRoom(ctx context.Context, roomID string) {
	s.mu.Lock()
	idx := classRoomIndex(s.classrooms, roomID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	name := s.classrooms[idx].Name
	s.classrooms = append(s.classrooms[:idx], s.classrooms[idx+1:]...)
	write := s.marshalSlot(ctx, "DeleteClassRoom", persistence.SlotClassRooms, s.classrooms)
	s.mu.Unlock()

	s.persist(ctx, "DeleteClassRoom", write)
	s.notify(ctx, "Classroom removed", fmt.Sprintf("%s has been removed.", name))
}

// --- Bookings ---

// AddBooking assigns a fresh identifier to the draft, appends it, and
// returns the stored record. Overlapping bookings for the same room are
// accepted; conflict detection is advisory and lives in the transport
// layer.
func (s *Store) AddBooking(ctx context.Context, draft domain.ClassRoomBooking) domain.ClassRoomBooking {
	s.mu.Lock()
	draft.ID = s.idGen()
	s.bookings = append(s.bookings, draft)
	write := s.marshalSlot(ctx, "AddBooking", persistence.SlotBookings, s.bookings)
	s.mu.Unlock()

	s.persist(ctx, "AddBooking", write)
	s.notify(ctx, "Booking created", fmt.Sprintf("Room booked for %s from %s to %s.", draft.Date, draft.StartTime, draft.EndTime))
	return draft
}

// UpdateBooking replaces the record matching by identifier. Unknown
// identifiers are ignored.
func (s *Store) UpdateBooking(ctx context.Context, booking domain.ClassRoomBooking) {
	s.mu.Lock()
	idx := bookingIndex(s.bookings, booking.ID)
	if idx < 0 {
		s.mu.Unlock()
		s.log(ctx, "UpdateBooking", "booking_id", booking.ID).Warn("update for unknown booking ignored")
		return
	}
	s.bookings[idx] = booking
	write := s.marshalSlot(ctx, "UpdateBooking", persistence.SlotBookings, s.bookings)
	s.mu.Unlock()

	s.persist(ctx, "UpdateBooking", write)
	s.notify(ctx, "Booking updated", "The booking has been updated.")
}

// DeleteBooking removes the booking. Unknown identifiers are ignored.
func (s *Store) DeleteBooking(ctx context.Context, bookingID string) {
	s.mu.Lock()
	idx := bookingIndex(s.bookings, bookingID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)
	write := s.marshalSlot(ctx, "DeleteBooking", persistence.SlotBookings, s.bookings)
	s.mu.Unlock()

	s.persist(ctx, "DeleteBooking", write)
	s.notify(ctx, "Booking deleted", "The room booking has been deleted.")
}

// --- Attendance ---

// RecordAttendance upserts the record keyed by (group, date): re-recording
// the same session replaces the prior record instead of duplicating it.
// SessionID is recomputed as a derived display label. The stored record is
// returned.
func (s *Store) RecordAttendance(ctx context.Context, record domain.Attendance) domain.Attendance {
	record.SessionID = domain.SessionLabel(record.GroupID, record.Date)

	s.mu.Lock()
	idx := -1
	for i, existing := range s.attendance {
		if existing.GroupID == record.GroupID && existing.Date == record.Date {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.attendance[idx] = record
	} else {
		s.attendance = append(s.attendance, record)
	}
	write := s.marshalSlot(ctx, "RecordAttendance", persistence.SlotAttendance, s.attendance)
	s.mu.Unlock()

	s.persist(ctx, "RecordAttendance", write)
	s.notify(ctx, "Attendance recorded", fmt.Sprintf("Attendance for %s has been recorded.", record.Date))
	return record
}

// --- Payments ---

// UpdatePaymentStatus transitions the payment's status in place. Any
// transition is permitted; unknown identifiers leave the collection
// unchanged.
func (s *Store) UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) {
	s.mu.Lock()
	idx := paymentIndex(s.payments, paymentID)
	if idx < 0 {
		s.mu.Unlock()
		s.log(ctx, "UpdatePaymentStatus", "payment_id", paymentID).Warn("status update for unknown payment ignored")
		return
	}
	s.payments[idx].Status = status
	write := s.marshalSlot(ctx, "UpdatePaymentStatus", persistence.SlotPayments, s.payments)
	s.mu.Unlock()

	s.persist(ctx, "UpdatePaymentStatus", write)
	s.notify(ctx, "Payment updated", fmt.Sprintf("Payment status set to %s.", status))
}

// GeneratePaymentPeriods synthesizes the missing billing periods for the
// group's enrolled students and returns how many payments were created.
// Re-invoking for a fully covered group creates nothing.
func (s *Store) GeneratePaymentPeriods(ctx context.Context, groupID string) int {
	s.mu.Lock()
	idx := groupIndex(s.groups, groupID)
	if idx < 0 {
		s.mu.Unlock()
		s.log(ctx, "GeneratePaymentPeriods", "group_id", groupID).Warn("generation for unknown group ignored")
		return 0
	}
	group := s.groups[idx]

	var students []domain.Student
	for _, student := range s.students {
		if student.GroupID == groupID {
			students = append(students, student)
		}
	}

	created := billing.GeneratePeriods(group, students, s.payments, billing.Options{
		NewID:             s.idGen,
		Now:               s.now,
		DefaultBlockSize:  s.billing.BlockSize,
		BlockAmount:       s.billing.BlockAmount,
		DefaultMonthlyFee: s.billing.MonthlyFee,
	})
	if len(created) == 0 {
		s.mu.Unlock()
		return 0
	}

	s.payments = append(s.payments, created...)
	write := s.marshalSlot(ctx, "GeneratePaymentPeriods", persistence.SlotPayments, s.payments)
	s.mu.Unlock()

	s.persist(ctx, "GeneratePaymentPeriods", write)
	s.notify(ctx, "Payment periods generated", fmt.Sprintf("Created %s for group %s.", describeCount(len(created), "payment"), group.Name))
	return len(created)
}

// --- UI preferences ---

// SetSelectedTeacherID persists the journal's selected teacher.
func (s *Store) SetSelectedTeacherID(ctx context.Context, teacherID string) {
	s.mu.Lock()
	s.selectedTeacherID = teacherID
	write := s.marshalSlot(ctx, "SetSelectedTeacherID", persistence.SlotSelectedTeacherID, teacherID)
	s.mu.Unlock()

	s.persist(ctx, "SetSelectedTeacherID", write)
}

// SetViewMode persists the calendar granularity preference. The value is
// stored as given; the UI owns validation.
func (s *Store) SetViewMode(ctx context.Context, mode domain.ViewMode) {
	s.mu.Lock()
	s.viewMode = mode
	write := s.marshalSlot(ctx, "SetViewMode", persistence.SlotViewMode, mode)
	s.mu.Unlock()

	s.persist(ctx, "SetViewMode", write)
}

// --- Index helpers ---

func teacherIndex(items []domain.Teacher, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func groupIndex(items []domain.Group, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func studentIndex(items []domain.Student, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func classRoomIndex(items []domain.ClassRoom, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func bookingIndex(items []domain.ClassRoomBooking, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func paymentIndex(items []domain.Payment, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
