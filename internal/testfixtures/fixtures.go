package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/school-dashboard/internal/domain"
)

var (
	teacherCounter int64
	groupCounter   int64
	studentCounter int64
	roomCounter    int64
	bookingCounter int64
)

var referenceTime = time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
// It falls on a Tuesday, so the surrounding week spans April 14 through 20.
func ReferenceTime() time.Time {
	return referenceTime
}

// ---------------------------- Teacher fixtures ----------------------------

// TeacherOption configures the generated teacher fixture.
type TeacherOption func(*domain.Teacher)

// NewTeacherFixture returns a deterministic teacher with optional overrides.
func NewTeacherFixture(opts ...TeacherOption) domain.Teacher {
	idx := atomic.AddInt64(&teacherCounter, 1)
	teacher := domain.Teacher{
		ID:      fmt.Sprintf("teacher-%03d", idx),
		Name:    fmt.Sprintf("Teacher %03d", idx),
		Subject: "Programming",
	}
	for _, opt := range opts {
		opt(&teacher)
	}
	return teacher
}

// WithTeacherID overrides the generated teacher ID.
func WithTeacherID(id string) TeacherOption {
	return func(t *domain.Teacher) {
		t.ID = id
	}
}

// WithTeacherName overrides the generated name.
func WithTeacherName(name string) TeacherOption {
	return func(t *domain.Teacher) {
		t.Name = name
	}
}

// WithTeacherSubject overrides the generated subject.
func WithTeacherSubject(subject string) TeacherOption {
	return func(t *domain.Teacher) {
		t.Subject = subject
	}
}

// ----------------------------- Group fixtures -----------------------------

// GroupOption configures the generated group fixture.
type GroupOption func(*domain.Group)

// NewGroupFixture returns a deterministic per-lesson group running through
// the spring term with optional overrides.
func NewGroupFixture(opts ...GroupOption) domain.Group {
	idx := atomic.AddInt64(&groupCounter, 1)
	group := domain.Group{
		ID:           fmt.Sprintf("group-%03d", idx),
		Name:         fmt.Sprintf("Group %03d", idx),
		TeacherID:    "teacher-001",
		StartDate:    "2025-01-15",
		EndDate:      "2025-05-15",
		TotalLessons: 32,
		PaymentType:  domain.PayPerLesson,
	}
	for _, opt := range opts {
		opt(&group)
	}
	return group
}

// WithGroupID overrides the generated group ID.
func WithGroupID(id string) GroupOption {
	return func(g *domain.Group) {
		g.ID = id
	}
}

// WithGroupTeacher assigns the group to a teacher.
func WithGroupTeacher(teacherID string) GroupOption {
	return func(g *domain.Group) {
		g.TeacherID = teacherID
	}
}

// WithGroupSchedule replaces the weekly schedule.
func WithGroupSchedule(sessions ...domain.ClassSession) GroupOption {
	return func(g *domain.Group) {
		g.Schedule = sessions
	}
}

// WithGroupLessons sets the lesson progress counters.
func WithGroupLessons(total, completed int) GroupOption {
	return func(g *domain.Group) {
		g.TotalLessons = total
		g.CompletedLessons = completed
	}
}

// WithGroupBilling configures the payment model.
func WithGroupBilling(paymentType domain.PaymentType, period int, monthlyFee float64) GroupOption {
	return func(g *domain.Group) {
		g.PaymentType = paymentType
		g.PaymentPeriod = period
		g.MonthlyFee = monthlyFee
	}
}

// WithGroupTerm sets the start and end dates.
func WithGroupTerm(startDate, endDate string) GroupOption {
	return func(g *domain.Group) {
		g.StartDate = startDate
		g.EndDate = endDate
	}
}

// ---------------------------- Student fixtures ----------------------------

// StudentOption configures the generated student fixture.
type StudentOption func(*domain.Student)

// NewStudentFixture returns a deterministic student with optional overrides.
func NewStudentFixture(opts ...StudentOption) domain.Student {
	idx := atomic.AddInt64(&studentCounter, 1)
	student := domain.Student{
		ID:       fmt.Sprintf("student-%03d", idx),
		Name:     fmt.Sprintf("Student %03d", idx),
		Contacts: fmt.Sprintf("+7 (900) 000-00-%02d", idx%100),
		GroupID:  "group-001",
	}
	for _, opt := range opts {
		opt(&student)
	}
	return student
}

// WithStudentID overrides the generated student ID.
func WithStudentID(id string) StudentOption {
	return func(s *domain.Student) {
		s.ID = id
	}
}

// WithStudentGroup enrolls the student into a group.
func WithStudentGroup(groupID string) StudentOption {
	return func(s *domain.Student) {
		s.GroupID = groupID
	}
}

// --------------------------- Classroom fixtures ---------------------------

// ClassRoomOption configures the generated classroom fixture.
type ClassRoomOption func(*domain.ClassRoom)

// NewClassRoomFixture returns a deterministic active classroom with optional
// overrides.
func NewClassRoomFixture(opts ...ClassRoomOption) domain.ClassRoom {
	idx := atomic.AddInt64(&roomCounter, 1)
	room := domain.ClassRoom{
		ID:       fmt.Sprintf("room-%03d", idx),
		Name:     fmt.Sprintf("Room %d", 100+idx),
		Capacity: 15,
		IsActive: true,
	}
	for _, opt := range opts {
		opt(&room)
	}
	return room
}

// WithClassRoomID overrides the generated room ID.
func WithClassRoomID(id string) ClassRoomOption {
	return func(r *domain.ClassRoom) {
		r.ID = id
	}
}

// WithClassRoomCapacity overrides the generated capacity.
func WithClassRoomCapacity(capacity int) ClassRoomOption {
	return func(r *domain.ClassRoom) {
		r.Capacity = capacity
	}
}

// ---------------------------- Booking fixtures ----------------------------

// BookingOption configures the generated booking fixture.
type BookingOption func(*domain.ClassRoomBooking)

// NewBookingFixture returns a deterministic booking on the reference
// Tuesday with optional overrides.
func NewBookingFixture(opts ...BookingOption) domain.ClassRoomBooking {
	idx := atomic.AddInt64(&bookingCounter, 1)
	booking := domain.ClassRoomBooking{
		ID:        fmt.Sprintf("booking-%03d", idx),
		RoomID:    "room-001",
		GroupID:   "group-001",
		Date:      "2025-04-15",
		StartTime: "15:00",
		EndTime:   "16:30",
		Title:     fmt.Sprintf("Group %03d", idx),
		Teachers:  []string{"teacher-001"},
	}
	for _, opt := range opts {
		opt(&booking)
	}
	return booking
}

// WithBookingID overrides the generated booking ID.
func WithBookingID(id string) BookingOption {
	return func(b *domain.ClassRoomBooking) {
		b.ID = id
	}
}

// WithBookingRoom places the booking in a room.
func WithBookingRoom(roomID string) BookingOption {
	return func(b *domain.ClassRoomBooking) {
		b.RoomID = roomID
	}
}

// WithBookingGroup assigns the booking to a group.
func WithBookingGroup(groupID string) BookingOption {
	return func(b *domain.ClassRoomBooking) {
		b.GroupID = groupID
	}
}

// WithBookingSlot sets the date and time window.
func WithBookingSlot(date, startTime, endTime string) BookingOption {
	return func(b *domain.ClassRoomBooking) {
		b.Date = date
		b.StartTime = startTime
		b.EndTime = endTime
	}
}
