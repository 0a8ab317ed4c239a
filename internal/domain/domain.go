// Package domain defines the entity types shared by the store, the billing
// generator, the timetable engine, and the HTTP transport. The JSON tags
// define the snapshot blob format and therefore must stay stable.
package domain

// PaymentStatus enumerates the lifecycle states of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentOverdue   PaymentStatus = "overdue"
)

// PaymentType selects how billing periods are generated for a group.
type PaymentType string

const (
	// PayPerLesson bills in blocks of a fixed number of lessons.
	PayPerLesson PaymentType = "perLesson"
	// PayMonthly bills once per calendar month between the group's start
	// and end dates.
	PayMonthly PaymentType = "monthly"
)

// ViewMode is the calendar granularity preference persisted for the UI.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// DefaultPaymentPeriod is the lesson block size used when a group does not
// configure one.
const DefaultPaymentPeriod = 8

// Teacher is a staff member. Groups is a denormalized convenience list and
// is not authoritative; Group.TeacherID is.
type Teacher struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Subject string   `json:"subject"`
	Groups  []string `json:"groups"`
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
}

// ClassSession is one recurring weekly slot in a group's schedule, distinct
// from a ClassRoomBooking which is a single dated occurrence.
type ClassSession struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	RoomID    string `json:"roomId"`
}

// Group is a cohort of students taught by one teacher on a weekly schedule.
// Dates are zero-padded ISO yyyy-mm-dd strings; lexicographic order matches
// chronological order for that format.
type Group struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	TeacherID        string         `json:"teacherId"`
	Schedule         []ClassSession `json:"schedule"`
	StartDate        string         `json:"startDate"`
	EndDate          string         `json:"endDate"`
	TotalLessons     int            `json:"totalLessons"`
	CompletedLessons int            `json:"completedLessons"`
	LastPaymentDate  string         `json:"lastPaymentDate"`
	PaymentType      PaymentType    `json:"paymentType"`
	PaymentPeriod    int            `json:"paymentPeriod"`
	MonthlyFee       float64        `json:"monthlyFee"`
}

// Student belongs to exactly one group.
type Student struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contacts string `json:"contacts"`
	GroupID  string `json:"groupId"`
}

// ClassRoom is a physical room in the room catalog.
type ClassRoom struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Location  string   `json:"location,omitempty"`
	Equipment []string `json:"equipment,omitempty"`
	IsActive  bool     `json:"isActive"`
}

// ClassRoomBooking is one dated occupancy of a room by a group.
type ClassRoomBooking struct {
	ID        string   `json:"id"`
	RoomID    string   `json:"roomId"`
	GroupID   string   `json:"groupId"`
	Date      string   `json:"date"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Title     string   `json:"title"`
	Teachers  []string `json:"teachers"`
}

// Attendance records which students of a group were present on a date.
// SessionID is a derived display label only; the logical key is
// (GroupID, Date).
type Attendance struct {
	SessionID       string   `json:"sessionId"`
	Date            string   `json:"date"`
	GroupID         string   `json:"groupId"`
	PresentStudents []string `json:"presentStudents"`
	AbsentStudents  []string `json:"absentStudents"`
}

// SessionLabel derives the display label stored in Attendance.SessionID.
func SessionLabel(groupID, date string) string {
	return groupID + "-" + date
}

// Payment is one billing period owed by a student. Per-lesson payments carry
// an inclusive 1-based lesson range; monthly payments carry a yyyy-mm token
// instead.
type Payment struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"studentId"`
	Amount      float64       `json:"amount"`
	Date        string        `json:"date"`
	Status      PaymentStatus `json:"status"`
	Period      string        `json:"period"`
	LessonStart int           `json:"lessonStart,omitempty"`
	LessonEnd   int           `json:"lessonEnd,omitempty"`
	Month       string        `json:"month,omitempty"`
}
