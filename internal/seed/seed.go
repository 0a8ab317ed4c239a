// Package seed supplies the compiled-in dataset the dashboard starts from
// when a snapshot slot is missing or unreadable.
package seed

import (
	"fmt"
	"time"

	"github.com/example/school-dashboard/internal/domain"
	"github.com/example/school-dashboard/internal/store"
	"github.com/example/school-dashboard/internal/timetable"
)

// TimeSlots are the booking start times offered by the schedule views.
var TimeSlots = []string{
	"09:00", "10:30", "12:00", "13:30", "15:00", "16:30", "18:00", "19:30",
}

// Dataset builds the default dataset. Bookings are expanded from each
// group's weekly schedule for the week containing now, so a freshly opened
// dashboard shows a populated current week.
func Dataset(now time.Time) store.Dataset {
	teachers := []domain.Teacher{
		{ID: "1", Name: "Ivan Ivanov", Subject: "Programming", Groups: []string{"1", "2"}},
		{ID: "2", Name: "Elena Petrova", Subject: "Web Development", Groups: []string{"3"}},
		{ID: "3", Name: "Alexey Sidorov", Subject: "Design", Groups: []string{"4", "5"}},
	}

	classrooms := []domain.ClassRoom{
		{ID: "1", Name: "Room 101", Capacity: 15, IsActive: true},
		{ID: "2", Name: "Room 102", Capacity: 20, IsActive: true},
		{ID: "3", Name: "Room 103", Capacity: 10, IsActive: true},
	}

	students := []domain.Student{
		{ID: "1", Name: "Artem Kozlov", Contacts: "+7 (900) 123-45-67", GroupID: "1"},
		{ID: "2", Name: "Anna Morozova", Contacts: "+7 (900) 765-43-21", GroupID: "1"},
		{ID: "3", Name: "Dmitry Volkov", Contacts: "+7 (900) 111-22-33", GroupID: "2"},
		{ID: "4", Name: "Maria Zaytseva", Contacts: "+7 (900) 444-55-66", GroupID: "2"},
		{ID: "5", Name: "Igor Sokolov", Contacts: "+7 (900) 777-88-99", GroupID: "3"},
	}

	groups := []domain.Group{
		{
			ID:        "1",
			Name:      "Programming 1",
			TeacherID: "1",
			Schedule: []domain.ClassSession{
				{ID: "1-1", Day: "Monday", StartTime: "15:00", EndTime: "16:30", RoomID: "1"},
				{ID: "1-2", Day: "Thursday", StartTime: "15:00", EndTime: "16:30", RoomID: "1"},
			},
			StartDate:        "2025-01-15",
			EndDate:          "2025-05-15",
			TotalLessons:     32,
			CompletedLessons: 8,
			LastPaymentDate:  "2025-04-15",
			PaymentType:      domain.PayPerLesson,
		},
		{
			ID:        "2",
			Name:      "Programming 2",
			TeacherID: "1",
			Schedule: []domain.ClassSession{
				{ID: "2-1", Day: "Tuesday", StartTime: "16:30", EndTime: "18:00", RoomID: "2"},
				{ID: "2-2", Day: "Friday", StartTime: "16:30", EndTime: "18:00", RoomID: "2"},
			},
			StartDate:        "2025-02-01",
			EndDate:          "2025-06-01",
			TotalLessons:     32,
			CompletedLessons: 6,
			LastPaymentDate:  "2025-04-01",
			PaymentType:      domain.PayPerLesson,
		},
		{
			ID:        "3",
			Name:      "Web Development 1",
			TeacherID: "2",
			Schedule: []domain.ClassSession{
				{ID: "3-1", Day: "Wednesday", StartTime: "18:00", EndTime: "19:30", RoomID: "3"},
				{ID: "3-2", Day: "Saturday", StartTime: "12:00", EndTime: "13:30", RoomID: "3"},
			},
			StartDate:        "2025-03-01",
			EndDate:          "2025-07-01",
			TotalLessons:     32,
			CompletedLessons: 4,
			LastPaymentDate:  "2025-04-10",
			PaymentType:      domain.PayPerLesson,
		},
	}

	return store.Dataset{
		Teachers:   teachers,
		Groups:     groups,
		ClassRooms: classrooms,
		Students:   students,
		Bookings:   weekBookings(groups, now),
	}
}

// weekBookings expands each group's weekly schedule for the week
// containing now into dated room bookings.
func weekBookings(groups []domain.Group, now time.Time) []domain.ClassRoomBooking {
	monday, sunday := timetable.WeekOf(now)

	var bookings []domain.ClassRoomBooking
	for _, group := range groups {
		for _, occurrence := range timetable.Expand(group, monday, sunday) {
			bookings = append(bookings, domain.ClassRoomBooking{
				ID:        fmt.Sprintf("booking-%s-%s-%s", group.ID, occurrence.Date, occurrence.StartTime),
				RoomID:    occurrence.RoomID,
				GroupID:   group.ID,
				Date:      occurrence.Date,
				StartTime: occurrence.StartTime,
				EndTime:   occurrence.EndTime,
				Title:     group.Name,
				Teachers:  []string{group.TeacherID},
			})
		}
	}
	return bookings
}
