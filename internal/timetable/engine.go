// Package timetable expands a group's weekly class sessions into dated
// occurrences and detects room double-bookings. Detection is advisory:
// callers surface conflicts as warnings and never reject a booking.
package timetable

import (
	"sort"
	"time"

	"github.com/example/school-dashboard/internal/domain"
)

const dateLayout = "2006-01-02"

// Occurrence is one concrete, dated instance of a weekly class session.
type Occurrence struct {
	GroupID   string
	SessionID string
	RoomID    string
	Date      string
	StartTime string
	EndTime   string
}

// ParseWeekday maps a session's day name to a weekday. The second return
// value is false for unrecognized names, which are skipped by Expand.
func ParseWeekday(name string) (time.Weekday, bool) {
	switch name {
	case "Sunday":
		return time.Sunday, true
	case "Monday":
		return time.Monday, true
	case "Tuesday":
		return time.Tuesday, true
	case "Wednesday":
		return time.Wednesday, true
	case "Thursday":
		return time.Thursday, true
	case "Friday":
		return time.Friday, true
	case "Saturday":
		return time.Saturday, true
	}
	return time.Sunday, false
}

// WeekOf returns the Monday and Sunday bounding the week containing t.
func WeekOf(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	// Monday starts the week; in Go Monday == 1, Sunday == 0.
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// Expand walks the days from from to to inclusive and emits an occurrence
// for every session of the group falling on that weekday. Results are
// ordered by date, then start time, then session ID.
func Expand(group domain.Group, from, to time.Time) []Occurrence {
	if to.Before(from) {
		return nil
	}

	sessionsByDay := make(map[time.Weekday][]domain.ClassSession)
	for _, session := range group.Schedule {
		weekday, ok := ParseWeekday(session.Day)
		if !ok {
			continue
		}
		sessionsByDay[weekday] = append(sessionsByDay[weekday], session)
	}
	if len(sessionsByDay) == 0 {
		return nil
	}

	occurrences := make([]Occurrence, 0)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		sessions, ok := sessionsByDay[day.Weekday()]
		if !ok {
			continue
		}
		date := day.Format(dateLayout)
		for _, session := range sessions {
			occurrences = append(occurrences, Occurrence{
				GroupID:   group.ID,
				SessionID: session.ID,
				RoomID:    session.RoomID,
				Date:      date,
				StartTime: session.StartTime,
				EndTime:   session.EndTime,
			})
		}
	}

	sort.Slice(occurrences, func(i, j int) bool {
		if occurrences[i].Date != occurrences[j].Date {
			return occurrences[i].Date < occurrences[j].Date
		}
		if occurrences[i].StartTime != occurrences[j].StartTime {
			return occurrences[i].StartTime < occurrences[j].StartTime
		}
		return occurrences[i].SessionID < occurrences[j].SessionID
	})

	return occurrences
}
