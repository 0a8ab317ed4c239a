package timetable

import "github.com/example/school-dashboard/internal/domain"

// Conflict reports that a booking shares a room and an overlapping time
// window with another booking on the same date.
type Conflict struct {
	BookingID     string
	WithBookingID string
	RoomID        string
	Date          string
}

// DetectRoomConflicts identifies room conflicts for the candidate booking
// against the existing ones. The candidate itself (matched by ID) is
// skipped so updates do not conflict with their own prior version.
//
// Times are HH:MM strings; lexicographic comparison matches chronological
// order for that format. Bookings that merely touch (one ends exactly when
// the other starts) do not conflict.
func DetectRoomConflicts(existing []domain.ClassRoomBooking, candidate domain.ClassRoomBooking) []Conflict {
	var conflicts []Conflict
	for _, other := range existing {
		if other.ID == candidate.ID {
			continue
		}
		if other.RoomID != candidate.RoomID || other.Date != candidate.Date {
			continue
		}
		if candidate.StartTime < other.EndTime && other.StartTime < candidate.EndTime {
			conflicts = append(conflicts, Conflict{
				BookingID:     candidate.ID,
				WithBookingID: other.ID,
				RoomID:        candidate.RoomID,
				Date:          candidate.Date,
			})
		}
	}
	return conflicts
}
