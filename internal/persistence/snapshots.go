// Package persistence defines the snapshot storage contract used by the
// entity store. State is persisted as whole-collection JSON blobs under a
// fixed set of named slots, overwritten wholesale on every mutation.
package persistence

import "context"

// Slot names a durable storage slot. Each slot holds the full current
// snapshot of one collection or UI-preference scalar.
type Slot string

const (
	SlotTeachers          Slot = "teachers"
	SlotGroups            Slot = "groups"
	SlotClassRooms        Slot = "classrooms"
	SlotStudents          Slot = "students"
	SlotBookings          Slot = "bookings"
	SlotAttendance        Slot = "attendance"
	SlotPayments          Slot = "payments"
	SlotSelectedTeacherID Slot = "selected-teacher-id"
	SlotViewMode          Slot = "view-mode"
)

// Slots lists every known slot in load order.
func Slots() []Slot {
	return []Slot{
		SlotTeachers,
		SlotGroups,
		SlotClassRooms,
		SlotStudents,
		SlotBookings,
		SlotAttendance,
		SlotPayments,
		SlotSelectedTeacherID,
		SlotViewMode,
	}
}

// SnapshotStore persists and restores slot blobs.
type SnapshotStore interface {
	// Load returns the blob stored under the slot, or ErrNotFound when the
	// slot has never been written.
	Load(ctx context.Context, slot Slot) ([]byte, error)
	// Save overwrites the slot with the provided blob.
	Save(ctx context.Context, slot Slot, blob []byte) error
}
