// Package store is the single source of truth for the dashboard's entity
// collections. Every mutation updates the in-memory collection, snapshots
// the owning slot to durable storage, and emits a user-facing confirmation
// event. Snapshot failures are logged and never surfaced to callers.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/school-dashboard/internal/domain"
	"github.com/example/school-dashboard/internal/logging"
	"github.com/example/school-dashboard/internal/persistence"
)

// Dataset is the compiled-in state used for slots that are missing or
// unparseable at load time. Attendance and payments always start empty.
type Dataset struct {
	Teachers   []domain.Teacher
	Groups     []domain.Group
	ClassRooms []domain.ClassRoom
	Students   []domain.Student
	Bookings   []domain.ClassRoomBooking
}

// BillingDefaults configures the amounts and block size used by payment
// period generation.
type BillingDefaults struct {
	// BlockSize is the lesson block size for groups without a positive
	// PaymentPeriod.
	BlockSize int
	// BlockAmount is the placeholder amount stamped on per-lesson blocks.
	BlockAmount float64
	// MonthlyFee is used for monthly groups without a configured fee.
	MonthlyFee float64
}

// Options wires the store's dependencies.
type Options struct {
	// Snapshots persists slot blobs. A nil store disables persistence.
	Snapshots persistence.SnapshotStore
	// Seed supplies the fallback dataset for missing or malformed slots.
	Seed Dataset
	// Notifier receives user-facing confirmation events. Nil falls back to
	// logging each event.
	Notifier Notifier
	// IDGenerator assigns identifiers to added records. Defaults to a
	// random UUID, which stays unique under rapid successive calls.
	IDGenerator func() string
	// Now supplies timestamps for generated payments.
	Now func() time.Time
	// Billing configures payment generation amounts.
	Billing BillingDefaults
	// Logger is the fallback logger when the context carries none.
	Logger *slog.Logger
}

// Store holds the entity collections and UI-preference scalars.
type Store struct {
	mu sync.RWMutex

	teachers   []domain.Teacher
	groups     []domain.Group
	classrooms []domain.ClassRoom
	students   []domain.Student
	bookings   []domain.ClassRoomBooking
	attendance []domain.Attendance
	payments   []domain.Payment

	selectedTeacherID string
	viewMode          domain.ViewMode

	snapshots  persistence.SnapshotStore
	notifier   Notifier
	idGen      func() string
	now        func() time.Time
	billing    BillingDefaults
	logger     *slog.Logger
}

// Open constructs a store, loading every slot from the snapshot store.
// Missing slots fall back to the seed dataset (or the empty collection for
// attendance and payments); malformed slots are logged and replaced the
// same way. Open never fails on bad stored data.
func Open(ctx context.Context, opts Options) *Store {
	if opts.IDGenerator == nil {
		opts.IDGenerator = uuid.NewString
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Notifier == nil {
		opts.Notifier = NewLogNotifier(opts.Logger)
	}
	if opts.Billing.BlockSize <= 0 {
		opts.Billing.BlockSize = domain.DefaultPaymentPeriod
	}

	s := &Store{
		snapshots: opts.Snapshots,
		notifier:  opts.Notifier,
		idGen:     opts.IDGenerator,
		now:       opts.Now,
		billing:   opts.Billing,
		logger:    opts.Logger,
		viewMode:  domain.ViewWeek,
	}

	s.teachers = loadCollection(ctx, s, persistence.SlotTeachers, opts.Seed.Teachers)
	s.groups = loadCollection(ctx, s, persistence.SlotGroups, opts.Seed.Groups)
	s.classrooms = loadCollection(ctx, s, persistence.SlotClassRooms, opts.Seed.ClassRooms)
	s.students = loadCollection(ctx, s, persistence.SlotStudents, opts.Seed.Students)
	s.bookings = loadCollection(ctx, s, persistence.SlotBookings, opts.Seed.Bookings)
	s.attendance = loadCollection(ctx, s, persistence.SlotAttendance, []domain.Attendance{})
	s.payments = loadCollection(ctx, s, persistence.SlotPayments, []domain.Payment{})

	s.selectedTeacherID = loadScalar(ctx, s, persistence.SlotSelectedTeacherID, "")
	s.viewMode = loadScalar(ctx, s, persistence.SlotViewMode, domain.ViewWeek)

	return s
}

func loadCollection[T any](ctx context.Context, s *Store, slot persistence.Slot, fallback []T) []T {
	blob, ok := s.loadSlot(ctx, slot)
	if !ok {
		return append([]T(nil), fallback...)
	}
	var out []T
	if err := json.Unmarshal(blob, &out); err != nil {
		s.log(ctx, "Open").Warn("stored slot is malformed, reverting to defaults", "slot", slot, "error", err)
		return append([]T(nil), fallback...)
	}
	return out
}

func loadScalar[T ~string](ctx context.Context, s *Store, slot persistence.Slot, fallback T) T {
	blob, ok := s.loadSlot(ctx, slot)
	if !ok {
		return fallback
	}
	var out T
	if err := json.Unmarshal(blob, &out); err != nil {
		s.log(ctx, "Open").Warn("stored slot is malformed, reverting to defaults", "slot", slot, "error", err)
		return fallback
	}
	return out
}

func (s *Store) loadSlot(ctx context.Context, slot persistence.Slot) ([]byte, bool) {
	if s.snapshots == nil {
		return nil, false
	}
	blob, err := s.snapshots.Load(ctx, slot)
	if err != nil {
		return nil, false
	}
	return blob, true
}

func (s *Store) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = s.logger
	}
	if logger == nil {
		logger = slog.Default()
	}
	pairs := []any{"service", "Store"}
	if operation != "" {
		pairs = append(pairs, "operation", operation)
	}
	if len(attrs) > 0 {
		pairs = append(pairs, attrs...)
	}
	return logger.With(pairs...)
}

// snapshotWrite is a marshaled slot value captured under the lock and
// written after it is released.
type snapshotWrite struct {
	slot persistence.Slot
	blob []byte
}

func (s *Store) marshalSlot(ctx context.Context, operation string, slot persistence.Slot, value any) snapshotWrite {
	blob, err := json.Marshal(value)
	if err != nil {
		// Unreachable for the domain types; kept so a future type change
		// cannot silently drop a snapshot.
		s.log(ctx, operation).Error("failed to marshal slot", "slot", slot, "error", err)
		return snapshotWrite{}
	}
	return snapshotWrite{slot: slot, blob: blob}
}

// persist writes the captured snapshots. Failures are logged and swallowed:
// the in-memory mutation has already happened and stays authoritative.
func (s *Store) persist(ctx context.Context, operation string, writes ...snapshotWrite) {
	if s.snapshots == nil {
		return
	}
	for _, write := range writes {
		if write.slot == "" {
			continue
		}
		if err := s.snapshots.Save(ctx, write.slot, write.blob); err != nil {
			s.log(ctx, operation).Error("snapshot write failed", "slot", write.slot, "error", err, "error_kind", "persistence")
		}
	}
}

func (s *Store) notify(ctx context.Context, title, description string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, Event{Title: title, Description: description})
}

func describeCount(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
