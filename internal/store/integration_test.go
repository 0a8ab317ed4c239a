package store_test

import (
	"context"
	"testing"

	"github.com/example/school-dashboard/internal/domain"
	"github.com/example/school-dashboard/internal/store"
	"github.com/example/school-dashboard/internal/testfixtures"
)

// The store and the SQLite snapshot backend together survive a restart:
// whatever was mutated before reopening is what a fresh store hydrates.
func TestStorePersistsAcrossReopen(t *testing.T) {
	snapshots := testfixtures.NewSQLiteStore(t)
	clock := testfixtures.NewClock(testfixtures.ReferenceTime())
	ids := testfixtures.NewIDGenerator("id")

	group := testfixtures.NewGroupFixture(testfixtures.WithGroupLessons(16, 8))
	student := testfixtures.NewStudentFixture(testfixtures.WithStudentGroup(group.ID))

	s := store.Open(context.Background(), store.Options{
		Snapshots:   snapshots,
		Seed:        store.Dataset{Groups: []domain.Group{group}, Students: []domain.Student{student}},
		IDGenerator: ids.NextFunc(),
		Now:         clock.NowFunc(),
	})

	added := s.AddTeacher(context.Background(), domain.Teacher{Name: "Ivan Ivanov", Subject: "Programming"})
	s.RecordAttendance(context.Background(), domain.Attendance{
		GroupID:         group.ID,
		Date:            "2025-04-15",
		PresentStudents: []string{student.ID},
	})
	s.SetViewMode(context.Background(), domain.ViewMonth)
	if created := s.GeneratePaymentPeriods(context.Background(), group.ID); created == 0 {
		t.Fatal("expected payment periods to be generated")
	}

	reopened := store.Open(context.Background(), store.Options{
		Snapshots:   snapshots,
		IDGenerator: ids.NextFunc(),
		Now:         clock.NowFunc(),
	})

	teachers := reopened.Teachers()
	if len(teachers) != 1 || teachers[0].ID != added.ID {
		t.Fatalf("expected teacher %q after reopen, got %v", added.ID, teachers)
	}
	if got := reopened.GroupAttendance(group.ID); len(got) != 1 || got[0].SessionID != domain.SessionLabel(group.ID, "2025-04-15") {
		t.Fatalf("expected attendance to survive reopen, got %v", got)
	}
	if got := reopened.ViewMode(); got != domain.ViewMonth {
		t.Fatalf("expected persisted view mode, got %q", got)
	}
	if got := reopened.StudentPayments(student.ID); len(got) == 0 {
		t.Fatalf("expected generated payments to survive reopen, got %v", got)
	}
}
