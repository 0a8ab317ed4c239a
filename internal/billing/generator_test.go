package billing

import (
	"fmt"
	"testing"
	"time"

	"github.com/example/school-dashboard/internal/domain"
)

func testOptions() Options {
	counter := 0
	return Options{
		NewID: func() string {
			counter++
			return fmt.Sprintf("payment-%d", counter)
		},
		Now:               func() time.Time { return time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC) },
		BlockAmount:       5000,
		DefaultMonthlyFee: 8000,
	}
}

func perLessonGroup() domain.Group {
	return domain.Group{
		ID:               "group-1",
		Name:             "Programming 1",
		TotalLessons:     32,
		CompletedLessons: 10,
		PaymentType:      domain.PayPerLesson,
		PaymentPeriod:    8,
	}
}

func TestGeneratePeriods_PerLesson(t *testing.T) {
	student := domain.Student{ID: "student-1", GroupID: "group-1"}

	t.Run("tiles the lesson range into blocks with derived statuses", func(t *testing.T) {
		payments := GeneratePeriods(perLessonGroup(), []domain.Student{student}, nil, testOptions())

		if len(payments) != 4 {
			t.Fatalf("expected 4 payments for 32 lessons in blocks of 8, got %d", len(payments))
		}

		wantRanges := [][2]int{{1, 8}, {9, 16}, {17, 24}, {25, 32}}
		wantStatuses := []domain.PaymentStatus{
			domain.PaymentOverdue,
			domain.PaymentPending,
			domain.PaymentPending,
			domain.PaymentPending,
		}
		for i, payment := range payments {
			if payment.LessonStart != wantRanges[i][0] || payment.LessonEnd != wantRanges[i][1] {
				t.Fatalf("expected block %v at index %d, got %d-%d", wantRanges[i], i, payment.LessonStart, payment.LessonEnd)
			}
			if payment.Status != wantStatuses[i] {
				t.Fatalf("expected status %q for block %d-%d, got %q", wantStatuses[i], payment.LessonStart, payment.LessonEnd, payment.Status)
			}
			wantLabel := fmt.Sprintf("Lessons %d-%d", payment.LessonStart, payment.LessonEnd)
			if payment.Period != wantLabel {
				t.Fatalf("expected label %q, got %q", wantLabel, payment.Period)
			}
			if payment.StudentID != student.ID {
				t.Fatalf("expected payment to belong to %q, got %q", student.ID, payment.StudentID)
			}
			if payment.Amount != 5000 {
				t.Fatalf("expected placeholder amount 5000, got %v", payment.Amount)
			}
			if payment.Month != "" {
				t.Fatalf("expected no month token on per-lesson payment, got %q", payment.Month)
			}
		}
	})

	t.Run("shortens the final block when the total is not a multiple", func(t *testing.T) {
		group := perLessonGroup()
		group.TotalLessons = 10
		group.PaymentPeriod = 4
		group.CompletedLessons = 0

		payments := GeneratePeriods(group, []domain.Student{student}, nil, testOptions())

		if len(payments) != 3 {
			t.Fatalf("expected 3 blocks for 10 lessons in blocks of 4, got %d", len(payments))
		}
		last := payments[2]
		if last.LessonStart != 9 || last.LessonEnd != 10 {
			t.Fatalf("expected final block 9-10, got %d-%d", last.LessonStart, last.LessonEnd)
		}
	})

	t.Run("blocks tile the range with no gaps or overlaps", func(t *testing.T) {
		group := perLessonGroup()
		group.TotalLessons = 23
		group.PaymentPeriod = 7

		payments := GeneratePeriods(group, []domain.Student{student}, nil, testOptions())

		next := 1
		for _, payment := range payments {
			if payment.LessonStart != next {
				t.Fatalf("expected block to start at %d, got %d", next, payment.LessonStart)
			}
			next = payment.LessonEnd + 1
		}
		if next != group.TotalLessons+1 {
			t.Fatalf("expected blocks to cover through lesson %d, got %d", group.TotalLessons, next-1)
		}
	})

	t.Run("a new group never produces overdue payments", func(t *testing.T) {
		group := perLessonGroup()
		group.CompletedLessons = 0

		payments := GeneratePeriods(group, []domain.Student{student}, nil, testOptions())

		for _, payment := range payments {
			if payment.Status != domain.PaymentPending {
				t.Fatalf("expected all pending for a fresh group, got %q for %q", payment.Status, payment.Period)
			}
		}
	})

	t.Run("completed count inside a block keeps it pending", func(t *testing.T) {
		group := perLessonGroup()
		group.CompletedLessons = 8

		payments := GeneratePeriods(group, []domain.Student{student}, nil, testOptions())

		if payments[0].Status != domain.PaymentOverdue {
			t.Fatalf("expected block 1-8 overdue at 8 completed lessons, got %q", payments[0].Status)
		}
		if payments[1].Status != domain.PaymentPending {
			t.Fatalf("expected block 9-16 pending at 8 completed lessons, got %q", payments[1].Status)
		}
	})

	t.Run("a non-positive period falls back to the default block size", func(t *testing.T) {
		group := perLessonGroup()
		group.PaymentPeriod = -3

		payments := GeneratePeriods(group, []domain.Student{student}, nil, testOptions())

		if len(payments) != 4 {
			t.Fatalf("expected default block size of 8 to apply, got %d payments", len(payments))
		}
		if payments[0].LessonEnd != 8 {
			t.Fatalf("expected first block to end at 8, got %d", payments[0].LessonEnd)
		}
	})

	t.Run("zero total lessons produces nothing", func(t *testing.T) {
		group := perLessonGroup()
		group.TotalLessons = 0

		if payments := GeneratePeriods(group, []domain.Student{student}, nil, testOptions()); len(payments) != 0 {
			t.Fatalf("expected no payments, got %d", len(payments))
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		group := perLessonGroup()
		first := GeneratePeriods(group, []domain.Student{student}, nil, testOptions())

		second := GeneratePeriods(group, []domain.Student{student}, first, testOptions())
		if len(second) != 0 {
			t.Fatalf("expected full coverage to generate nothing, got %d payments", len(second))
		}
	})

	t.Run("fills only the gaps for partial coverage", func(t *testing.T) {
		group := perLessonGroup()
		existing := []domain.Payment{
			{ID: "old-1", StudentID: student.ID, LessonStart: 1, LessonEnd: 8},
			{ID: "old-2", StudentID: student.ID, LessonStart: 17, LessonEnd: 24},
		}

		payments := GeneratePeriods(group, []domain.Student{student}, existing, testOptions())

		if len(payments) != 2 {
			t.Fatalf("expected 2 missing blocks, got %d", len(payments))
		}
		if payments[0].LessonStart != 9 || payments[1].LessonStart != 25 {
			t.Fatalf("expected blocks 9-16 and 25-32, got %d and %d", payments[0].LessonStart, payments[1].LessonStart)
		}
	})

	t.Run("covers a student added mid-cycle without touching others", func(t *testing.T) {
		group := perLessonGroup()
		first := domain.Student{ID: "student-1", GroupID: group.ID}
		second := domain.Student{ID: "student-2", GroupID: group.ID}

		existing := GeneratePeriods(group, []domain.Student{first}, nil, testOptions())
		payments := GeneratePeriods(group, []domain.Student{first, second}, existing, testOptions())

		if len(payments) != 4 {
			t.Fatalf("expected 4 payments for the new student only, got %d", len(payments))
		}
		for _, payment := range payments {
			if payment.StudentID != second.ID {
				t.Fatalf("expected payments only for %q, got one for %q", second.ID, payment.StudentID)
			}
		}
	})
}

func monthlyGroup() domain.Group {
	return domain.Group{
		ID:          "group-2",
		Name:        "Web Development 1",
		StartDate:   "2025-01-15",
		EndDate:     "2025-05-15",
		PaymentType: domain.PayMonthly,
		MonthlyFee:  9500,
	}
}

func TestGeneratePeriods_Monthly(t *testing.T) {
	student := domain.Student{ID: "student-1", GroupID: "group-2"}

	t.Run("creates one payment per calendar month inclusive", func(t *testing.T) {
		payments := GeneratePeriods(monthlyGroup(), []domain.Student{student}, nil, testOptions())

		if len(payments) != 5 {
			t.Fatalf("expected 5 months from January to May, got %d", len(payments))
		}

		wantTokens := []string{"2025-01", "2025-02", "2025-03", "2025-04", "2025-05"}
		for i, payment := range payments {
			if payment.Month != wantTokens[i] {
				t.Fatalf("expected month token %q at index %d, got %q", wantTokens[i], i, payment.Month)
			}
			if payment.Status != domain.PaymentPending {
				t.Fatalf("expected monthly payments to start pending, got %q", payment.Status)
			}
			if payment.Amount != 9500 {
				t.Fatalf("expected configured monthly fee, got %v", payment.Amount)
			}
			if payment.LessonStart != 0 || payment.LessonEnd != 0 {
				t.Fatalf("expected no lesson range on monthly payment, got %d-%d", payment.LessonStart, payment.LessonEnd)
			}
		}

		if payments[0].Period != "January 2025" {
			t.Fatalf("expected month name label, got %q", payments[0].Period)
		}
	})

	t.Run("falls back to the default fee when the group has none", func(t *testing.T) {
		group := monthlyGroup()
		group.MonthlyFee = 0

		payments := GeneratePeriods(group, []domain.Student{student}, nil, testOptions())

		if len(payments) == 0 || payments[0].Amount != 8000 {
			t.Fatalf("expected default monthly fee 8000, got %+v", payments)
		}
	})

	t.Run("an end date before the start date produces nothing", func(t *testing.T) {
		group := monthlyGroup()
		group.StartDate = "2025-05-15"
		group.EndDate = "2025-01-15"

		if payments := GeneratePeriods(group, []domain.Student{student}, nil, testOptions()); len(payments) != 0 {
			t.Fatalf("expected no payments, got %d", len(payments))
		}
	})

	t.Run("unparseable dates produce nothing", func(t *testing.T) {
		group := monthlyGroup()
		group.StartDate = "not-a-date"

		if payments := GeneratePeriods(group, []domain.Student{student}, nil, testOptions()); len(payments) != 0 {
			t.Fatalf("expected no payments, got %d", len(payments))
		}
	})

	t.Run("is idempotent across invocations", func(t *testing.T) {
		group := monthlyGroup()
		first := GeneratePeriods(group, []domain.Student{student}, nil, testOptions())

		second := GeneratePeriods(group, []domain.Student{student}, first, testOptions())
		if len(second) != 0 {
			t.Fatalf("expected full coverage to generate nothing, got %d", len(second))
		}
	})

	t.Run("fills months missing for one student only", func(t *testing.T) {
		group := monthlyGroup()
		other := domain.Student{ID: "student-2", GroupID: group.ID}
		existing := GeneratePeriods(group, []domain.Student{student}, nil, testOptions())

		payments := GeneratePeriods(group, []domain.Student{student, other}, existing, testOptions())

		if len(payments) != 5 {
			t.Fatalf("expected 5 payments for the new student, got %d", len(payments))
		}
		for _, payment := range payments {
			if payment.StudentID != other.ID {
				t.Fatalf("expected payments only for %q, got one for %q", other.ID, payment.StudentID)
			}
		}
	})
}
