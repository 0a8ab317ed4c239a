// Package billing synthesizes the payment records that should exist for a
// group's full lifetime. Generation is idempotent: periods already covered
// by an existing payment are skipped, so re-running for a fully covered
// group produces nothing.
package billing

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/example/school-dashboard/internal/domain"
)

const dateLayout = "2006-01-02"

// Options supplies the injectable dependencies and configured amounts for
// period generation.
type Options struct {
	// NewID generates payment identifiers. Defaults to a random UUID.
	NewID func() string
	// Now supplies the creation date stamped on generated payments.
	Now func() time.Time
	// DefaultBlockSize is the lesson block size used when the group does
	// not configure a positive PaymentPeriod.
	DefaultBlockSize int
	// BlockAmount is the placeholder amount for per-lesson blocks.
	BlockAmount float64
	// DefaultMonthlyFee is used when the group's MonthlyFee is unset.
	DefaultMonthlyFee float64
}

func (o Options) withDefaults() Options {
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.DefaultBlockSize <= 0 {
		o.DefaultBlockSize = domain.DefaultPaymentPeriod
	}
	return o
}

// GeneratePeriods returns the payments missing from existing for the given
// group and its enrolled students. It never mutates its inputs.
func GeneratePeriods(group domain.Group, students []domain.Student, existing []domain.Payment, opts Options) []domain.Payment {
	opts = opts.withDefaults()

	covered := make(map[string]struct{}, len(existing))
	for _, payment := range existing {
		covered[coverageKey(payment)] = struct{}{}
	}

	switch group.PaymentType {
	case domain.PayMonthly:
		return generateMonthly(group, students, covered, opts)
	default:
		// The original treats every non-monthly group as per-lesson.
		return generatePerLesson(group, students, covered, opts)
	}
}

// generatePerLesson partitions [1, TotalLessons] into consecutive blocks of
// the group's configured size; the final block may be shorter. A block is
// overdue once the group's completed lesson count has passed its end.
func generatePerLesson(group domain.Group, students []domain.Student, covered map[string]struct{}, opts Options) []domain.Payment {
	period := group.PaymentPeriod
	if period <= 0 {
		period = opts.DefaultBlockSize
	}

	created := make([]domain.Payment, 0)
	date := opts.Now().Format(dateLayout)

	for _, student := range students {
		for start := 1; start <= group.TotalLessons; start += period {
			end := start + period - 1
			if end > group.TotalLessons {
				end = group.TotalLessons
			}

			key := lessonKey(student.ID, start, end)
			if _, ok := covered[key]; ok {
				continue
			}
			covered[key] = struct{}{}

			status := domain.PaymentPending
			if group.CompletedLessons >= end {
				status = domain.PaymentOverdue
			}

			created = append(created, domain.Payment{
				ID:          opts.NewID(),
				StudentID:   student.ID,
				Amount:      opts.BlockAmount,
				Date:        date,
				Status:      status,
				Period:      fmt.Sprintf("Lessons %d-%d", start, end),
				LessonStart: start,
				LessonEnd:   end,
			})
		}
	}

	return created
}

// generateMonthly walks calendar months from the group's start date to its
// end date inclusive. Unparseable dates or an end before the start produce
// nothing.
func generateMonthly(group domain.Group, students []domain.Student, covered map[string]struct{}, opts Options) []domain.Payment {
	start, err := time.Parse(dateLayout, group.StartDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, group.EndDate)
	if err != nil || end.Before(start) {
		return nil
	}

	fee := group.MonthlyFee
	if fee <= 0 {
		fee = opts.DefaultMonthlyFee
	}

	created := make([]domain.Payment, 0)
	date := opts.Now().Format(dateLayout)

	// Normalize to the first of the month so AddDate steps exactly one
	// calendar month regardless of the start day.
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !cursor.After(last) {
		token := cursor.Format("2006-01")
		label := monthLabel(cursor)

		for _, student := range students {
			key := monthKey(student.ID, token)
			if _, ok := covered[key]; ok {
				continue
			}
			covered[key] = struct{}{}

			created = append(created, domain.Payment{
				ID:        opts.NewID(),
				StudentID: student.ID,
				Amount:    fee,
				Date:      date,
				Status:    domain.PaymentPending,
				Period:    label,
				Month:     token,
			})
		}

		cursor = cursor.AddDate(0, 1, 0)
	}

	return created
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

func coverageKey(payment domain.Payment) string {
	if payment.Month != "" {
		return monthKey(payment.StudentID, payment.Month)
	}
	return lessonKey(payment.StudentID, payment.LessonStart, payment.LessonEnd)
}

func lessonKey(studentID string, start, end int) string {
	return studentID + "|" + strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

func monthKey(studentID, token string) string {
	return studentID + "|" + token
}
