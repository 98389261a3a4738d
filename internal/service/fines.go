package service

import (
	"time"

	"github.com/openshelf/circulation-service/internal/model"
)

// overdueDays counts whole calendar days between the due date and at,
// ignoring time of day. Never negative.
func overdueDays(due, at time.Time) int {
	dueDay := truncateToDay(due)
	atDay := truncateToDay(at)
	days := int(atDay.Sub(dueDay) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AccruedFine is the live overdue penalty of an open loan, recomputed on
// every read and never persisted.
func AccruedFine(due, now time.Time, finePerDay int64) int64 {
	return int64(overdueDays(due, now)) * finePerDay
}

// FinalizeFine is the fine frozen into the loan at return time.
func FinalizeFine(due, returnDate time.Time, finePerDay int64) int64 {
	return int64(overdueDays(due, returnDate)) * finePerDay
}

// Classify derives the display state of a loan. Stored nowhere.
func Classify(loan model.Loan, now time.Time) model.LoanState {
	if loan.ReturnDate != nil {
		return model.LoanReturned
	}
	if overdueDays(loan.DueDate, now) > 0 {
		return model.LoanOverdue
	}
	return model.LoanActive
}
