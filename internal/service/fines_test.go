package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openshelf/circulation-service/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAccruedFine(t *testing.T) {
	t.Parallel()
	const finePerDay = int64(100)

	tests := []struct {
		name string
		due  time.Time
		now  time.Time
		want int64
	}{
		{
			name: "not due yet",
			due:  date(2026, 3, 20),
			now:  date(2026, 3, 10),
			want: 0,
		},
		{
			name: "due today",
			due:  date(2026, 3, 10),
			now:  date(2026, 3, 10),
			want: 0,
		},
		{
			name: "five days overdue",
			due:  date(2026, 3, 5),
			now:  date(2026, 3, 10),
			want: 500,
		},
		{
			name: "time of day ignored",
			due:  time.Date(2026, 3, 5, 23, 30, 0, 0, time.UTC),
			now:  time.Date(2026, 3, 10, 0, 15, 0, 0, time.UTC),
			want: 500,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, AccruedFine(tt.due, tt.now, finePerDay))
		})
	}
}

func TestFinalizeFine(t *testing.T) {
	t.Parallel()
	require.Equal(t, int64(500), FinalizeFine(date(2026, 3, 5), date(2026, 3, 10), 100))
	require.Equal(t, int64(0), FinalizeFine(date(2026, 3, 5), date(2026, 3, 1), 100))
}

func TestClassify(t *testing.T) {
	t.Parallel()
	now := date(2026, 3, 10)
	returned := date(2026, 3, 9)

	require.Equal(t, model.LoanActive, Classify(model.Loan{DueDate: date(2026, 3, 10)}, now))
	require.Equal(t, model.LoanActive, Classify(model.Loan{DueDate: date(2026, 3, 20)}, now))
	require.Equal(t, model.LoanOverdue, Classify(model.Loan{DueDate: date(2026, 3, 9)}, now))
	require.Equal(t, model.LoanReturned, Classify(model.Loan{DueDate: date(2026, 3, 9), ReturnDate: &returned}, now))
}
