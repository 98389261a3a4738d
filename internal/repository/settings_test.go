package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplySetting(t *testing.T) {
	t.Parallel()

	t.Run("numeric values override defaults", func(t *testing.T) {
		t.Parallel()
		s := settingsDefaults
		require.True(t, applySetting(&s, settingFinePerDay, "250"))
		require.True(t, applySetting(&s, settingLoanPeriodDays, "21"))
		require.True(t, applySetting(&s, settingMaxLoans, "5"))
		require.True(t, applySetting(&s, settingMaxReservations, "2"))

		require.Equal(t, int64(250), s.FinePerDay)
		require.Equal(t, 21, s.LoanPeriodDays)
		require.Equal(t, 5, s.MaxLoansPerMember)
		require.Equal(t, 2, s.MaxReservationsPerMember)
	})

	t.Run("non-numeric value reported and default kept", func(t *testing.T) {
		t.Parallel()
		s := settingsDefaults
		require.False(t, applySetting(&s, settingFinePerDay, "a dollar"))
		require.Equal(t, settingsDefaults.FinePerDay, s.FinePerDay)
	})

	t.Run("unknown key ignored", func(t *testing.T) {
		t.Parallel()
		s := settingsDefaults
		require.True(t, applySetting(&s, "reading_room_seats", "40"))
		require.Equal(t, settingsDefaults, s)
	})
}
