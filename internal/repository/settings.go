package repository

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/circulation-service/internal/errs"
	"github.com/openshelf/circulation-service/internal/model"
)

const (
	settingFinePerDay      = "fine_per_day"
	settingLoanPeriodDays  = "loan_period_days"
	settingMaxLoans        = "max_loans_per_member"
	settingMaxReservations = "max_reservations_per_member"
)

// defaults keep a fresh database sane when a settings row is missing.
var settingsDefaults = model.Settings{
	FinePerDay:               100,
	LoanPeriodDays:           14,
	MaxLoansPerMember:        3,
	MaxReservationsPerMember: 3,
}

func (r *repository) GetSettings(ctx context.Context) (model.Settings, error) {
	rows, err := r.db.QueryContext(ctx, `select key, value from settings`)
	if err != nil {
		return model.Settings{}, err
	}
	defer rows.Close()

	s := settingsDefaults
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return model.Settings{}, err
		}
		if !applySetting(&s, key, value) {
			r.log.Warn("non-numeric setting skipped",
				zap.String("key", key), zap.String("value", value))
		}
	}
	return s, rows.Err()
}

// applySetting parses one settings row into s. A value that is not an
// integer reports false and leaves the default in place.
func applySetting(s *model.Settings, key, value string) bool {
	n, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	switch key {
	case settingFinePerDay:
		s.FinePerDay = int64(n)
	case settingLoanPeriodDays:
		s.LoanPeriodDays = n
	case settingMaxLoans:
		s.MaxLoansPerMember = n
	case settingMaxReservations:
		s.MaxReservationsPerMember = n
	}
	return true
}

func (r *repository) GetMemberStatus(ctx context.Context, memberUid string) (model.MemberStatus, error) {
	var status model.MemberStatus
	err := r.db.GetContext(ctx, &status,
		`select status from members where member_uid = $1`, memberUid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", err
	}
	return status, nil
}
