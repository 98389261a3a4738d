package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/circulation-service/internal/errs"
	"github.com/openshelf/circulation-service/internal/model"
)

var reservationColumns = []string{
	"r.id", "r.reservation_uid", "b.book_uid", "m.member_uid", "c.copy_uid",
	"r.status", "r.reserved_at", "r.expires_at",
}

func reservationQuery() sq.SelectBuilder {
	return qb.Select(reservationColumns...).
		From(reservationsTableName + " r").
		Join(fmt.Sprintf("%s b on b.id = r.book_id", booksTableName)).
		Join(fmt.Sprintf("%s m on m.id = r.member_id", membersTableName)).
		LeftJoin(fmt.Sprintf("%s c on c.id = r.copy_id", copiesTableName))
}

// CreateReservation inserts a PENDING reservation. No copy is touched: a
// pending reservation is a request, not a hold. The partial unique index on
// live reservations turns a duplicate into errs.ErrDuplicateReservation.
func (r *repository) CreateReservation(ctx context.Context, bookUid, memberUid string, reservedAt, expiresAt time.Time) (model.Reservation, error) {
	reservUid := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
	insert into reservations (reservation_uid, book_id, member_id, status, reserved_at, expires_at)
	values ($1,
	        (select id from books where book_uid = $2),
	        (select id from members where member_uid = $3),
	        'PENDING', $4, $5)`,
		reservUid, bookUid, memberUid, reservedAt, expiresAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Reservation{}, errs.ErrDuplicateReservation
		}
		r.log.Error("CreateReservation", zap.String("bookUid", bookUid), zap.Error(err))
		return model.Reservation{}, err
	}
	return r.GetReservation(ctx, reservUid)
}

func (r *repository) GetReservation(ctx context.Context, reservUid string) (model.Reservation, error) {
	query, args, err := reservationQuery().
		Where(sq.Eq{"r.reservation_uid": reservUid}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrReservationNotFound
		}
		return model.Reservation{}, err
	}
	return rsv, nil
}

// ApproveReservation earmarks one copy for the reservation: copy
// AVAILABLE->RESERVED and reservation PENDING->RESERVED with the copy
// recorded, one transaction. Either side losing its race aborts both.
func (r *repository) ApproveReservation(ctx context.Context, reservUid, copyUid string) (model.Reservation, error) {
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var copyID int
		err := tx.GetContext(ctx, &copyID,
			`update copies set status = 'RESERVED' where copy_uid = $1 and status = 'AVAILABLE' returning id`,
			copyUid)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrConflict
			}
			return err
		}
		res, err := tx.ExecContext(ctx, `
	update reservations set status = 'RESERVED', copy_id = $2
	where reservation_uid = $1 and status = 'PENDING'`, reservUid, copyID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return errs.ErrConflict
		}
		return nil
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return r.GetReservation(ctx, reservUid)
}

// DisApproveReservation reverses an approval: reservation back to PENDING
// with the copy reference cleared, assigned copy RESERVED->AVAILABLE.
func (r *repository) DisApproveReservation(ctx context.Context, reservUid string) (model.Reservation, error) {
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var rsv struct {
			ID     int           `db:"id"`
			CopyID sql.NullInt64 `db:"copy_id"`
		}
		err := tx.GetContext(ctx, &rsv, `
	select id, copy_id from reservations
	where reservation_uid = $1 and status = 'RESERVED'`, reservUid)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return reservationMissingOr(ctx, tx, reservUid, errs.ErrConflict)
			}
			return err
		}
		res, err := tx.ExecContext(ctx,
			`update reservations set status = 'PENDING', copy_id = null where id = $1 and status = 'RESERVED'`,
			rsv.ID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return errs.ErrConflict
		}
		return transitionStatusTx(ctx, tx, int(rsv.CopyID.Int64), model.CopyReserved, model.CopyAvailable)
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return r.GetReservation(ctx, reservUid)
}

// CancelReservation marks a live reservation CANCELLED and releases the
// assigned copy when one had been earmarked.
func (r *repository) CancelReservation(ctx context.Context, reservUid string) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		var copyID sql.NullInt64
		err := tx.GetContext(ctx, &copyID, `
	update reservations set status = 'CANCELLED'
	where reservation_uid = $1 and status in ('PENDING', 'RESERVED')
	returning copy_id`, reservUid)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return reservationMissingOr(ctx, tx, reservUid, errs.ErrConflict)
			}
			return err
		}
		if !copyID.Valid {
			return nil
		}
		return transitionStatusTx(ctx, tx, int(copyID.Int64), model.CopyReserved, model.CopyAvailable)
	})
}

// FulfillReservation converts a RESERVED reservation into a loan against its
// earmarked copy, bypassing availability search: copy RESERVED->BORROWED,
// loan inserted, reservation FULFILLED, one transaction.
func (r *repository) FulfillReservation(ctx context.Context, reservUid, librarianUid string, loanDate, dueDate time.Time) (model.Loan, error) {
	loanUid := uuid.NewString()
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var rsv struct {
			CopyID    sql.NullInt64 `db:"copy_id"`
			MemberUid string        `db:"member_uid"`
		}
		err := tx.GetContext(ctx, &rsv, `
	select r.copy_id, m.member_uid from reservations r
	join members m on m.id = r.member_id
	where r.reservation_uid = $1 and r.status = 'RESERVED'`, reservUid)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return reservationMissingOr(ctx, tx, reservUid, errs.ErrConflict)
			}
			return err
		}
		copyID := int(rsv.CopyID.Int64)
		if err := transitionStatusTx(ctx, tx, copyID, model.CopyReserved, model.CopyBorrowed); err != nil {
			return err
		}
		if err := insertLoanTx(ctx, tx, loanUid, copyID, rsv.MemberUid, librarianUid, loanDate, dueDate); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`update reservations set status = 'FULFILLED' where reservation_uid = $1`, reservUid)
		return err
	})
	if err != nil {
		return model.Loan{}, err
	}
	return r.GetLoan(ctx, loanUid)
}

func (r *repository) ListReservations(ctx context.Context, memberUid string) ([]model.Reservation, error) {
	query, args, err := reservationQuery().
		Where(sq.Eq{"m.member_uid": memberUid}).
		OrderBy("r.reserved_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Reservation
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CountOpenReservations(ctx context.Context, memberUid string) (int, error) {
	q := `
	select count(*) from reservations r
	join members m on m.id = r.member_id
	where m.member_uid = $1 and r.status in ('PENDING', 'RESERVED')
`
	var count int
	if err := r.db.QueryRowContext(ctx, q, memberUid).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ExpireReservations is the lazy PENDING->EXPIRED sweep driven by the
// scheduler collaborator. RESERVED holds are librarian-owned and untouched.
func (r *repository) ExpireReservations(ctx context.Context, now time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`update reservations set status = 'EXPIRED' where status = 'PENDING' and expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func reservationMissingOr(ctx context.Context, tx *sqlx.Tx, reservUid string, fallback error) error {
	var exists bool
	if err := tx.GetContext(ctx, &exists,
		`select exists(select 1 from reservations where reservation_uid = $1)`, reservUid); err != nil {
		return err
	}
	if !exists {
		return errs.ErrReservationNotFound
	}
	return fallback
}
