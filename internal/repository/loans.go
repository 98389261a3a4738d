package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/circulation-service/internal/errs"
	"github.com/openshelf/circulation-service/internal/model"
)

var loanColumns = []string{
	"l.id", "l.loan_uid", "c.copy_uid", "b.book_uid", "m.member_uid", "l.librarian_uid",
	"l.loan_date", "l.due_date", "l.return_date", "l.fine_amount", "l.fine_paid_at", "l.renewals",
}

func loanQuery() sq.SelectBuilder {
	return qb.Select(loanColumns...).
		From(loansTableName + " l").
		Join(fmt.Sprintf("%s c on c.id = l.copy_id", copiesTableName)).
		Join(fmt.Sprintf("%s b on b.id = c.book_id", booksTableName)).
		Join(fmt.Sprintf("%s m on m.id = l.member_id", membersTableName))
}

// CreateLoan inserts the loan row and flips the copy AVAILABLE->BORROWED in
// one transaction. A lost race on the copy status rolls the loan back and
// surfaces errs.ErrConflict, so no loan row ever references a copy that is
// not BORROWED.
func (r *repository) CreateLoan(ctx context.Context, copyUid, memberUid, librarianUid string, loanDate, dueDate time.Time) (model.Loan, error) {
	loanUid := uuid.NewString()
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var copyID int
		err := tx.GetContext(ctx, &copyID,
			`update copies set status = 'BORROWED' where copy_uid = $1 and status = 'AVAILABLE' returning id`,
			copyUid)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrConflict
			}
			return err
		}
		return insertLoanTx(ctx, tx, loanUid, copyID, memberUid, librarianUid, loanDate, dueDate)
	})
	if err != nil {
		return model.Loan{}, err
	}
	return r.GetLoan(ctx, loanUid)
}

func insertLoanTx(ctx context.Context, tx *sqlx.Tx, loanUid string, copyID int, memberUid, librarianUid string, loanDate, dueDate time.Time) error {
	var librarian *string
	if librarianUid != "" {
		librarian = &librarianUid
	}
	_, err := tx.ExecContext(ctx, `
	insert into loans (loan_uid, copy_id, member_id, librarian_uid, loan_date, due_date)
	values ($1, $2, (select id from members where member_uid = $3), $4, $5, $6)`,
		loanUid, copyID, memberUid, librarian, loanDate, dueDate)
	return err
}

func (r *repository) GetLoan(ctx context.Context, loanUid string) (model.Loan, error) {
	query, args, err := loanQuery().
		Where(sq.Eq{"l.loan_uid": loanUid}).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrLoanNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

// CloseLoan freezes the finalized fine into the row, sets the return date
// and releases the copy, all in one transaction.
func (r *repository) CloseLoan(ctx context.Context, loanUid string, returnDate time.Time, fine int64) (model.Loan, error) {
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var copyID int
		err := tx.GetContext(ctx, &copyID, `
	update loans set return_date = $2, fine_amount = $3
	where loan_uid = $1 and return_date is null
	returning copy_id`, loanUid, returnDate, fine)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				var exists bool
				if err := tx.GetContext(ctx, &exists,
					`select exists(select 1 from loans where loan_uid = $1)`, loanUid); err != nil {
					return err
				}
				if !exists {
					return errs.ErrLoanNotFound
				}
				return errs.ErrAlreadyReturned
			}
			return err
		}
		return transitionStatusTx(ctx, tx, copyID, model.CopyBorrowed, model.CopyAvailable)
	})
	if err != nil {
		return model.Loan{}, err
	}
	return r.GetLoan(ctx, loanUid)
}

func (r *repository) RenewLoan(ctx context.Context, loanUid string, newDue time.Time) (model.Loan, error) {
	res, err := r.db.ExecContext(ctx, `
	update loans set due_date = $2, renewals = renewals + 1
	where loan_uid = $1 and return_date is null`, loanUid, newDue)
	if err != nil {
		return model.Loan{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Loan{}, err
	}
	if n == 0 {
		return model.Loan{}, errs.ErrAlreadyReturned
	}
	return r.GetLoan(ctx, loanUid)
}

func (r *repository) PayFine(ctx context.Context, loanUid string, paidAt time.Time) error {
	var loan struct {
		ReturnDate *time.Time `db:"return_date"`
		FineAmount int64      `db:"fine_amount"`
		FinePaidAt *time.Time `db:"fine_paid_at"`
	}
	err := r.db.GetContext(ctx, &loan,
		`select return_date, fine_amount, fine_paid_at from loans where loan_uid = $1`, loanUid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrLoanNotFound
		}
		return err
	}
	if loan.FinePaidAt != nil {
		return errs.ErrAlreadyPaid
	}
	if loan.ReturnDate == nil || loan.FineAmount == 0 {
		return errs.ErrNoFineOwed
	}

	res, err := r.db.ExecContext(ctx, `
	update loans set fine_paid_at = $2
	where loan_uid = $1 and fine_paid_at is null and fine_amount > 0 and return_date is not null`,
		loanUid, paidAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrAlreadyPaid
	}
	r.log.Debug("PayFine", zap.String("loanUid", loanUid))
	return nil
}

func (r *repository) ListOpenLoans(ctx context.Context, memberUid string) ([]model.Loan, error) {
	query, args, err := loanQuery().
		Where(sq.Eq{"m.member_uid": memberUid}).
		Where("l.return_date is null").
		OrderBy("l.due_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) ListUnpaidFines(ctx context.Context, memberUid string) ([]model.Loan, error) {
	query, args, err := loanQuery().
		Where(sq.Eq{"m.member_uid": memberUid}).
		Where("l.return_date is not null").
		Where(sq.Gt{"l.fine_amount": 0}).
		Where("l.fine_paid_at is null").
		OrderBy("l.return_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) CountOpenLoans(ctx context.Context, memberUid string) (int, error) {
	q := `
	select count(*) from loans l
	join members m on m.id = l.member_id
	where m.member_uid = $1 and l.return_date is null
`
	var count int
	if err := r.db.QueryRowContext(ctx, q, memberUid).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
