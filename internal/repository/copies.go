package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/circulation-service/internal/errs"
	"github.com/openshelf/circulation-service/internal/model"
)

var copyColumns = []string{"c.id", "c.copy_uid", "b.book_uid", "c.seq_no", "c.status", "c.condition", "c.location", "c.acquired_at"}

func copyQuery() sq.SelectBuilder {
	return qb.Select(copyColumns...).
		From(copiesTableName + " c").
		Join(fmt.Sprintf("%s b on b.id = c.book_id", booksTableName))
}

func (r *repository) FindAvailableCopy(ctx context.Context, bookUid string) (model.Copy, error) {
	query, args, err := copyQuery().
		Where(sq.Eq{"b.book_uid": bookUid}).
		Where(sq.Eq{"c.status": model.CopyAvailable}).
		OrderBy("c.seq_no").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Copy{}, err
	}

	var c model.Copy
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Copy{}, errs.ErrNoCopyAvailable
		}
		return model.Copy{}, err
	}
	return c, nil
}

// TransitionStatus is the compare-and-swap contract on copy status: the
// update applies only if the current status matches from, otherwise
// errs.ErrConflict. Double-allocation protection rests on this.
func (r *repository) TransitionStatus(ctx context.Context, copyUid string, from, to model.CopyStatus) error {
	res, err := r.db.ExecContext(ctx,
		`update copies set status = $3 where copy_uid = $1 and status = $2`,
		copyUid, from, to)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			`select exists(select 1 from copies where copy_uid = $1)`, copyUid); err != nil {
			return err
		}
		if !exists {
			return errs.ErrNotFound
		}
		return errs.ErrConflict
	}
	return nil
}

// transitionStatusTx is the same compare-and-swap by internal id inside a
// transaction.
func transitionStatusTx(ctx context.Context, tx *sqlx.Tx, copyID int, from, to model.CopyStatus) error {
	res, err := tx.ExecContext(ctx,
		`update copies set status = $3 where id = $1 and status = $2`,
		copyID, from, to)
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
}

func (r *repository) RetireAvailableCopies(ctx context.Context, bookUid string) (model.RetireResult, error) {
	var result model.RetireResult
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.SelectContext(ctx, &result.Unretirable, `
	select c.copy_uid from copies c
	join books b on b.id = c.book_id
	where b.book_uid = $1 and c.status not in ('AVAILABLE', 'RETIRED')
	order by c.seq_no`, bookUid); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `
	update copies set status = 'RETIRED'
	where book_id = (select id from books where book_uid = $1) and status = 'AVAILABLE'`, bookUid)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		result.Retired = int(n)
		return nil
	})
	if err != nil {
		return model.RetireResult{}, err
	}
	r.log.Debug("RetireAvailableCopies",
		zap.String("bookUid", bookUid),
		zap.Int("retired", result.Retired),
		zap.Int("unretirable", len(result.Unretirable)))
	return result, nil
}

func (r *repository) AddCopy(ctx context.Context, bookUid, location string) (model.Copy, error) {
	var copyUid string
	err := r.db.GetContext(ctx, &copyUid, `
	insert into copies (copy_uid, book_id, seq_no, status, condition, location)
	select gen_random_uuid(), b.id,
	       coalesce((select max(seq_no) from copies where book_id = b.id), 0) + 1,
	       'AVAILABLE', 'GOOD', $2
	from books b where b.book_uid = $1
	returning copy_uid`, bookUid, location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Copy{}, errs.ErrNotFound
		}
		return model.Copy{}, err
	}
	return r.getCopy(ctx, copyUid)
}

func (r *repository) ListCopies(ctx context.Context, bookUid string) ([]model.Copy, error) {
	query, args, err := copyQuery().
		Where(sq.Eq{"b.book_uid": bookUid}).
		OrderBy("c.seq_no").
		ToSql()
	if err != nil {
		return nil, err
	}
	var copies []model.Copy
	if err := r.db.SelectContext(ctx, &copies, query, args...); err != nil {
		return nil, err
	}
	return copies, nil
}

// UpdateCondition edits condition and optionally one of the manual statuses.
// Copies that are BORROWED, RESERVED or RETIRED are off limits.
func (r *repository) UpdateCondition(ctx context.Context, copyUid string, req model.ConditionRequest) (model.Copy, error) {
	res, err := r.db.ExecContext(ctx, `
	update copies set condition = $2, status = coalesce(nullif($3, ''), status)
	where copy_uid = $1 and status not in ('BORROWED', 'RESERVED', 'RETIRED')`,
		copyUid, req.Condition, string(req.Status))
	if err != nil {
		return model.Copy{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Copy{}, err
	}
	if n == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			`select exists(select 1 from copies where copy_uid = $1)`, copyUid); err != nil {
			return model.Copy{}, err
		}
		if !exists {
			return model.Copy{}, errs.ErrNotFound
		}
		return model.Copy{}, errs.ErrConflict
	}
	return r.getCopy(ctx, copyUid)
}

func (r *repository) getCopy(ctx context.Context, copyUid string) (model.Copy, error) {
	query, args, err := copyQuery().
		Where(sq.Eq{"c.copy_uid": copyUid}).
		ToSql()
	if err != nil {
		return model.Copy{}, err
	}
	var c model.Copy
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Copy{}, errs.ErrNotFound
		}
		return model.Copy{}, err
	}
	return c, nil
}

func (r *repository) BookExists(ctx context.Context, bookUid string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`select exists(select 1 from books where book_uid = $1)`, bookUid)
	return exists, err
}
