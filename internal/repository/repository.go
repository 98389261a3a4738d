package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/openshelf/circulation-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// copies
	FindAvailableCopy(ctx context.Context, bookUid string) (model.Copy, error)
	TransitionStatus(ctx context.Context, copyUid string, from, to model.CopyStatus) error
	RetireAvailableCopies(ctx context.Context, bookUid string) (model.RetireResult, error)
	AddCopy(ctx context.Context, bookUid, location string) (model.Copy, error)
	ListCopies(ctx context.Context, bookUid string) ([]model.Copy, error)
	UpdateCondition(ctx context.Context, copyUid string, req model.ConditionRequest) (model.Copy, error)

	// loans
	CreateLoan(ctx context.Context, copyUid, memberUid, librarianUid string, loanDate, dueDate time.Time) (model.Loan, error)
	GetLoan(ctx context.Context, loanUid string) (model.Loan, error)
	CloseLoan(ctx context.Context, loanUid string, returnDate time.Time, fine int64) (model.Loan, error)
	RenewLoan(ctx context.Context, loanUid string, newDue time.Time) (model.Loan, error)
	PayFine(ctx context.Context, loanUid string, paidAt time.Time) error
	ListOpenLoans(ctx context.Context, memberUid string) ([]model.Loan, error)
	ListUnpaidFines(ctx context.Context, memberUid string) ([]model.Loan, error)
	CountOpenLoans(ctx context.Context, memberUid string) (int, error)

	// reservations
	CreateReservation(ctx context.Context, bookUid, memberUid string, reservedAt, expiresAt time.Time) (model.Reservation, error)
	GetReservation(ctx context.Context, reservUid string) (model.Reservation, error)
	ApproveReservation(ctx context.Context, reservUid, copyUid string) (model.Reservation, error)
	DisApproveReservation(ctx context.Context, reservUid string) (model.Reservation, error)
	CancelReservation(ctx context.Context, reservUid string) error
	FulfillReservation(ctx context.Context, reservUid, librarianUid string, loanDate, dueDate time.Time) (model.Loan, error)
	ListReservations(ctx context.Context, memberUid string) ([]model.Reservation, error)
	CountOpenReservations(ctx context.Context, memberUid string) (int, error)
	ExpireReservations(ctx context.Context, now time.Time) (int, error)

	// collaborators
	GetMemberStatus(ctx context.Context, memberUid string) (model.MemberStatus, error)
	BookExists(ctx context.Context, bookUid string) (bool, error)
	GetSettings(ctx context.Context) (model.Settings, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName        = `books`
	membersTableName      = `members`
	copiesTableName       = `copies`
	loansTableName        = `loans`
	reservationsTableName = `reservations`
	settingsTableName     = `settings`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// inTx runs fn inside a transaction, rolling back on any error.
func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
