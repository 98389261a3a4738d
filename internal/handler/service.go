package handler

import (
	"context"
	"time"

	"github.com/openshelf/circulation-service/internal/model"
	"github.com/openshelf/circulation-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	Borrow(ctx context.Context, req model.BorrowRequest) (model.Loan, error)
	Return(ctx context.Context, loanUid string, returnDate time.Time) (model.Loan, error)
	Renew(ctx context.Context, loanUid string, req model.RenewRequest) (model.Loan, error)
	PayFine(ctx context.Context, loanUid string) error
	OpenLoans(ctx context.Context, memberUid string) ([]model.LoanView, error)
	UnpaidFines(ctx context.Context, memberUid string) ([]model.Loan, error)

	Reserve(ctx context.Context, req model.ReserveRequest) (model.Reservation, error)
	Approve(ctx context.Context, reservUid string) (model.Reservation, error)
	DisApprove(ctx context.Context, reservUid string) (model.Reservation, error)
	Cancel(ctx context.Context, reservUid string) error
	Fulfill(ctx context.Context, reservUid string, req model.FulfillRequest) (model.Loan, error)
	Reservations(ctx context.Context, memberUid string) ([]model.Reservation, error)
	ExpireReservations(ctx context.Context, now time.Time) (int, error)

	ListCopies(ctx context.Context, bookUid string) ([]model.Copy, error)
	AddCopy(ctx context.Context, bookUid string, req model.AddCopyRequest) (model.Copy, error)
	RetireCopies(ctx context.Context, bookUid string) (model.RetireResult, error)
	UpdateCondition(ctx context.Context, copyUid string, req model.ConditionRequest) (model.Copy, error)
}

var _ CirculationService = (*service.Service)(nil)
