package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/circulation-service/internal/errs"
	"github.com/openshelf/circulation-service/internal/model"
	"github.com/openshelf/circulation-service/internal/repository"
)

// allocateAttempts bounds the find-then-swap retry loop when a concurrent
// request wins the race for the same copy.
const allocateAttempts = 3

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	now  func() time.Time
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
		now:  time.Now,
	}
}

// Borrow runs the admission checks in order (suspension, quota,
// availability), then allocates a copy. Loan insert and copy transition
// commit atomically in the repository; a lost race re-validates
// availability before retrying.
func (s *Service) Borrow(ctx context.Context, req model.BorrowRequest) (model.Loan, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return model.Loan{}, err
	}
	if err := s.assertActive(ctx, req.MemberUid); err != nil {
		return model.Loan{}, err
	}
	if err := s.assertUnderLoanQuota(ctx, req.MemberUid, settings.MaxLoansPerMember); err != nil {
		return model.Loan{}, err
	}

	days := req.LoanPeriodDays
	if days <= 0 {
		days = settings.LoanPeriodDays
	}
	now := s.now()
	due := now.AddDate(0, 0, days)

	lastErr := error(errs.ErrNoCopyAvailable)
	for i := 0; i < allocateAttempts; i++ {
		cp, err := s.repo.FindAvailableCopy(ctx, req.BookUid)
		if err != nil {
			return model.Loan{}, err
		}
		loan, err := s.repo.CreateLoan(ctx, cp.CopyUid, req.MemberUid, req.LibrarianUid, now, due)
		if err != nil {
			if errors.Is(err, errs.ErrConflict) {
				lastErr = err
				continue
			}
			return model.Loan{}, err
		}
		return loan, nil
	}
	return model.Loan{}, lastErr
}

func (s *Service) Return(ctx context.Context, loanUid string, returnDate time.Time) (model.Loan, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return model.Loan{}, err
	}
	loan, err := s.repo.GetLoan(ctx, loanUid)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.ReturnDate != nil {
		return model.Loan{}, errs.ErrAlreadyReturned
	}
	fine := FinalizeFine(loan.DueDate, returnDate, settings.FinePerDay)
	return s.repo.CloseLoan(ctx, loanUid, returnDate, fine)
}

func (s *Service) Renew(ctx context.Context, loanUid string, req model.RenewRequest) (model.Loan, error) {
	loan, err := s.repo.GetLoan(ctx, loanUid)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.ReturnDate != nil {
		return model.Loan{}, errs.ErrAlreadyReturned
	}
	if overdueDays(loan.DueDate, s.now()) > req.GraceDays {
		return model.Loan{}, errs.ErrRenewOverdue
	}
	return s.repo.RenewLoan(ctx, loanUid, req.DueDate.Time)
}

func (s *Service) PayFine(ctx context.Context, loanUid string) error {
	return s.repo.PayFine(ctx, loanUid, s.now())
}

// OpenLoans classifies each open loan as ACTIVE or OVERDUE and attaches the
// live accrued fine. Nothing here is persisted.
func (s *Service) OpenLoans(ctx context.Context, memberUid string) ([]model.LoanView, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.repo.ListOpenLoans(ctx, memberUid)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]model.LoanView, 0, len(loans))
	for _, loan := range loans {
		views = append(views, model.LoanView{
			Loan:        loan,
			State:       Classify(loan, now),
			AccruedFine: AccruedFine(loan.DueDate, now, settings.FinePerDay),
		})
	}
	return views, nil
}

func (s *Service) UnpaidFines(ctx context.Context, memberUid string) ([]model.Loan, error) {
	return s.repo.ListUnpaidFines(ctx, memberUid)
}

func (s *Service) Reserve(ctx context.Context, req model.ReserveRequest) (model.Reservation, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return model.Reservation{}, err
	}
	if err := s.assertActive(ctx, req.MemberUid); err != nil {
		return model.Reservation{}, err
	}
	if err := s.assertUnderReservationQuota(ctx, req.MemberUid, settings.MaxReservationsPerMember); err != nil {
		return model.Reservation{}, err
	}
	exists, err := s.repo.BookExists(ctx, req.BookUid)
	if err != nil {
		return model.Reservation{}, err
	}
	if !exists {
		return model.Reservation{}, errs.ErrNotFound
	}
	now := s.now()
	return s.repo.CreateReservation(ctx, req.BookUid, req.MemberUid, now, now.AddDate(0, 0, req.ExpiryDays))
}

// Approve earmarks the lowest-sequence available copy, the same selection
// rule Borrow uses.
func (s *Service) Approve(ctx context.Context, reservUid string) (model.Reservation, error) {
	rsv, err := s.repo.GetReservation(ctx, reservUid)
	if err != nil {
		return model.Reservation{}, err
	}
	if rsv.Status != model.ReservationPending {
		return model.Reservation{}, errs.ErrConflict
	}

	lastErr := error(errs.ErrNoCopyAvailable)
	for i := 0; i < allocateAttempts; i++ {
		cp, err := s.repo.FindAvailableCopy(ctx, rsv.BookUid)
		if err != nil {
			return model.Reservation{}, err
		}
		approved, err := s.repo.ApproveReservation(ctx, reservUid, cp.CopyUid)
		if err != nil {
			if errors.Is(err, errs.ErrConflict) {
				lastErr = err
				continue
			}
			return model.Reservation{}, err
		}
		return approved, nil
	}
	return model.Reservation{}, lastErr
}

func (s *Service) DisApprove(ctx context.Context, reservUid string) (model.Reservation, error) {
	return s.repo.DisApproveReservation(ctx, reservUid)
}

func (s *Service) Cancel(ctx context.Context, reservUid string) error {
	return s.repo.CancelReservation(ctx, reservUid)
}

// Fulfill converts an approved reservation into a loan against the copy
// already earmarked for it. Suspension and loan quota still gate it.
func (s *Service) Fulfill(ctx context.Context, reservUid string, req model.FulfillRequest) (model.Loan, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return model.Loan{}, err
	}
	rsv, err := s.repo.GetReservation(ctx, reservUid)
	if err != nil {
		return model.Loan{}, err
	}
	if rsv.Status != model.ReservationReserved {
		return model.Loan{}, errs.ErrConflict
	}
	if err := s.assertActive(ctx, rsv.MemberUid); err != nil {
		return model.Loan{}, err
	}
	if err := s.assertUnderLoanQuota(ctx, rsv.MemberUid, settings.MaxLoansPerMember); err != nil {
		return model.Loan{}, err
	}

	days := req.LoanPeriodDays
	if days <= 0 {
		days = settings.LoanPeriodDays
	}
	now := s.now()
	return s.repo.FulfillReservation(ctx, reservUid, req.LibrarianUid, now, now.AddDate(0, 0, days))
}

func (s *Service) Reservations(ctx context.Context, memberUid string) ([]model.Reservation, error) {
	return s.repo.ListReservations(ctx, memberUid)
}

// ExpireReservations is invoked by the expiry consumer, never in-line with
// a user request.
func (s *Service) ExpireReservations(ctx context.Context, now time.Time) (int, error) {
	n, err := s.repo.ExpireReservations(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("reservations expired", zap.Int("count", n))
	}
	return n, nil
}

func (s *Service) ListCopies(ctx context.Context, bookUid string) ([]model.Copy, error) {
	return s.repo.ListCopies(ctx, bookUid)
}

func (s *Service) AddCopy(ctx context.Context, bookUid string, req model.AddCopyRequest) (model.Copy, error) {
	return s.repo.AddCopy(ctx, bookUid, req.Location)
}

func (s *Service) RetireCopies(ctx context.Context, bookUid string) (model.RetireResult, error) {
	exists, err := s.repo.BookExists(ctx, bookUid)
	if err != nil {
		return model.RetireResult{}, err
	}
	if !exists {
		return model.RetireResult{}, errs.ErrNotFound
	}
	return s.repo.RetireAvailableCopies(ctx, bookUid)
}

func (s *Service) UpdateCondition(ctx context.Context, copyUid string, req model.ConditionRequest) (model.Copy, error) {
	return s.repo.UpdateCondition(ctx, copyUid, req)
}
