package errs

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrMemberSuspended      = errors.New("member is not active")
	ErrQuotaExceeded        = errors.New("member quota exceeded")
	ErrNoCopyAvailable      = errors.New("no copy available")
	ErrDuplicateReservation = errors.New("member already holds a reservation for this book")
	ErrConflict             = errors.New("copy status conflict")
	ErrLoanNotFound         = errors.New("loan not found")
	ErrAlreadyReturned      = errors.New("loan already returned")
	ErrRenewOverdue         = errors.New("loan overdue beyond renewal grace")
	ErrAlreadyPaid          = errors.New("fine already paid")
	ErrNoFineOwed           = errors.New("no fine owed")
	ErrReservationNotFound  = errors.New("reservation not found")
)
