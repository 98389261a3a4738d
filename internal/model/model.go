package model

import (
	"strings"
	"time"
)

type CopyStatus string

const (
	CopyAvailable CopyStatus = "AVAILABLE"
	CopyBorrowed  CopyStatus = "BORROWED"
	CopyReserved  CopyStatus = "RESERVED"
	CopyInRepair  CopyStatus = "IN_REPAIR"
	CopyDamaged   CopyStatus = "DAMAGED"
	CopyLost      CopyStatus = "LOST"
	CopyRetired   CopyStatus = "RETIRED"
)

type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionGood    Condition = "GOOD"
	ConditionFair    Condition = "FAIR"
	ConditionPoor    Condition = "POOR"
	ConditionDamaged Condition = "DAMAGED"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationReserved  ReservationStatus = "RESERVED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationFulfilled ReservationStatus = "FULFILLED"
	ReservationExpired   ReservationStatus = "EXPIRED"
)

type MemberStatus string

const (
	MemberActive    MemberStatus = "ACTIVE"
	MemberSuspended MemberStatus = "SUSPENDED"
	MemberExpired   MemberStatus = "EXPIRED"
	MemberDeleted   MemberStatus = "DELETED"
)

// LoanState is derived from due/return dates for display, never stored.
type LoanState string

const (
	LoanActive   LoanState = "ACTIVE"
	LoanOverdue  LoanState = "OVERDUE"
	LoanReturned LoanState = "RETURNED"
)

type Copy struct {
	ID         int        `json:"-" db:"id"`
	CopyUid    string     `json:"copyUid" db:"copy_uid"`
	BookUid    string     `json:"bookUid" db:"book_uid"`
	SeqNo      int        `json:"seqNo" db:"seq_no"`
	Status     CopyStatus `json:"status" db:"status"`
	Condition  Condition  `json:"condition" db:"condition"`
	Location   string     `json:"location" db:"location"`
	AcquiredAt time.Time  `json:"acquiredAt" db:"acquired_at"`
}

type Loan struct {
	ID           int        `json:"-" db:"id"`
	LoanUid      string     `json:"loanUid" db:"loan_uid"`
	CopyUid      string     `json:"copyUid" db:"copy_uid"`
	BookUid      string     `json:"bookUid" db:"book_uid"`
	MemberUid    string     `json:"memberUid" db:"member_uid"`
	LibrarianUid *string    `json:"librarianUid,omitempty" db:"librarian_uid"`
	LoanDate     time.Time  `json:"loanDate" db:"loan_date"`
	DueDate      time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate   *time.Time `json:"returnDate,omitempty" db:"return_date"`
	FineAmount   int64      `json:"fineAmount" db:"fine_amount"`
	FinePaidAt   *time.Time `json:"finePaidAt,omitempty" db:"fine_paid_at"`
	Renewals     int        `json:"renewals" db:"renewals"`
}

// LoanView is a Loan with the derived state and the live accrued fine.
type LoanView struct {
	Loan
	State       LoanState `json:"state"`
	AccruedFine int64     `json:"accruedFine"`
}

type Reservation struct {
	ID          int               `json:"-" db:"id"`
	ReservUid   string            `json:"reservationUid" db:"reservation_uid"`
	BookUid     string            `json:"bookUid" db:"book_uid"`
	MemberUid   string            `json:"memberUid" db:"member_uid"`
	CopyUid     *string           `json:"copyUid,omitempty" db:"copy_uid"`
	Status      ReservationStatus `json:"status" db:"status"`
	ReservedAt  time.Time         `json:"reservedAt" db:"reserved_at"`
	ExpiresAt   time.Time         `json:"expiresAt" db:"expires_at"`
}

// Settings carries the circulation policy values. Fine amounts are cents.
type Settings struct {
	FinePerDay               int64
	LoanPeriodDays           int
	MaxLoansPerMember        int
	MaxReservationsPerMember int
}

type BorrowRequest struct {
	BookUid      string `json:"bookUid" validate:"required,uuid"`
	MemberUid    string `json:"memberUid" validate:"required,uuid"`
	LibrarianUid string `json:"librarianUid" validate:"omitempty,uuid"`
	// LoanPeriodDays overrides the loan_period_days setting when positive.
	LoanPeriodDays int `json:"loanPeriodDays" validate:"omitempty,min=1,max=365"`
}

type ReturnRequest struct {
	Date Date `json:"date" validate:"required"`
}

type RenewRequest struct {
	DueDate Date `json:"dueDate" validate:"required"`
	// GraceDays is how far past due a loan may still be renewed.
	GraceDays int `json:"graceDays" validate:"omitempty,min=0"`
}

type ReserveRequest struct {
	BookUid    string `json:"bookUid" validate:"required,uuid"`
	MemberUid  string `json:"memberUid" validate:"required,uuid"`
	ExpiryDays int    `json:"expiryDays" validate:"required,min=1,max=90"`
}

type FulfillRequest struct {
	LibrarianUid string `json:"librarianUid" validate:"omitempty,uuid"`
	// LoanPeriodDays overrides the loan_period_days setting when positive.
	LoanPeriodDays int `json:"loanPeriodDays" validate:"omitempty,min=1,max=365"`
}

type AddCopyRequest struct {
	Location string `json:"location" validate:"omitempty,max=128"`
}

type ConditionRequest struct {
	Condition Condition  `json:"condition" validate:"required,oneof=NEW GOOD FAIR POOR DAMAGED"`
	Status    CopyStatus `json:"status" validate:"omitempty,oneof=AVAILABLE IN_REPAIR DAMAGED LOST"`
}

// RetireResult reports which copies a retire sweep could not touch.
type RetireResult struct {
	Retired     int      `json:"retired"`
	Unretirable []string `json:"unretirable,omitempty"`
}

type EventType string

const (
	EventLoanCreated          EventType = "loan.created"
	EventLoanReturned         EventType = "loan.returned"
	EventLoanRenewed          EventType = "loan.renewed"
	EventFinePaid             EventType = "fine.paid"
	EventReservationCreated   EventType = "reservation.created"
	EventReservationApproved  EventType = "reservation.approved"
	EventReservationRejected  EventType = "reservation.disapproved"
	EventReservationCancelled EventType = "reservation.cancelled"
	EventReservationFulfilled EventType = "reservation.fulfilled"
	EventCopiesRetired        EventType = "copies.retired"
)

// CirculationEvent is published to kafka after every committed mutation.
type CirculationEvent struct {
	Type       EventType `json:"type"`
	LoanUid    string    `json:"loanUid,omitempty"`
	ReservUid  string    `json:"reservationUid,omitempty"`
	BookUid    string    `json:"bookUid,omitempty"`
	CopyUid    string    `json:"copyUid,omitempty"`
	MemberUid  string    `json:"memberUid,omitempty"`
	FineAmount int64     `json:"fineAmount,omitempty"`
	At         time.Time `json:"at"`
}

// ExpirySweepRequest is the payload the scheduler collaborator publishes
// on the reservation-expiry topic.
type ExpirySweepRequest struct {
	Now time.Time `json:"now"`
}

type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}
