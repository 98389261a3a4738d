package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/openshelf/circulation-service/internal/model"
)

// Borrow godoc
//
//	@Summary	Borrow a copy of a book
//	@Tags		loans
//	@Accept		json
//	@Produce	json
//	@Param		input	body		model.BorrowRequest	true	"borrow request"
//	@Success	200		{object}	model.Loan
//	@Failure	403,404,409	{object}	echo.HTTPError
//	@Router		/loans [post]
func (h *Handler) Borrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	loan, err := h.circulationSvc.Borrow(ctx, req)
	if err != nil {
		return httpError(err)
	}
	h.publish(model.CirculationEvent{
		Type:      model.EventLoanCreated,
		LoanUid:   loan.LoanUid,
		BookUid:   loan.BookUid,
		CopyUid:   loan.CopyUid,
		MemberUid: loan.MemberUid,
		At:        loan.LoanDate,
	})
	return c.JSON(http.StatusOK, loan)
}

// Return godoc
//
//	@Summary	Return a borrowed copy, freezing the fine
//	@Tags		loans
//	@Param		loanUid	path		string				true	"loan uid"
//	@Param		input	body		model.ReturnRequest	true	"return date"
//	@Success	200		{object}	model.Loan
//	@Failure	404,409	{object}	echo.HTTPError
//	@Router		/loans/{loanUid}/return [post]
func (h *Handler) Return(c echo.Context) error {
	loanUid := c.Param("loanUid")
	if loanUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "loanUid is empty")
	}
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	loan, err := h.circulationSvc.Return(ctx, loanUid, req.Date.Time)
	if err != nil {
		return httpError(err)
	}
	h.publish(model.CirculationEvent{
		Type:       model.EventLoanReturned,
		LoanUid:    loan.LoanUid,
		BookUid:    loan.BookUid,
		CopyUid:    loan.CopyUid,
		MemberUid:  loan.MemberUid,
		FineAmount: loan.FineAmount,
		At:         req.Date.Time,
	})
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) Renew(c echo.Context) error {
	loanUid := c.Param("loanUid")
	if loanUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "loanUid is empty")
	}
	var req model.RenewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	loan, err := h.circulationSvc.Renew(ctx, loanUid, req)
	if err != nil {
		return httpError(err)
	}
	h.publish(model.CirculationEvent{
		Type:      model.EventLoanRenewed,
		LoanUid:   loan.LoanUid,
		MemberUid: loan.MemberUid,
		At:        loan.DueDate,
	})
	return c.JSON(http.StatusOK, loan)
}

// PayFine godoc
//
//	@Summary	Record payment of a finalized fine
//	@Tags		fines
//	@Param		loanUid	path	string	true	"loan uid"
//	@Success	200
//	@Failure	404,409	{object}	echo.HTTPError
//	@Router		/loans/{loanUid}/fine/pay [post]
func (h *Handler) PayFine(c echo.Context) error {
	loanUid := c.Param("loanUid")
	if loanUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "loanUid is empty")
	}
	ctx := c.Request().Context()
	if err := h.circulationSvc.PayFine(ctx, loanUid); err != nil {
		return httpError(err)
	}
	h.publish(model.CirculationEvent{Type: model.EventFinePaid, LoanUid: loanUid})
	return c.NoContent(http.StatusOK)
}

// OpenLoans godoc
//
//	@Summary	Open loans of a member with accrued fines
//	@Tags		loans
//	@Produce	json
//	@Param		memberUid	path	string	true	"member uid"
//	@Success	200	{array}	model.LoanView
//	@Router		/members/{memberUid}/loans [get]
func (h *Handler) OpenLoans(c echo.Context) error {
	memberUid := c.Param("memberUid")
	if memberUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "memberUid is empty")
	}
	ctx := c.Request().Context()
	loans, err := h.circulationSvc.OpenLoans(ctx, memberUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) UnpaidFines(c echo.Context) error {
	memberUid := c.Param("memberUid")
	if memberUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "memberUid is empty")
	}
	ctx := c.Request().Context()
	loans, err := h.circulationSvc.UnpaidFines(ctx, memberUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

// publish sends a circulation event to the stats feed. Event delivery is
// best effort: a broker hiccup must not fail a committed transaction.
func (h *Handler) publish(event model.CirculationEvent) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	if err := h.enq.Enqueue(eventsTopic, event); err != nil {
		h.log.Error("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
