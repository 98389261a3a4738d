package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openshelf/circulation-service/internal/model"
)

// Reserve godoc
//
//	@Summary	Place a pending reservation for a book
//	@Tags		reservations
//	@Accept		json
//	@Produce	json
//	@Param		input	body		model.ReserveRequest	true	"reserve request"
//	@Success	200		{object}	model.Reservation
//	@Failure	403,404,409	{object}	echo.HTTPError
//	@Router		/reservations [post]
func (h *Handler) Reserve(c echo.Context) error {
	var req model.ReserveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	rsv, err := h.circulationSvc.Reserve(ctx, req)
	if err != nil {
		return httpError(err)
	}
	h.publish(model.CirculationEvent{
		Type:      model.EventReservationCreated,
		ReservUid: rsv.ReservUid,
		BookUid:   rsv.BookUid,
		MemberUid: rsv.MemberUid,
		At:        rsv.ReservedAt,
	})
	return c.JSON(http.StatusOK, rsv)
}

// Approve godoc
//
//	@Summary	Approve a pending reservation, earmarking a copy
//	@Tags		reservations
//	@Param		reservationUid	path		string	true	"reservation uid"
//	@Success	200				{object}	model.Reservation
//	@Failure	404,409			{object}	echo.HTTPError
//	@Router		/reservations/{reservationUid}/approve [post]
func (h *Handler) Approve(c echo.Context) error {
	reservUid := c.Param("reservationUid")
	if reservUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	ctx := c.Request().Context()
	rsv, err := h.circulationSvc.Approve(ctx, reservUid)
	if err != nil {
		return httpError(err)
	}
	event := model.CirculationEvent{
		Type:      model.EventReservationApproved,
		ReservUid: rsv.ReservUid,
		BookUid:   rsv.BookUid,
		MemberUid: rsv.MemberUid,
	}
	if rsv.CopyUid != nil {
		event.CopyUid = *rsv.CopyUid
	}
	h.publish(event)
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) DisApprove(c echo.Context) error {
	reservUid := c.Param("reservationUid")
	if reservUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	ctx := c.Request().Context()
	rsv, err := h.circulationSvc.DisApprove(ctx, reservUid)
	if err != nil {
		return httpError(err)
	}
	h.publish(model.CirculationEvent{
		Type:      model.EventReservationRejected,
		ReservUid: rsv.ReservUid,
		BookUid:   rsv.BookUid,
		MemberUid: rsv.MemberUid,
	})
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) Cancel(c echo.Context) error {
	reservUid := c.Param("reservationUid")
	if reservUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	ctx := c.Request().Context()
	if err := h.circulationSvc.Cancel(ctx, reservUid); err != nil {
		return httpError(err)
	}
	h.publish(model.CirculationEvent{
		Type:      model.EventReservationCancelled,
		ReservUid: reservUid,
	})
	return c.NoContent(http.StatusOK)
}

// Fulfill godoc
//
//	@Summary	Convert an approved reservation into a loan
//	@Tags		reservations
//	@Accept		json
//	@Produce	json
//	@Param		reservationUid	path		string				true	"reservation uid"
//	@Param		input			body		model.FulfillRequest	true	"fulfill request"
//	@Success	200				{object}	model.Loan
//	@Failure	403,404,409		{object}	echo.HTTPError
//	@Router		/reservations/{reservationUid}/fulfill [post]
func (h *Handler) Fulfill(c echo.Context) error {
	reservUid := c.Param("reservationUid")
	if reservUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	var req model.FulfillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	loan, err := h.circulationSvc.Fulfill(ctx, reservUid, req)
	if err != nil {
		return httpError(err)
	}
	h.publish(model.CirculationEvent{
		Type:      model.EventReservationFulfilled,
		ReservUid: reservUid,
		LoanUid:   loan.LoanUid,
		BookUid:   loan.BookUid,
		CopyUid:   loan.CopyUid,
		MemberUid: loan.MemberUid,
		At:        loan.LoanDate,
	})
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) Reservations(c echo.Context) error {
	memberUid := c.Param("memberUid")
	if memberUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "memberUid is empty")
	}
	ctx := c.Request().Context()
	items, err := h.circulationSvc.Reservations(ctx, memberUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}
