package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openshelf/circulation-service/internal/model"
)

func (h *Handler) ListCopies(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookUid is empty")
	}
	ctx := c.Request().Context()
	copies, err := h.circulationSvc.ListCopies(ctx, bookUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *Handler) AddCopy(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookUid is empty")
	}
	var req model.AddCopyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	cp, err := h.circulationSvc.AddCopy(ctx, bookUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cp)
}

// RetireCopies godoc
//
//	@Summary	Retire every available copy of a book
//	@Tags		copies
//	@Produce	json
//	@Param		bookUid	path		string	true	"book uid"
//	@Success	200		{object}	model.RetireResult
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/books/{bookUid}/copies/retire [post]
func (h *Handler) RetireCopies(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookUid is empty")
	}
	ctx := c.Request().Context()
	result, err := h.circulationSvc.RetireCopies(ctx, bookUid)
	if err != nil {
		return httpError(err)
	}
	h.publish(model.CirculationEvent{Type: model.EventCopiesRetired, BookUid: bookUid})
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateCondition(c echo.Context) error {
	copyUid := c.Param("copyUid")
	if copyUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "copyUid is empty")
	}
	var req model.ConditionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	cp, err := h.circulationSvc.UpdateCondition(ctx, copyUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cp)
}
