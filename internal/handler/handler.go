package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/openshelf/circulation-service/docs"
	"github.com/openshelf/circulation-service/internal/errs"
	"github.com/openshelf/circulation-service/pkg/validate"
)

type Handler struct {
	circulationSvc CirculationService
	enq            Enqueuer
	log            *zap.Logger
}

func New(circulationSvc CirculationService, enq Enqueuer, log *zap.Logger) *Handler {
	return &Handler{
		circulationSvc: circulationSvc,
		enq:            enq,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.POST("/loans", h.Borrow)
	api.POST("/loans/:loanUid/return", h.Return)
	api.POST("/loans/:loanUid/renew", h.Renew)
	api.POST("/loans/:loanUid/fine/pay", h.PayFine)
	api.GET("/members/:memberUid/loans", h.OpenLoans)
	api.GET("/members/:memberUid/fines", h.UnpaidFines)
	api.GET("/members/:memberUid/reservations", h.Reservations)

	api.POST("/reservations", h.Reserve)
	api.POST("/reservations/:reservationUid/approve", h.Approve)
	api.POST("/reservations/:reservationUid/disapprove", h.DisApprove)
	api.POST("/reservations/:reservationUid/cancel", h.Cancel)
	api.POST("/reservations/:reservationUid/fulfill", h.Fulfill)

	api.GET("/books/:bookUid/copies", h.ListCopies)
	api.POST("/books/:bookUid/copies", h.AddCopy)
	api.POST("/books/:bookUid/copies/retire", h.RetireCopies)
	api.PATCH("/copies/:copyUid/condition", h.UpdateCondition)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpStatus maps the engine's error taxonomy onto response codes. Business
// failures are always surfaced, never swallowed.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrLoanNotFound),
		errors.Is(err, errs.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrMemberSuspended):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrQuotaExceeded),
		errors.Is(err, errs.ErrNoCopyAvailable),
		errors.Is(err, errs.ErrDuplicateReservation),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrRenewOverdue),
		errors.Is(err, errs.ErrAlreadyPaid),
		errors.Is(err, errs.ErrNoFineOwed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func httpError(err error) *echo.HTTPError {
	return echo.NewHTTPError(httpStatus(err), err.Error())
}
