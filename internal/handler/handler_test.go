package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openshelf/circulation-service/internal/errs"
	"github.com/openshelf/circulation-service/internal/handler"
	"github.com/openshelf/circulation-service/internal/model"
	"github.com/openshelf/circulation-service/pkg/validate"

	service_mocks "github.com/openshelf/circulation-service/internal/handler/mocks"
)

// nopEnqueuer satisfies handler.Enqueuer without a broker.
type nopEnqueuer struct{}

func (nopEnqueuer) Enqueue(string, any) error { return nil }

func newTestRouter(t *testing.T) (*echo.Echo, *service_mocks.MockCirculationService, *handler.Handler) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockCirculationService(c)
	h := handler.New(svc, nopEnqueuer{}, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e, svc, h
}

func TestHandler_Borrow(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	const (
		bookUid   = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
		memberUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Borrow(gomock.Any(), model.BorrowRequest{BookUid: bookUid, MemberUid: memberUid}).
					Return(model.Loan{
						LoanUid:   "8282a2eb-9b88-4274-a1a1-e943a5c0ee54",
						CopyUid:   "194fc028-5be2-4d15-b305-899030cc01c0",
						BookUid:   bookUid,
						MemberUid: memberUid,
						LoanDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
						DueDate:   time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC),
					}, nil)
			},
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: fmt.Sprintf(`{"loanUid":"8282a2eb-9b88-4274-a1a1-e943a5c0ee54","copyUid":"194fc028-5be2-4d15-b305-899030cc01c0","bookUid":%q,"memberUid":%q,"loanDate":"2026-03-10T00:00:00Z","dueDate":"2026-03-24T00:00:00Z","fineAmount":0,"renewals":0}`, bookUid, memberUid),
			},
			wantErr: false,
		},
		{
			name:         "err. memberUid required",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			body:         fmt.Sprintf(`{"bookUid":%q}`, bookUid),
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'BorrowRequest.MemberUid' Error:Field validation for 'MemberUid' failed on the 'required' tag"}`,
			},
			wantErr: true,
		},
		{
			name: "err. quota exceeded",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Borrow(gomock.Any(), model.BorrowRequest{BookUid: bookUid, MemberUid: memberUid}).
					Return(model.Loan{}, errs.ErrQuotaExceeded)
			},
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"member quota exceeded"}`,
			},
			wantErr: true,
		},
		{
			name: "err. member suspended",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Borrow(gomock.Any(), model.BorrowRequest{BookUid: bookUid, MemberUid: memberUid}).
					Return(model.Loan{}, errs.ErrMemberSuspended)
			},
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"member is not active"}`,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Borrow(gomock.Any(), model.BorrowRequest{BookUid: bookUid, MemberUid: memberUid}).
					Return(model.Loan{}, errors.New("db internal"))
			},
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestRouter(t)
			e.POST("/loans", h.Borrow)

			r := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	const loanUid = "8282a2eb-9b88-4274-a1a1-e943a5c0ee54"
	returnDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantErr      bool
	}{
		{
			name: "ok with frozen fine",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Return(gomock.Any(), loanUid, returnDate).
					Return(model.Loan{
						LoanUid:    loanUid,
						LoanDate:   time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC),
						DueDate:    time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
						ReturnDate: &returnDate,
						FineAmount: 500,
					}, nil)
			},
			body: `{"date":"2026-03-10"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: fmt.Sprintf(`{"loanUid":%q,"copyUid":"","bookUid":"","memberUid":"","loanDate":"2026-02-19T00:00:00Z","dueDate":"2026-03-05T00:00:00Z","returnDate":"2026-03-10T00:00:00Z","fineAmount":500,"renewals":0}`, loanUid),
			},
			wantErr: false,
		},
		{
			name: "err. already returned",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Return(gomock.Any(), loanUid, returnDate).
					Return(model.Loan{}, errs.ErrAlreadyReturned)
			},
			body: `{"date":"2026-03-10"}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"loan already returned"}`,
			},
			wantErr: true,
		},
		{
			name: "err. loan not found",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Return(gomock.Any(), loanUid, returnDate).
					Return(model.Loan{}, errs.ErrLoanNotFound)
			},
			body: `{"date":"2026-03-10"}`,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"loan not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestRouter(t)
			e.POST("/loans/:loanUid/return", h.Return)

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/loans/%s/return", loanUid), strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Reserve(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	const (
		bookUid   = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
		memberUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Reserve(gomock.Any(), model.ReserveRequest{BookUid: bookUid, MemberUid: memberUid, ExpiryDays: 7}).
					Return(model.Reservation{
						ReservUid:  "fd2a7643-e407-4da8-b55f-b71f0c21f5a5",
						BookUid:    bookUid,
						MemberUid:  memberUid,
						Status:     model.ReservationPending,
						ReservedAt: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
						ExpiresAt:  time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
					}, nil)
			},
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q,"expiryDays":7}`, bookUid, memberUid),
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: fmt.Sprintf(`{"reservationUid":"fd2a7643-e407-4da8-b55f-b71f0c21f5a5","bookUid":%q,"memberUid":%q,"status":"PENDING","reservedAt":"2026-03-10T00:00:00Z","expiresAt":"2026-03-17T00:00:00Z"}`, bookUid, memberUid),
			},
			wantErr: false,
		},
		{
			name: "err. member suspended",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Reserve(gomock.Any(), model.ReserveRequest{BookUid: bookUid, MemberUid: memberUid, ExpiryDays: 7}).
					Return(model.Reservation{}, errs.ErrMemberSuspended)
			},
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q,"expiryDays":7}`, bookUid, memberUid),
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"member is not active"}`,
			},
			wantErr: true,
		},
		{
			name: "err. duplicate reservation",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Reserve(gomock.Any(), model.ReserveRequest{BookUid: bookUid, MemberUid: memberUid, ExpiryDays: 7}).
					Return(model.Reservation{}, errs.ErrDuplicateReservation)
			},
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q,"expiryDays":7}`, bookUid, memberUid),
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"member already holds a reservation for this book"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestRouter(t)
			e.POST("/reservations", h.Reserve)

			r := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DisApprove(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	const reservUid = "fd2a7643-e407-4da8-b55f-b71f0c21f5a5"

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok back to pending",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					DisApprove(gomock.Any(), reservUid).
					Return(model.Reservation{
						ReservUid:  reservUid,
						BookUid:    "83575e12-7ce0-48ee-9931-51919ff3c9ee",
						MemberUid:  "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
						Status:     model.ReservationPending,
						ReservedAt: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
						ExpiresAt:  time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: fmt.Sprintf(`{"reservationUid":%q,"bookUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","memberUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","status":"PENDING","reservedAt":"2026-03-10T00:00:00Z","expiresAt":"2026-03-17T00:00:00Z"}`, reservUid),
			},
			wantErr: false,
		},
		{
			name: "err. not reserved",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					DisApprove(gomock.Any(), reservUid).
					Return(model.Reservation{}, errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"copy status conflict"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					DisApprove(gomock.Any(), reservUid).
					Return(model.Reservation{}, errs.ErrReservationNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"reservation not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestRouter(t)
			e.POST("/reservations/:reservationUid/disapprove", h.DisApprove)

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/reservations/%s/disapprove", reservUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Cancel(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	const reservUid = "fd2a7643-e407-4da8-b55f-b71f0c21f5a5"

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().Cancel(gomock.Any(), reservUid).Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "",
			},
			wantErr: false,
		},
		{
			name: "err. already fulfilled",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().Cancel(gomock.Any(), reservUid).Return(errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"copy status conflict"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().Cancel(gomock.Any(), reservUid).Return(errs.ErrReservationNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"reservation not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestRouter(t)
			e.POST("/reservations/:reservationUid/cancel", h.Cancel)

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/reservations/%s/cancel", reservUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_PayFine(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	const loanUid = "8282a2eb-9b88-4274-a1a1-e943a5c0ee54"

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().PayFine(gomock.Any(), loanUid).Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "",
			},
			wantErr: false,
		},
		{
			name: "err. already paid",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().PayFine(gomock.Any(), loanUid).Return(errs.ErrAlreadyPaid)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"fine already paid"}`,
			},
			wantErr: true,
		},
		{
			name: "err. no fine owed",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().PayFine(gomock.Any(), loanUid).Return(errs.ErrNoFineOwed)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"no fine owed"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestRouter(t)
			e.POST("/loans/:loanUid/fine/pay", h.PayFine)

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/loans/%s/fine/pay", loanUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_RetireCopies(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	const bookUid = "83575e12-7ce0-48ee-9931-51919ff3c9ee"

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok with unretirable copies",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					RetireCopies(gomock.Any(), bookUid).
					Return(model.RetireResult{
						Retired:     2,
						Unretirable: []string{"194fc028-5be2-4d15-b305-899030cc01c0"},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"retired":2,"unretirable":["194fc028-5be2-4d15-b305-899030cc01c0"]}`,
			},
			wantErr: false,
		},
		{
			name: "err. unknown book",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					RetireCopies(gomock.Any(), bookUid).
					Return(model.RetireResult{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestRouter(t)
			e.POST("/books/:bookUid/copies/retire", h.RetireCopies)

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/books/%s/copies/retire", bookUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
