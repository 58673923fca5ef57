package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/session"
	createBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func bookingResponse(replayed bool) *createBooking.Response {
	date, _ := types.ParseDate("2026-10-23")
	return &createBooking.Response{
		Booking: domain.BookingRecord{
			BookingID:     "SYM-MGV9X2QK-7Q2ZL",
			UserID:        "1",
			StudioID:      2,
			StudioName:    "RajBilasini (RnB) Studios",
			Date:          date,
			StartTime:     "14:00",
			DurationHours: 2,
			Subtotal:      decimal.NewFromInt(4400),
			PlatformFee:   decimal.NewFromInt(220),
			TotalPrice:    decimal.NewFromInt(4620),
			PaymentMethod: domain.PaymentOnline,
			ContactNumber: "+91 98765 43210",
			Status:        domain.StatusConfirmed,
			CreatedAt:     time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC),
		},
		Quote:    domain.PriceQuote{HourlyRate: decimal.NewFromInt(2200)},
		Replayed: replayed,
	}
}

const validBody = `{"studioId":2,"date":"2026-10-23","time":"14:00","duration":2,"paymentMethod":"online","contactNumber":"+91 98765 43210"}`

func newRequest(body string, authenticated bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if authenticated {
		s := session.Anonymous().Login(domain.User{ID: "1", Name: "Asha"})
		req = req.WithContext(session.WithSession(req.Context(), s))
	}
	return req
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: bookingResponse(false)}
	h := NewHandler(uc, logger.NewNop())

	req := newRequest(validBody, true)
	req.Header.Set(HeaderIdempotencyKey, "form-42")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SYM-MGV9X2QK-7Q2ZL", body.BookingID)
	assert.Equal(t, "16:00", body.EndTime)
	assert.Equal(t, 4620.0, body.TotalPrice)
	assert.Equal(t, "confirmed", body.Status)

	require.NotNil(t, uc.got)
	assert.Equal(t, "1", uc.got.UserID)
	assert.Equal(t, "form-42", uc.got.IdempotencyKey)
	assert.Equal(t, types.TimeString("14:00"), uc.got.StartTime)
}

func TestHandle_Replayed(t *testing.T) {
	h := NewHandler(&fakeUseCase{resp: bookingResponse(true)}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(validBody, true))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		auth     bool
		err      error
		wantCode int
	}{
		{name: "anonymous", body: validBody, wantCode: http.StatusUnauthorized},
		{name: "malformed body", body: `{"studioId":`, auth: true, wantCode: http.StatusBadRequest},
		{name: "malformed date", body: `{"studioId":2,"date":"23/10/2026"}`, auth: true, wantCode: http.StatusBadRequest},
		{name: "validation", body: validBody, auth: true, err: fmt.Errorf("%w: contact number is required", createBooking.ErrValidation), wantCode: http.StatusBadRequest},
		{name: "studio not found", body: validBody, auth: true, err: createBooking.ErrStudioNotFound, wantCode: http.StatusNotFound},
		{name: "past date", body: validBody, auth: true, err: createBooking.ErrInvalidDate, wantCode: http.StatusBadRequest},
		{name: "slot taken", body: validBody, auth: true, err: createBooking.ErrSlotNotAvailable, wantCode: http.StatusConflict},
		{name: "same key in progress", body: validBody, auth: true, err: createBooking.ErrRequestInProgress, wantCode: http.StatusConflict},
		{name: "submission failed", body: validBody, auth: true, err: createBooking.ErrSubmissionFailed, wantCode: http.StatusBadGateway},
		{name: "internal", body: validBody, auth: true, err: createBooking.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.body, tt.auth))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestValidationMessage(t *testing.T) {
	err := fmt.Errorf("%w: contact number is required", createBooking.ErrValidation)
	assert.Equal(t, "contact number is required", validationMessage(err))
}
