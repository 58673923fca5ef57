package get_quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	quoteBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/quote_booking"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeUseCase struct {
	err   error
	calls int
	got   *quoteBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *quoteBooking.Request) (*quoteBooking.Response, error) {
	f.calls++
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &quoteBooking.Response{
		StudioID:   req.StudioID,
		StudioName: "RajBilasini (RnB) Studios",
		Quote: domain.PriceQuote{
			HourlyRate:      decimal.NewFromInt(2200),
			DurationHours:   req.DurationHours,
			Subtotal:        decimal.NewFromInt(4400),
			PlatformFeeRate: domain.PlatformFeeRate,
			PlatformFee:     decimal.NewFromInt(220),
			Total:           decimal.NewFromInt(4620),
		},
	}, nil
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/studios/{studioId}/quote", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/studios/2/quote?duration=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var body QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.StudioID)
	assert.Equal(t, 2, body.Duration)
	assert.Equal(t, 4620.0, body.Total)
	assert.Equal(t, &quoteBooking.Request{StudioID: 2, DurationHours: 2}, uc.got)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		err      error
		wantCode int
		wantCall bool
	}{
		{name: "studio id not a number", target: "/studios/abc/quote?duration=2", wantCode: http.StatusBadRequest},
		{name: "missing duration", target: "/studios/2/quote", wantCode: http.StatusBadRequest},
		{name: "duration not a number", target: "/studios/2/quote?duration=two", wantCode: http.StatusBadRequest},
		{
			name:     "duration not offered",
			target:   "/studios/2/quote?duration=5",
			err:      fmt.Errorf("%w: duration=5", quoteBooking.ErrInvalidDuration),
			wantCode: http.StatusBadRequest,
			wantCall: true,
		},
		{name: "unknown studio", target: "/studios/9/quote?duration=2", err: quoteBooking.ErrStudioNotFound, wantCode: http.StatusNotFound, wantCall: true},
		{name: "invalid input", target: "/studios/0/quote?duration=2", err: quoteBooking.ErrInvalidInput, wantCode: http.StatusBadRequest, wantCall: true},
		{name: "invalid rate", target: "/studios/2/quote?duration=2", err: quoteBooking.ErrInvalidRate, wantCode: http.StatusInternalServerError, wantCall: true},
		{name: "unexpected", target: "/studios/2/quote?duration=2", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			rec := serve(uc, tt.target)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCall, uc.calls > 0)
		})
	}
}

func TestHandle_InvalidDurationMessage(t *testing.T) {
	rec := serve(&fakeUseCase{err: quoteBooking.ErrInvalidDuration}, "/studios/2/quote?duration=5")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidDuration)
}
