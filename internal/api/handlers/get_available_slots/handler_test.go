package get_available_slots

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
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeUseCase struct {
	err   error
	calls int
	got   *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.calls++
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	rate := decimal.NewFromInt(2200)
	return &getAvailableSlots.Response{
		StudioID:   req.StudioID,
		StudioName: "RajBilasini (RnB) Studios",
		Date:       req.Date,
		HourlyRate: rate,
		Slots: []domain.TimeSlot{
			{StartHour: 9, Available: false, Price: rate},
			{StartHour: 10, Available: true, Price: rate},
		},
		AvailableCount: 1,
	}, nil
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/studios/{studioId}/available-slots", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/studios/2/available-slots?date=2026-10-23")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-23", body.Date)
	assert.Equal(t, 1, body.AvailableCount)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "09:00", body.Slots[0].Time)
	assert.False(t, body.Slots[0].Available)
	assert.Equal(t, 2200.0, body.Slots[1].Price)

	assert.Equal(t, int64(2), uc.got.StudioID)
	assert.Equal(t, "2026-10-23", uc.got.Date.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "studio id not a number", target: "/studios/abc/available-slots?date=2026-10-23", wantCode: http.StatusBadRequest, wantMsg: msgInvalidStudioID},
		{name: "missing date", target: "/studios/2/available-slots", wantCode: http.StatusBadRequest, wantMsg: msgMissingDate},
		{name: "malformed date", target: "/studios/2/available-slots?date=23-10-2026", wantCode: http.StatusBadRequest, wantMsg: msgInvalidDate},
		{
			name:     "past date",
			target:   "/studios/2/available-slots?date=2026-10-17",
			err:      fmt.Errorf("%w: date=2026-10-17", getAvailableSlots.ErrInvalidDate),
			wantCode: http.StatusBadRequest,
			wantMsg:  msgPastDate,
		},
		{
			name:     "beyond window",
			target:   "/studios/2/available-slots?date=2026-11-17",
			err:      fmt.Errorf("%w: date=2026-11-17", getAvailableSlots.ErrDateTooFarInFuture),
			wantCode: http.StatusBadRequest,
			wantMsg:  msgDateTooFar,
		},
		{name: "unknown studio", target: "/studios/9/available-slots?date=2026-10-23", err: getAvailableSlots.ErrStudioNotFound, wantCode: http.StatusNotFound, wantMsg: msgStudioNotFound},
		{name: "unexpected", target: "/studios/2/available-slots?date=2026-10-23", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.wantMsg)
			}
		})
	}
}
