package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

var ist = time.FixedZone("IST", 5*3600+1800)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeCatalog struct {
	err error
}

func (f *fakeCatalog) GetStudio(ctx context.Context, id int64) (*domain.Studio, error) {
	if f.err != nil {
		return nil, f.err
	}
	if id != 2 {
		return nil, catalog.ErrStudioNotFound
	}
	return &domain.Studio{ID: 2, Name: "RajBilasini (RnB) Studios", HourlyRate: decimal.NewFromInt(2200)}, nil
}

func newUseCase(c StudioCatalog, now time.Time) *UseCase {
	uc := NewUseCase(c, domain.DefaultWindowDays, ist, logger.NewNop())
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func date(s string) types.Date {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExecute_Today(t *testing.T) {
	now := time.Date(2026, time.October, 18, 14, 30, 0, 0, ist)
	uc := newUseCase(&fakeCatalog{}, now)

	resp, err := uc.Execute(context.Background(), &Request{StudioID: 2, Date: date("2026-10-18")})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 14)
	assert.Equal(t, 8, resp.AvailableCount)
	assert.Equal(t, "RajBilasini (RnB) Studios", resp.StudioName)
	for _, slot := range resp.Slots {
		assert.Equal(t, slot.StartHour >= 15, slot.Available, "hour %d", slot.StartHour)
		assert.True(t, slot.Price.Equal(decimal.NewFromInt(2200)))
	}
}

func TestExecute_FutureDate(t *testing.T) {
	now := time.Date(2026, time.October, 18, 14, 30, 0, 0, ist)
	uc := newUseCase(&fakeCatalog{}, now)

	resp, err := uc.Execute(context.Background(), &Request{StudioID: 2, Date: date("2026-10-23")})
	require.NoError(t, err)
	assert.Equal(t, 14, resp.AvailableCount)
}

func TestExecute_Errors(t *testing.T) {
	now := time.Date(2026, time.October, 18, 14, 30, 0, 0, ist)

	tests := []struct {
		name    string
		catalog *fakeCatalog
		req     *Request
		wantErr error
	}{
		{name: "missing studio id", catalog: &fakeCatalog{}, req: &Request{Date: date("2026-10-20")}, wantErr: ErrInvalidInput},
		{name: "missing date", catalog: &fakeCatalog{}, req: &Request{StudioID: 2}, wantErr: ErrInvalidInput},
		{name: "unknown studio", catalog: &fakeCatalog{}, req: &Request{StudioID: 7, Date: date("2026-10-20")}, wantErr: ErrStudioNotFound},
		{name: "past date", catalog: &fakeCatalog{}, req: &Request{StudioID: 2, Date: date("2026-10-17")}, wantErr: ErrInvalidDate},
		{name: "last day of window is allowed", catalog: &fakeCatalog{}, req: &Request{StudioID: 2, Date: date("2026-11-16")}, wantErr: nil},
		{name: "first day after window", catalog: &fakeCatalog{}, req: &Request{StudioID: 2, Date: date("2026-11-17")}, wantErr: ErrDateTooFarInFuture},
		{name: "catalog failure", catalog: &fakeCatalog{err: errors.New("boom")}, req: &Request{StudioID: 2, Date: date("2026-10-20")}, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.catalog, now)
			_, err := uc.Execute(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
