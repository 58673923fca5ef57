package quote_booking

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeCatalog map[int64]decimal.Decimal

func (f fakeCatalog) GetStudio(ctx context.Context, id int64) (*domain.Studio, error) {
	rate, ok := f[id]
	if !ok {
		return nil, catalog.ErrStudioNotFound
	}
	return &domain.Studio{ID: id, Name: "Studio", HourlyRate: rate}, nil
}

func newUseCase() *UseCase {
	return NewUseCase(fakeCatalog{
		1: decimal.NewFromInt(1800),
		2: decimal.NewFromInt(2200),
		3: decimal.NewFromInt(1500),
		4: decimal.Zero,
	}, logger.NewNop())
}

func TestExecute(t *testing.T) {
	uc := newUseCase()

	tests := []struct {
		studioID int64
		duration int
		subtotal int64
		fee      int64
		total    int64
	}{
		{studioID: 1, duration: 2, subtotal: 3600, fee: 180, total: 3780},
		{studioID: 3, duration: 8, subtotal: 12000, fee: 600, total: 12600},
		{studioID: 2, duration: 2, subtotal: 4400, fee: 220, total: 4620},
	}

	for _, tt := range tests {
		resp, err := uc.Execute(context.Background(), &Request{StudioID: tt.studioID, DurationHours: tt.duration})
		require.NoError(t, err)

		assert.True(t, resp.Quote.Subtotal.Equal(decimal.NewFromInt(tt.subtotal)), "subtotal %s", resp.Quote.Subtotal)
		assert.True(t, resp.Quote.PlatformFee.Equal(decimal.NewFromInt(tt.fee)), "fee %s", resp.Quote.PlatformFee)
		assert.True(t, resp.Quote.Total.Equal(decimal.NewFromInt(tt.total)), "total %s", resp.Quote.Total)
	}
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{StudioID: 0, DurationHours: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{StudioID: 9, DurationHours: 2})
	assert.ErrorIs(t, err, ErrStudioNotFound)

	_, err = uc.Execute(ctx, &Request{StudioID: 1, DurationHours: 5})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = uc.Execute(ctx, &Request{StudioID: 4, DurationHours: 2})
	assert.ErrorIs(t, err, ErrInvalidRate)
}
