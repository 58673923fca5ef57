package create_post_production_order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeTiers map[string]domain.Tier

func (f fakeTiers) GetTier(ctx context.Context, id string) (*domain.Tier, error) {
	tier, ok := f[id]
	if !ok {
		return nil, catalog.ErrTierNotFound
	}
	return &tier, nil
}

type fixedIDs struct{}

func (fixedIDs) NewOrderID(now time.Time) string { return "PPO-TEST-00001" }

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newUseCase() *UseCase {
	uc := NewUseCase(fakeTiers{
		"professional": {ID: "professional", Name: "Professional", Price: decimal.NewFromInt(4999), Delivery: "5-7 days"},
	}, fixedIDs{}, logger.NewNop())
	uc.timeProvider = fixedTime{t: time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:      "1",
		ProjectName: "  Monsoon EP ",
		Genre:       "Indie",
		TierID:      "professional",
		Stems:       []string{"vocals.WAV", "drums.aiff"},
		Notes:       "warm low end",
	}
}

func TestExecute(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	order := resp.Order
	assert.Equal(t, "PPO-TEST-00001", order.OrderID)
	assert.Equal(t, "Monsoon EP", order.ProjectName)
	assert.Equal(t, domain.OrderStatusReceived, order.Status)
	assert.Equal(t, "professional", order.Tier.ID)
	assert.True(t, order.Tier.Price.Equal(decimal.NewFromInt(4999)))
	assert.Equal(t, []string{"vocals.WAV", "drums.aiff"}, order.Stems)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "missing project name", mutate: func(r *Request) { r.ProjectName = " " }},
		{name: "missing genre", mutate: func(r *Request) { r.Genre = "" }},
		{name: "missing tier", mutate: func(r *Request) { r.TierID = "" }},
		{name: "no stems", mutate: func(r *Request) { r.Stems = nil }},
		{name: "lossy stem", mutate: func(r *Request) { r.Stems = []string{"vocals.wav", "guitar.mp3"} }},
		{name: "stem without extension", mutate: func(r *Request) { r.Stems = []string{"bass"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := newUseCase().Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestExecute_UnknownTier(t *testing.T) {
	req := validRequest()
	req.TierID = "platinum"

	_, err := newUseCase().Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTierNotFound)
}
