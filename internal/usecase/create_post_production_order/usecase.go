package create_post_production_order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

// UseCase use case для приема заказа постпродакшна
type UseCase struct {
	tiers        TierCatalog
	ids          IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tiers TierCatalog, ids IDGenerator, logger Logger) *UseCase {
	return &UseCase{
		tiers:        tiers,
		ids:          ids,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute принимает заказ. Заказ не сохраняется, клиент получает только подтверждение.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePostProductionOrder: user=%s, project=%q, tier=%s, stems=%d",
		req.UserID, req.ProjectName, req.TierID, len(req.Stems))

	// 1. Валидация формы
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePostProductionOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тариф
	tier, err := uc.tiers.GetTier(ctx, req.TierID)
	if err != nil {
		if errors.Is(err, catalog.ErrTierNotFound) {
			uc.logger.Warn("CreatePostProductionOrder: tier %q not found", req.TierID)
			return nil, ErrTierNotFound
		}
		uc.logger.Error("CreatePostProductionOrder: failed to get tier %q: %v", req.TierID, err)
		return nil, fmt.Errorf("%w: failed to get tier: %v", ErrInternal, err)
	}

	// 3. Формируем заказ
	now := uc.timeProvider.Now()

	stems := make([]string, 0, len(req.Stems))
	for _, stem := range req.Stems {
		stems = append(stems, strings.TrimSpace(stem))
	}

	order := domain.PostProductionOrder{
		OrderID:        uc.ids.NewOrderID(now),
		UserID:         req.UserID,
		ProjectName:    strings.TrimSpace(req.ProjectName),
		Genre:          strings.TrimSpace(req.Genre),
		Tier:           *tier,
		Stems:          stems,
		ReferenceTrack: strings.TrimSpace(req.ReferenceTrack),
		Notes:          strings.TrimSpace(req.Notes),
		CallRequested:  req.CallRequested,
		Status:         domain.OrderStatusReceived,
		CreatedAt:      now,
	}

	uc.logger.Info("CreatePostProductionOrder: accepted order id=%s, tier=%s, price=%s",
		order.OrderID, tier.ID, tier.Price.String())

	return &Response{Order: order}, nil
}
