package create_post_production_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	createOrder "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_post_production_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidOrder       = "укажите название проекта, жанр и хотя бы один стем в формате WAV или AIFF"
	msgTierNotFound       = "тариф не найден"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/post-production/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /post-production/orders - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /post-production/orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrValidation):
			h.logger.Warn("POST /post-production/orders - Validation failed: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidOrder)

		case errors.Is(err, createOrder.ErrTierNotFound):
			h.logger.Warn("POST /post-production/orders - Tier not found: tier=%s", req.Tier)
			handlers.RespondNotFound(w, msgTierNotFound)

		default:
			h.logger.Error("POST /post-production/orders - Failed to create order: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /post-production/orders - Order accepted: order_id=%s, user_id=%s", result.Order.OrderID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
