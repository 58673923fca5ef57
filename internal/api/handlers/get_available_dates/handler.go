package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	getAvailableDates "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_dates"
)

const (
	msgInvalidStudioID = "некорректный ID студии"
	msgInvalidDays     = "некорректное количество дней"
	msgStudioNotFound  = "студия не найдена"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios/{studioId}/available-dates
// Query params: days (optional, по умолчанию окно бронирования из конфигурации)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, err := strconv.ParseInt(mux.Vars(r)["studioId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /studios/{id}/available-dates - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	req := &getAvailableDates.Request{StudioID: studioID}

	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /studios/{id}/available-dates - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrStudioNotFound):
			h.logger.Warn("GET /studios/{id}/available-dates - Studio not found: studio_id=%d", studioID)
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /studios/{id}/available-dates - Invalid input: studio_id=%d, days=%d", studioID, req.Days)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /studios/{id}/available-dates - Failed to get dates: studio_id=%d, error=%v", studioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /studios/{id}/available-dates - Dates retrieved successfully: studio_id=%d, count=%d",
		studioID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
