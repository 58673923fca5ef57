package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	quoteBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/quote_booking"
)

const (
	msgInvalidStudioID = "некорректный ID студии"
	msgInvalidDuration = "длительность должна быть 1, 2, 3, 4 или 8 часов"
	msgStudioNotFound  = "студия не найдена"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios/{studioId}/quote
// Query params: duration (required, часы)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, err := strconv.ParseInt(mux.Vars(r)["studioId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /studios/{id}/quote - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	duration, err := strconv.Atoi(r.URL.Query().Get("duration"))
	if err != nil {
		h.logger.Warn("GET /studios/{id}/quote - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quoteBooking.Request{
		StudioID:      studioID,
		DurationHours: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrStudioNotFound):
			h.logger.Warn("GET /studios/{id}/quote - Studio not found: studio_id=%d", studioID)
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, quoteBooking.ErrInvalidDuration):
			h.logger.Warn("GET /studios/{id}/quote - Duration not offered: studio_id=%d, duration=%d", studioID, duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("GET /studios/{id}/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStudioID)

		default:
			h.logger.Error("GET /studios/{id}/quote - Failed to quote: studio_id=%d, duration=%d, error=%v",
				studioID, duration, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
