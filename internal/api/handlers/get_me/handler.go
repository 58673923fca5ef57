package get_me

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers/dto"
	"github.com/m04kA/SMC-StudioBooking/internal/session"
)

const (
	msgUnauthorized = "требуется авторизация"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := session.FromContext(r.Context()).User()
	if !ok {
		h.logger.Warn("GET /me - Anonymous session")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, dto.FromDomainUser(&user))
}
