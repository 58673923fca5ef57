package register_user

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers/dto"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProfile     = "имя и email обязательны, роль: artist, studio_owner, engineer, admin"
)

type Handler struct {
	users    UserRegistry
	location *time.Location
	logger   Logger
}

func NewHandler(users UserRegistry, location *time.Location, logger Logger) *Handler {
	return &Handler{
		users:    users,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.users.RegisterUser(r.Context(), req.ToDomain(), time.Now().In(h.location))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid profile: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		default:
			h.logger.Error("POST /users - Failed to register user: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User registered successfully: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, dto.FromDomainUser(user))
}
