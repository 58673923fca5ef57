package list_studios

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

const (
	msgInvalidFilter = "некорректный фильтр, диапазон цен: 500-999, 1000-1499, 1500-1999, 2000-2499, 2500+"
)

type Handler struct {
	catalog StudioCatalog
	logger  Logger
}

func NewHandler(catalog StudioCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios
// Query params: search, genre, location, priceRange (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := catalog.StudioFilter{
		Search:     query.Get("search"),
		Genre:      query.Get("genre"),
		Location:   query.Get("location"),
		PriceRange: query.Get("priceRange"),
	}

	studios, err := h.catalog.ListStudios(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidFilter):
			h.logger.Warn("GET /studios - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /studios - Failed to list studios: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /studios - Studios listed successfully: count=%d", len(studios))
	handlers.RespondJSON(w, http.StatusOK, FromDomainStudios(studios))
}
