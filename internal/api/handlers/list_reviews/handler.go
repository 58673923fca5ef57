package list_reviews

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
)

const (
	msgInvalidFilter = "некорректный фильтр: type = all, studio, post-production; sort = recent, rating, helpful"
)

type Handler struct {
	catalog ReviewCatalog
	logger  Logger
}

func NewHandler(catalog ReviewCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/reviews
// Query params: type, search, sort (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := catalog.ReviewFilter{
		Type:   query.Get("type"),
		Search: query.Get("search"),
		Sort:   catalog.ReviewSort(query.Get("sort")),
	}

	reviews, err := h.catalog.ListReviews(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidFilter):
			h.logger.Warn("GET /reviews - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reviews - Failed to list reviews: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainReviews(reviews))
}
