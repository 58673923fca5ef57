package get_post_production_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
)

type Handler struct {
	catalog PostProductionCatalog
	logger  Logger
}

func NewHandler(catalog PostProductionCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/post-production/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tiers := h.catalog.ListTiers(r.Context())
	engineers := h.catalog.ListEngineers(r.Context())

	h.logger.Info("GET /post-production/catalog - tiers=%d, engineers=%d", len(tiers), len(engineers))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(tiers, engineers))
}
