package get_post_production_catalog

import (
	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers/dto"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// EngineerResponse HTTP модель инженера
type EngineerResponse struct {
	Name              string   `json:"name"`
	Specialties       []string `json:"specialties"`
	Experience        string   `json:"experience"`
	Rating            float64  `json:"rating"`
	CompletedProjects int      `json:"completedProjects"`
	Credits           []string `json:"credits"`
	Avatar            string   `json:"avatar,omitempty"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Tiers     []dto.TierResponse `json:"tiers"`
	Engineers []EngineerResponse `json:"engineers"`
}

// FromDomain конвертирует тарифы и инженеров в HTTP response
func FromDomain(tiers []domain.Tier, engineers []domain.Engineer) *CatalogResponse {
	resp := &CatalogResponse{
		Tiers:     make([]dto.TierResponse, len(tiers)),
		Engineers: make([]EngineerResponse, len(engineers)),
	}
	for i := range tiers {
		resp.Tiers[i] = dto.FromDomainTier(&tiers[i])
	}
	for i, e := range engineers {
		resp.Engineers[i] = EngineerResponse{
			Name:              e.Name,
			Specialties:       e.Specialties,
			Experience:        e.Experience,
			Rating:            e.Rating,
			CompletedProjects: e.CompletedProjects,
			Credits:           e.Credits,
			Avatar:            e.AvatarURL,
		}
	}
	return resp
}
