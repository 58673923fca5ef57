package list_studios

import (
	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers/dto"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// StudiosResponse HTTP response model
type StudiosResponse struct {
	Studios []dto.StudioResponse `json:"studios"`
	Count   int                  `json:"count"`
}

// FromDomainStudios конвертирует список студий в HTTP response
func FromDomainStudios(studios []domain.Studio) *StudiosResponse {
	resp := &StudiosResponse{
		Studios: make([]dto.StudioResponse, len(studios)),
		Count:   len(studios),
	}
	for i := range studios {
		resp.Studios[i] = dto.FromDomainStudio(&studios[i])
	}
	return resp
}
