package create_post_production_order

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers/dto"
	createOrder "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_post_production_order"
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	ProjectName    string   `json:"projectName"`
	Genre          string   `json:"genre"`
	Tier           string   `json:"tier"`
	Stems          []string `json:"stems"` // имена файлов .wav / .aiff
	ReferenceTrack string   `json:"referenceTrack,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	CallRequested  bool     `json:"callRequested"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	OrderID        string           `json:"orderId"`
	ProjectName    string           `json:"projectName"`
	Genre          string           `json:"genre"`
	Tier           dto.TierResponse `json:"tier"`
	Stems          []string         `json:"stems"`
	ReferenceTrack string           `json:"referenceTrack,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	CallRequested  bool             `json:"callRequested"`
	Status         string           `json:"status"`
	CreatedAt      string           `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest(userID string) *createOrder.Request {
	return &createOrder.Request{
		UserID:         userID,
		ProjectName:    r.ProjectName,
		Genre:          r.Genre,
		TierID:         r.Tier,
		Stems:          r.Stems,
		ReferenceTrack: r.ReferenceTrack,
		Notes:          r.Notes,
		CallRequested:  r.CallRequested,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *OrderResponse {
	o := resp.Order
	return &OrderResponse{
		OrderID:        o.OrderID,
		ProjectName:    o.ProjectName,
		Genre:          o.Genre,
		Tier:           dto.FromDomainTier(&o.Tier),
		Stems:          o.Stems,
		ReferenceTrack: o.ReferenceTrack,
		Notes:          o.Notes,
		CallRequested:  o.CallRequested,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
	}
}
