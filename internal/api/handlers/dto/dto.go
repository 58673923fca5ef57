// Package dto содержит JSON модели каталога, общие для нескольких handlers
package dto

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// StudioResponse карточка студии
type StudioResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	HourlyRate     float64  `json:"hourlyRate"`
	Engineer       string   `json:"engineer"`
	EngineerRating float64  `json:"engineerRating"`
	Specialties    []string `json:"specialties"`
	Equipment      []string `json:"equipment"`
	Amenities      []string `json:"amenities"`
	StudioSize     string   `json:"studioSize"`
	MaxCapacity    int      `json:"maxCapacity"`
	Featured       bool     `json:"featured"`
	AnalogueGear   bool     `json:"analogueGear"`
	Image          string   `json:"image,omitempty"`
}

// UserResponse профиль пользователя
type UserResponse struct {
	ID          string              `json:"id"`
	UID         string              `json:"uid"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Mobile      string              `json:"mobile,omitempty"`
	Address     string              `json:"address,omitempty"`
	Categories  []string            `json:"categories"`
	Role        string              `json:"role"`
	Avatar      string              `json:"avatar,omitempty"`
	Preferences PreferencesResponse `json:"preferences"`
	CreatedAt   string              `json:"createdAt"`
}

// PreferencesResponse предпочтения пользователя
type PreferencesResponse struct {
	Genres      []string `json:"genres"`
	Location    string   `json:"location,omitempty"`
	BudgetRange string   `json:"budgetRange,omitempty"`
}

// TierResponse тариф постпродакшна
type TierResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Delivery  string   `json:"delivery"`
	Revisions string   `json:"revisions"`
	Features  []string `json:"features"`
	Popular   bool     `json:"popular"`
}

// FromDomainStudio конвертирует студию в DTO
func FromDomainStudio(s *domain.Studio) StudioResponse {
	return StudioResponse{
		ID:             s.ID,
		Name:           s.Name,
		Location:       s.Location,
		Description:    s.Description,
		Rating:         s.Rating,
		Reviews:        s.ReviewsCount,
		HourlyRate:     s.HourlyRate.InexactFloat64(),
		Engineer:       s.Engineer,
		EngineerRating: s.EngineerRating,
		Specialties:    nonNil(s.Specialties),
		Equipment:      nonNil(s.Equipment),
		Amenities:      nonNil(s.Amenities),
		StudioSize:     s.StudioSize,
		MaxCapacity:    s.MaxCapacity,
		Featured:       s.Featured,
		AnalogueGear:   s.AnalogueGear,
		Image:          s.ImageURL,
	}
}

// FromDomainUser конвертирует профиль в DTO
func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		UID:        u.UID,
		Name:       u.Name,
		Email:      u.Email,
		Mobile:     u.Mobile,
		Address:    u.Address,
		Categories: nonNil(u.Categories),
		Role:       string(u.Role),
		Avatar:     u.AvatarURL,
		Preferences: PreferencesResponse{
			Genres:      nonNil(u.Preferences.Genres),
			Location:    u.Preferences.Location,
			BudgetRange: u.Preferences.BudgetRange,
		},
		CreatedAt: u.CreatedAt.String(),
	}
}

// FromDomainTier конвертирует тариф в DTO
func FromDomainTier(t *domain.Tier) TierResponse {
	return TierResponse{
		ID:        t.ID,
		Name:      t.Name,
		Price:     t.Price.InexactFloat64(),
		Delivery:  t.Delivery,
		Revisions: t.Revisions,
		Features:  nonNil(t.Features),
		Popular:   t.Popular,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
