package register_user

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// RegisterUserRequest HTTP request model
type RegisterUserRequest struct {
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Mobile      string             `json:"mobile,omitempty"`
	Address     string             `json:"address,omitempty"`
	Categories  []string           `json:"categories,omitempty"`
	Role        string             `json:"role,omitempty"`
	Avatar      string             `json:"avatar,omitempty"`
	Preferences *PreferencesRequest `json:"preferences,omitempty"`
}

// PreferencesRequest предпочтения пользователя
type PreferencesRequest struct {
	Genres      []string `json:"genres,omitempty"`
	Location    string   `json:"location,omitempty"`
	BudgetRange string   `json:"budgetRange,omitempty"`
}

// ToDomain конвертирует HTTP запрос в частично заполненный профиль
func (r *RegisterUserRequest) ToDomain() domain.User {
	user := domain.User{
		Name:       r.Name,
		Email:      r.Email,
		Mobile:     r.Mobile,
		Address:    r.Address,
		Categories: r.Categories,
		Role:       domain.Role(r.Role),
		AvatarURL:  r.Avatar,
	}

	if r.Preferences != nil {
		user.Preferences = domain.Preferences{
			Genres:      r.Preferences.Genres,
			Location:    r.Preferences.Location,
			BudgetRange: r.Preferences.BudgetRange,
		}
	}

	return user
}
