package domain

import "github.com/m04kA/SMC-StudioBooking/pkg/types"

// Role of a marketplace user
type Role string

const (
	RoleArtist      Role = "artist"
	RoleStudioOwner Role = "studio_owner"
	RoleEngineer    Role = "engineer"
	RoleAdmin       Role = "admin"
)

// IsValid returns true for a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleArtist, RoleStudioOwner, RoleEngineer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Preferences of a user used for recommendations
type Preferences struct {
	Genres      []string
	Location    string
	BudgetRange string
}

// User represents a marketplace user profile
type User struct {
	ID          string
	UID         string // 4 digits + 2 capital letters, e.g. 1234AB
	Name        string
	Email       string
	Mobile      string
	Address     string
	Categories  []string
	Role        Role
	AvatarURL   string
	Preferences Preferences
	CreatedAt   types.Date
}
