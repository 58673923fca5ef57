package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Studio represents a recording studio listed on the marketplace
type Studio struct {
	ID             int64
	Name           string
	Location       string
	Description    string
	Rating         float64
	ReviewsCount   int
	HourlyRate     decimal.Decimal
	Engineer       string
	EngineerRating float64
	Specialties    []string
	Equipment      []string
	Amenities      []string
	StudioSize     string
	MaxCapacity    int
	Featured       bool
	AnalogueGear   bool
	ImageURL       string
}

// HasSpecialty returns true if the studio lists the genre among its specialties
func (s *Studio) HasSpecialty(genre string) bool {
	for _, sp := range s.Specialties {
		if sp == genre {
			return true
		}
	}
	return false
}

// Engineer represents a post-production engineer
type Engineer struct {
	Name              string
	Specialties       []string
	Experience        string
	Rating            float64
	CompletedProjects int
	Credits           []string
	AvatarURL         string
}

// ReviewType what kind of service a review is about
type ReviewType string

const (
	ReviewTypeStudio         ReviewType = "studio"
	ReviewTypePostProduction ReviewType = "post-production"
)

// Review represents a customer review
type Review struct {
	ID       int64
	User     string
	Rating   int
	Date     types.Date
	Type     ReviewType
	Service  string
	Title    string
	Content  string
	Helpful  int
	Replies  int
	Verified bool
}

// Tier represents a post-production service level
type Tier struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Delivery  string
	Revisions string
	Features  []string
	Popular   bool
}

// OrderStatus status of a post-production order
type OrderStatus string

const OrderStatusReceived OrderStatus = "received"

// PostProductionOrder represents a submitted mixing/mastering order
type PostProductionOrder struct {
	OrderID        string
	UserID         string
	ProjectName    string
	Genre          string
	Tier           Tier
	Stems          []string
	ReferenceTrack string
	Notes          string
	CallRequested  bool
	Status         OrderStatus
	CreatedAt      time.Time
}
