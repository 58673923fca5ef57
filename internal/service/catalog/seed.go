package catalog

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

//go:embed seed.toml
var defaultSeed []byte

// Seed содержимое каталога
type Seed struct {
	Studios   []domain.Studio
	Engineers []domain.Engineer
	Reviews   []domain.Review
	Tiers     []domain.Tier
	Users     []domain.User
}

type seedFile struct {
	Studios   []studioSeed   `toml:"studios"`
	Engineers []engineerSeed `toml:"engineers"`
	Reviews   []reviewSeed   `toml:"reviews"`
	Tiers     []tierSeed     `toml:"tiers"`
	Users     []userSeed     `toml:"users"`
}

type studioSeed struct {
	ID             int64    `toml:"id"`
	Name           string   `toml:"name"`
	Location       string   `toml:"location"`
	Description    string   `toml:"description"`
	Rating         float64  `toml:"rating"`
	ReviewsCount   int      `toml:"reviews_count"`
	HourlyRate     string   `toml:"hourly_rate"`
	Engineer       string   `toml:"engineer"`
	EngineerRating float64  `toml:"engineer_rating"`
	Specialties    []string `toml:"specialties"`
	Equipment      []string `toml:"equipment"`
	Amenities      []string `toml:"amenities"`
	StudioSize     string   `toml:"studio_size"`
	MaxCapacity    int      `toml:"max_capacity"`
	Featured       bool     `toml:"featured"`
	AnalogueGear   bool     `toml:"analogue_gear"`
	ImageURL       string   `toml:"image_url"`
}

type engineerSeed struct {
	Name              string   `toml:"name"`
	Specialties       []string `toml:"specialties"`
	Experience        string   `toml:"experience"`
	Rating            float64  `toml:"rating"`
	CompletedProjects int      `toml:"completed_projects"`
	Credits           []string `toml:"credits"`
	AvatarURL         string   `toml:"avatar_url"`
}

type reviewSeed struct {
	ID       int64      `toml:"id"`
	User     string     `toml:"user"`
	Rating   int        `toml:"rating"`
	Date     types.Date `toml:"date"`
	Type     string     `toml:"type"`
	Service  string     `toml:"service"`
	Title    string     `toml:"title"`
	Content  string     `toml:"content"`
	Helpful  int        `toml:"helpful"`
	Replies  int        `toml:"replies"`
	Verified bool       `toml:"verified"`
}

type tierSeed struct {
	ID        string   `toml:"id"`
	Name      string   `toml:"name"`
	Price     string   `toml:"price"`
	Delivery  string   `toml:"delivery"`
	Revisions string   `toml:"revisions"`
	Features  []string `toml:"features"`
	Popular   bool     `toml:"popular"`
}

type userSeed struct {
	ID          string     `toml:"id"`
	UID         string     `toml:"uid"`
	Name        string     `toml:"name"`
	Email       string     `toml:"email"`
	Mobile      string     `toml:"mobile"`
	Address     string     `toml:"address"`
	Categories  []string   `toml:"categories"`
	Role        string     `toml:"role"`
	AvatarURL   string     `toml:"avatar_url"`
	CreatedAt   types.Date `toml:"created_at"`
	Preferences struct {
		Genres      []string `toml:"genres"`
		Location    string   `toml:"location"`
		BudgetRange string   `toml:"budget_range"`
	} `toml:"preferences"`
}

// DefaultSeed разбирает встроенный каталог
func DefaultSeed() (*Seed, error) {
	return ParseSeed(defaultSeed)
}

// ParseSeed разбирает каталог в формате TOML
func ParseSeed(data []byte) (*Seed, error) {
	var file seedFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidSeed, err)
	}

	seed := &Seed{}

	for _, s := range file.Studios {
		rate, err := decimal.NewFromString(s.HourlyRate)
		if err != nil {
			return nil, fmt.Errorf("%w: studio id=%d hourly_rate %q: %v", ErrInvalidSeed, s.ID, s.HourlyRate, err)
		}
		seed.Studios = append(seed.Studios, domain.Studio{
			ID:             s.ID,
			Name:           s.Name,
			Location:       s.Location,
			Description:    s.Description,
			Rating:         s.Rating,
			ReviewsCount:   s.ReviewsCount,
			HourlyRate:     rate,
			Engineer:       s.Engineer,
			EngineerRating: s.EngineerRating,
			Specialties:    s.Specialties,
			Equipment:      s.Equipment,
			Amenities:      s.Amenities,
			StudioSize:     s.StudioSize,
			MaxCapacity:    s.MaxCapacity,
			Featured:       s.Featured,
			AnalogueGear:   s.AnalogueGear,
			ImageURL:       s.ImageURL,
		})
	}

	for _, e := range file.Engineers {
		seed.Engineers = append(seed.Engineers, domain.Engineer{
			Name:              e.Name,
			Specialties:       e.Specialties,
			Experience:        e.Experience,
			Rating:            e.Rating,
			CompletedProjects: e.CompletedProjects,
			Credits:           e.Credits,
			AvatarURL:         e.AvatarURL,
		})
	}

	for _, r := range file.Reviews {
		reviewType := domain.ReviewType(r.Type)
		if reviewType != domain.ReviewTypeStudio && reviewType != domain.ReviewTypePostProduction {
			return nil, fmt.Errorf("%w: review id=%d has unknown type %q", ErrInvalidSeed, r.ID, r.Type)
		}
		seed.Reviews = append(seed.Reviews, domain.Review{
			ID:       r.ID,
			User:     r.User,
			Rating:   r.Rating,
			Date:     r.Date,
			Type:     reviewType,
			Service:  r.Service,
			Title:    r.Title,
			Content:  r.Content,
			Helpful:  r.Helpful,
			Replies:  r.Replies,
			Verified: r.Verified,
		})
	}

	for _, t := range file.Tiers {
		price, err := decimal.NewFromString(t.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: tier %q price %q: %v", ErrInvalidSeed, t.ID, t.Price, err)
		}
		seed.Tiers = append(seed.Tiers, domain.Tier{
			ID:        t.ID,
			Name:      t.Name,
			Price:     price,
			Delivery:  t.Delivery,
			Revisions: t.Revisions,
			Features:  t.Features,
			Popular:   t.Popular,
		})
	}

	for _, u := range file.Users {
		seed.Users = append(seed.Users, domain.User{
			ID:         u.ID,
			UID:        u.UID,
			Name:       u.Name,
			Email:      u.Email,
			Mobile:     u.Mobile,
			Address:    u.Address,
			Categories: u.Categories,
			Role:       domain.Role(u.Role),
			AvatarURL:  u.AvatarURL,
			Preferences: domain.Preferences{
				Genres:      u.Preferences.Genres,
				Location:    u.Preferences.Location,
				BudgetRange: u.Preferences.BudgetRange,
			},
			CreatedAt: u.CreatedAt,
		})
	}

	return seed, nil
}
