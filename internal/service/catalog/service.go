package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/session"
)

// Service каталог маркетплейса: студии, инженеры, отзывы, тарифы и профили пользователей.
// Студии, отзывы и тарифы неизменяемы после загрузки; пользователи добавляются через RegisterUser.
type Service struct {
	studios   []domain.Studio
	engineers []domain.Engineer
	reviews   []domain.Review
	tiers     []domain.Tier

	mu    sync.RWMutex
	users map[string]domain.User

	random RandomSource
	logger Logger
}

// NewService создает каталог из разобранного seed
func NewService(seed *Seed, random RandomSource, logger Logger) *Service {
	if random == nil {
		random = session.DefaultRandom
	}

	users := make(map[string]domain.User, len(seed.Users))
	for _, u := range seed.Users {
		users[u.ID] = u
	}

	return &Service{
		studios:   seed.Studios,
		engineers: seed.Engineers,
		reviews:   seed.Reviews,
		tiers:     seed.Tiers,
		users:     users,
		random:    random,
		logger:    logger,
	}
}

// ListStudios возвращает студии, удовлетворяющие всем условиям фильтра
func (s *Service) ListStudios(ctx context.Context, filter StudioFilter) ([]domain.Studio, error) {
	preds, err := filter.predicates()
	if err != nil {
		s.logger.Warn("ListStudios: invalid filter %+v: %v", filter, err)
		return nil, err
	}

	result := make([]domain.Studio, 0, len(s.studios))
	for i := range s.studios {
		if matchStudio(&s.studios[i], preds) {
			result = append(result, s.studios[i])
		}
	}

	s.logger.Info("ListStudios: %d of %d studios match filter %+v", len(result), len(s.studios), filter)
	return result, nil
}

// GetStudio возвращает студию по ID
func (s *Service) GetStudio(ctx context.Context, id int64) (*domain.Studio, error) {
	for i := range s.studios {
		if s.studios[i].ID == id {
			studio := s.studios[i]
			return &studio, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrStudioNotFound, id)
}

// ListReviews возвращает отфильтрованные и отсортированные отзывы
func (s *Service) ListReviews(ctx context.Context, filter ReviewFilter) ([]domain.Review, error) {
	preds, err := filter.predicates()
	if err != nil {
		s.logger.Warn("ListReviews: invalid filter %+v: %v", filter, err)
		return nil, err
	}

	result := make([]domain.Review, 0, len(s.reviews))
	for i := range s.reviews {
		if matchReview(&s.reviews[i], preds) {
			result = append(result, s.reviews[i])
		}
	}

	if err := sortReviews(result, filter.Sort); err != nil {
		s.logger.Warn("ListReviews: invalid sort %q: %v", filter.Sort, err)
		return nil, err
	}

	return result, nil
}

// ListTiers возвращает тарифы постпродакшна в порядке каталога
func (s *Service) ListTiers(ctx context.Context) []domain.Tier {
	return append([]domain.Tier(nil), s.tiers...)
}

// GetTier возвращает тариф постпродакшна по идентификатору
func (s *Service) GetTier(ctx context.Context, id string) (*domain.Tier, error) {
	for i := range s.tiers {
		if s.tiers[i].ID == id {
			tier := s.tiers[i]
			return &tier, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%q", ErrTierNotFound, id)
}

// ListEngineers возвращает инженеров постпродакшна
func (s *Service) ListEngineers(ctx context.Context) []domain.Engineer {
	return append([]domain.Engineer(nil), s.engineers...)
}

// GetUser возвращает профиль пользователя по ID
func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%q", ErrUserNotFound, id)
	}
	return &user, nil
}

// RegisterUser создает профиль пользователя с новым ID и UID
func (s *Service) RegisterUser(ctx context.Context, partial domain.User, now time.Time) (*domain.User, error) {
	if strings.TrimSpace(partial.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(partial.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if partial.Role != "" && !partial.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, partial.Role)
	}

	profile := session.NewUserProfile(partial, now, s.random)

	s.mu.Lock()
	s.users[profile.ID] = profile
	s.mu.Unlock()

	s.logger.Info("RegisterUser: registered user id=%s uid=%s", profile.ID, profile.UID)
	return &profile, nil
}
