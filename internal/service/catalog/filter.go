package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// anyValue значение выпадающего списка "без фильтра"
const anyValue = "All"

// StudioFilter фильтр списка студий; пустые поля не ограничивают выборку
type StudioFilter struct {
	Search     string
	Genre      string
	Location   string
	PriceRange string
}

// ReviewSort порядок сортировки отзывов
type ReviewSort string

const (
	ReviewSortRecent  ReviewSort = "recent"
	ReviewSortRating  ReviewSort = "rating"
	ReviewSortHelpful ReviewSort = "helpful"
)

// ReviewTypeAll отключает фильтр по типу отзыва
const ReviewTypeAll = "all"

// ReviewFilter фильтр и сортировка списка отзывов
type ReviewFilter struct {
	Type   string
	Search string
	Sort   ReviewSort
}

type priceBounds struct {
	min decimal.Decimal
	max *decimal.Decimal
}

var priceRanges = map[string]priceBounds{
	"500-999":   {min: decimal.NewFromInt(500), max: decPtr(999)},
	"1000-1499": {min: decimal.NewFromInt(1000), max: decPtr(1499)},
	"1500-1999": {min: decimal.NewFromInt(1500), max: decPtr(1999)},
	"2000-2499": {min: decimal.NewFromInt(2000), max: decPtr(2499)},
	"2500+":     {min: decimal.NewFromInt(2500)},
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

type studioPredicate func(s *domain.Studio) bool

type reviewPredicate func(r *domain.Review) bool

func isAny(v string) bool {
	return v == "" || v == anyValue
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// predicates собирает условия фильтра, объединяемые через AND
func (f StudioFilter) predicates() ([]studioPredicate, error) {
	var preds []studioPredicate

	if search := strings.TrimSpace(f.Search); search != "" {
		preds = append(preds, func(s *domain.Studio) bool {
			if containsFold(s.Name, search) || containsFold(s.Location, search) {
				return true
			}
			for _, sp := range s.Specialties {
				if containsFold(sp, search) {
					return true
				}
			}
			return false
		})
	}

	if !isAny(f.Genre) {
		genre := f.Genre
		preds = append(preds, func(s *domain.Studio) bool {
			return s.HasSpecialty(genre)
		})
	}

	if !isAny(f.Location) {
		location := f.Location
		preds = append(preds, func(s *domain.Studio) bool {
			return containsFold(s.Location, location)
		})
	}

	if !isAny(f.PriceRange) {
		bounds, ok := priceRanges[f.PriceRange]
		if !ok {
			return nil, fmt.Errorf("%w: unknown price range %q", ErrInvalidFilter, f.PriceRange)
		}
		preds = append(preds, func(s *domain.Studio) bool {
			if s.HourlyRate.LessThan(bounds.min) {
				return false
			}
			return bounds.max == nil || s.HourlyRate.LessThanOrEqual(*bounds.max)
		})
	}

	return preds, nil
}

func (f ReviewFilter) predicates() ([]reviewPredicate, error) {
	var preds []reviewPredicate

	switch f.Type {
	case "", ReviewTypeAll:
	case string(domain.ReviewTypeStudio), string(domain.ReviewTypePostProduction):
		reviewType := domain.ReviewType(f.Type)
		preds = append(preds, func(r *domain.Review) bool {
			return r.Type == reviewType
		})
	default:
		return nil, fmt.Errorf("%w: unknown review type %q", ErrInvalidFilter, f.Type)
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		preds = append(preds, func(r *domain.Review) bool {
			return containsFold(r.Service, search) ||
				containsFold(r.Title, search) ||
				containsFold(r.Content, search)
		})
	}

	return preds, nil
}

func matchStudio(s *domain.Studio, preds []studioPredicate) bool {
	for _, p := range preds {
		if !p(s) {
			return false
		}
	}
	return true
}

func matchReview(r *domain.Review, preds []reviewPredicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// sortReviews сортирует отзывы на месте; при равенстве ключа порядок по ID
func sortReviews(reviews []domain.Review, order ReviewSort) error {
	var less func(a, b *domain.Review) int

	switch order {
	case "", ReviewSortRecent:
		less = func(a, b *domain.Review) int {
			switch {
			case a.Date.After(b.Date):
				return -1
			case a.Date.Before(b.Date):
				return 1
			}
			return 0
		}
	case ReviewSortRating:
		less = func(a, b *domain.Review) int { return b.Rating - a.Rating }
	case ReviewSortHelpful:
		less = func(a, b *domain.Review) int { return b.Helpful - a.Helpful }
	default:
		return fmt.Errorf("%w: unknown sort %q", ErrInvalidFilter, order)
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		if c := less(&reviews[i], &reviews[j]); c != 0 {
			return c < 0
		}
		return reviews[i].ID < reviews[j].ID
	})
	return nil
}
