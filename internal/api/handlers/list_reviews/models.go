package list_reviews

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// ReviewResponse HTTP модель отзыва
type ReviewResponse struct {
	ID       int64  `json:"id"`
	User     string `json:"user"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Service  string `json:"service"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Helpful  int    `json:"helpful"`
	Replies  int    `json:"replies"`
	Verified bool   `json:"verified"`
}

// ReviewsResponse HTTP response model
type ReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Count   int              `json:"count"`
}

// FromDomainReviews конвертирует отзывы в HTTP response
func FromDomainReviews(reviews []domain.Review) *ReviewsResponse {
	resp := &ReviewsResponse{
		Reviews: make([]ReviewResponse, len(reviews)),
		Count:   len(reviews),
	}
	for i, r := range reviews {
		resp.Reviews[i] = ReviewResponse{
			ID:       r.ID,
			User:     r.User,
			Rating:   r.Rating,
			Date:     r.Date.String(),
			Type:     string(r.Type),
			Service:  r.Service,
			Title:    r.Title,
			Content:  r.Content,
			Helpful:  r.Helpful,
			Replies:  r.Replies,
			Verified: r.Verified,
		}
	}
	return resp
}
