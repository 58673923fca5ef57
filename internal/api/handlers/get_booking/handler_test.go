package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-StudioBooking/internal/session"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeService struct{}

func (fakeService) GetByID(ctx context.Context, bookingID, userID string) (*models.BookingResponse, error) {
	switch {
	case bookingID != "SYM-1":
		return nil, bookings.ErrBookingNotFound
	case userID != "1":
		return nil, bookings.ErrAccessDenied
	}
	return &models.BookingResponse{BookingID: bookingID, UserID: userID}, nil
}

func serve(bookingID, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}", NewHandler(fakeService{}, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodGet, "/bookings/"+bookingID, nil)
	if userID != "" {
		s := session.Anonymous().Login(domain.User{ID: userID})
		req = req.WithContext(session.WithSession(req.Context(), s))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve("SYM-1", "1").Code)
	assert.Equal(t, http.StatusForbidden, serve("SYM-1", "2").Code)
	assert.Equal(t, http.StatusNotFound, serve("SYM-2", "1").Code)
	assert.Equal(t, http.StatusUnauthorized, serve("SYM-1", "").Code)
}
