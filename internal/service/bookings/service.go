package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	lastBookingStore "github.com/m04kA/SMC-StudioBooking/internal/infra/cache/lastbooking"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Service сервис чтения бронирований: подтверждение, последнее бронирование, история и дашборд
type Service struct {
	bookingRepo  BookingRepository
	lastBookings LastBookingStore
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	lastBookings LastBookingStore,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		lastBookings: lastBookings,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// GetByID получает бронирование по номеру.
// Если основное хранилище его не знает, используется запись последнего бронирования пользователя.
// Пользователь может видеть только своё бронирование.
func (s *Service) GetByID(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", bookingID, userID)

	if bookingID == "" {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Error("GetByID: repository error for booking id=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
		}

		// Запасной вариант: последнее бронирование пользователя
		booking, err = s.fromLastBooking(ctx, bookingID, userID)
		if err != nil {
			return nil, err
		}
	}

	// Проверяем права доступа
	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, bookingID)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", bookingID)
	return models.FromDomainBooking(booking), nil
}

// GetLastBooking получает последнее бронирование пользователя
func (s *Service) GetLastBooking(ctx context.Context, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetLastBooking: fetching last booking for user=%s", userID)

	booking, err := s.lastBookings.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, lastBookingStore.ErrNotFound) {
			s.logger.Warn("GetLastBooking: no last booking for user=%s", userID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetLastBooking: store error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetLastBooking - store error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя вместе со сводкой для дашборда.
// Пользователь может запросить только свою историю.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.UserBookingsResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s by requester=%s", req.UserID, req.RequesterID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.UserID != req.RequesterID {
		s.logger.Warn("GetUserBookings: access denied for user=%s to bookings of user=%s", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	today := types.NewDate(s.timeProvider.Now())

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return &models.UserBookingsResponse{
		Bookings:  models.FromDomainBookingList(bookings).Bookings,
		Dashboard: *models.SummarizeBookings(bookings, today),
	}, nil
}

// fromLastBooking возвращает запись последнего бронирования, если у неё запрошенный номер
func (s *Service) fromLastBooking(ctx context.Context, bookingID, userID string) (*domain.BookingRecord, error) {
	last, err := s.lastBookings.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, lastBookingStore.ErrNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: last booking store error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrInternal, err)
	}

	if last.BookingID != bookingID {
		s.logger.Warn("GetByID: booking id=%s not found", bookingID)
		return nil, ErrBookingNotFound
	}

	s.logger.Info("GetByID: booking id=%s served from last booking record", bookingID)
	return last, nil
}
