package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var bookingColumns = []string{
	"booking_id",
	"user_id",
	"studio_id",
	"studio_name",
	"engineer",
	"booking_date",
	"start_time",
	"duration_hours",
	"subtotal",
	"platform_fee",
	"total_price",
	"payment_method",
	"special_requests",
	"contact_number",
	"status",
	"created_at",
}

// Repository хранилище бронирований в PostgreSQL, ключ - booking_id
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование. Запись создается один раз и больше не изменяется.
func (r *Repository) Create(ctx context.Context, booking *domain.BookingRecord) (*domain.BookingRecord, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			booking.BookingID,
			booking.UserID,
			booking.StudioID,
			booking.StudioName,
			booking.Engineer,
			booking.Date,
			booking.StartTime,
			booking.DurationHours,
			booking.Subtotal,
			booking.PlatformFee,
			booking.TotalPrice,
			string(booking.PaymentMethod),
			booking.SpecialRequests,
			booking.ContactNumber,
			string(booking.Status),
			booking.CreatedAt,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: booking_id=%s", ErrBookingExists, booking.BookingID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created := *booking
	if createdAt.Valid {
		created.CreatedAt = createdAt.Time
	}

	return &created, nil
}

// GetByID получает бронирование по booking_id
func (r *Repository) GetByID(ctx context.Context, bookingID string) (*domain.BookingRecord, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает бронирования пользователя, сначала самые поздние сессии
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.BookingRecord, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC", "start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.BookingRecord, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку в порядке bookingColumns
func scanBooking(row rowScanner) (*domain.BookingRecord, error) {
	var booking domain.BookingRecord
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.BookingID,
		&booking.UserID,
		&booking.StudioID,
		&booking.StudioName,
		&booking.Engineer,
		&booking.Date,
		&booking.StartTime,
		&booking.DurationHours,
		&booking.Subtotal,
		&booking.PlatformFee,
		&booking.TotalPrice,
		&booking.PaymentMethod,
		&booking.SpecialRequests,
		&booking.ContactNumber,
		&booking.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	return &booking, nil
}
