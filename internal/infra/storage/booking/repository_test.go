package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

func sampleBooking(id, userID, date, start string) *domain.BookingRecord {
	d, _ := types.ParseDate(date)
	return &domain.BookingRecord{
		BookingID:     id,
		UserID:        userID,
		StudioID:      2,
		StudioName:    "RajBilasini (RnB) Studios",
		Engineer:      "Rajesh Mohanty",
		Date:          d,
		StartTime:     types.TimeString(start),
		DurationHours: 2,
		Subtotal:      decimal.NewFromInt(4400),
		PlatformFee:   decimal.NewFromInt(220),
		TotalPrice:    decimal.NewFromInt(4620),
		PaymentMethod: domain.PaymentOnline,
		ContactNumber: "+91 98765 43210",
		Status:        domain.StatusConfirmed,
		CreatedAt:     time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC),
	}
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func addRow(rows *sqlmock.Rows, b *domain.BookingRecord) *sqlmock.Rows {
	return rows.AddRow(
		b.BookingID, b.UserID, b.StudioID, b.StudioName, b.Engineer,
		b.Date.In(time.UTC), b.StartTime.String(), b.DurationHours,
		b.Subtotal.StringFixed(2), b.PlatformFee.StringFixed(2), b.TotalPrice.StringFixed(2),
		string(b.PaymentMethod), b.SpecialRequests, b.ContactNumber, string(b.Status), b.CreatedAt,
	)
}

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := sampleBooking("SYM-ABC-12345", "1", "2026-10-23", "14:00")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (booking_id,user_id,studio_id")).
		WithArgs(
			"SYM-ABC-12345", "1", int64(2), "RajBilasini (RnB) Studios", "Rajesh Mohanty",
			"2026-10-23", "14:00", int64(2), "4400", "220", "4620",
			"online", "", "+91 98765 43210", "confirmed", b.CreatedAt,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(b.CreatedAt))

	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, b.BookingID, created.BookingID)
	assert.Equal(t, b.CreatedAt, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), sampleBooking("SYM-ABC-12345", "1", "2026-10-23", "14:00"))
	assert.ErrorIs(t, err, ErrBookingExists)
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), sampleBooking("SYM-ABC-12345", "1", "2026-10-23", "14:00"))
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := sampleBooking("SYM-ABC-12345", "1", "2026-10-23", "14:00")

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE booking_id = $1")).
		WithArgs("SYM-ABC-12345").
		WillReturnRows(addRow(bookingRows(), b))

	got, err := repo.GetByID(context.Background(), "SYM-ABC-12345")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-23", got.Date.String())
	assert.Equal(t, types.TimeString("14:00"), got.StartTime)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromInt(4620)))
	assert.Equal(t, domain.PaymentOnline, got.PaymentMethod)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM bookings").WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), "SYM-MISSING-00000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := newMockRepo(t)
	later := sampleBooking("SYM-B-22222", "1", "2026-10-25", "10:00")
	earlier := sampleBooking("SYM-A-11111", "1", "2026-10-23", "14:00")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 ORDER BY booking_date DESC, start_time DESC")).
		WithArgs("1").
		WillReturnRows(addRow(addRow(bookingRows(), later), earlier))

	got, err := repo.GetByUserID(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "SYM-B-22222", got[0].BookingID)
	assert.Equal(t, "SYM-A-11111", got[1].BookingID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := sampleBooking("SYM-A-11111", "1", "2026-10-23", "14:00")
	second := sampleBooking("SYM-B-22222", "1", "2026-10-23", "18:00")
	other := sampleBooking("SYM-C-33333", "2", "2026-10-24", "09:00")

	for _, b := range []*domain.BookingRecord{first, second, other} {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	_, err := repo.Create(ctx, first)
	assert.ErrorIs(t, err, ErrBookingExists)

	got, err := repo.GetByID(ctx, "SYM-A-11111")
	require.NoError(t, err)
	assert.Equal(t, *first, *got)

	_, err = repo.GetByID(ctx, "SYM-X-00000")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	list, err := repo.GetByUserID(ctx, "1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "SYM-B-22222", list[0].BookingID)

	empty, err := repo.GetByUserID(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
