package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("booking_id").
		From("bookings").
		Where(squirrel.Eq{"user_id": "u1"}).
		Where(squirrel.Eq{"status": "confirmed"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT booking_id FROM bookings WHERE user_id = $1 AND status = $2", query)
	assert.Equal(t, []interface{}{"u1", "confirmed"}, args)
}

func TestInsert_DollarPlaceholders(t *testing.T) {
	query, _, err := Insert("bookings").
		Columns("booking_id", "user_id").
		Values("SYM-1", "u1").
		Suffix("RETURNING created_at").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO bookings (booking_id,user_id) VALUES ($1,$2) RETURNING created_at", query)
}
