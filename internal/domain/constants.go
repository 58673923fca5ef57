package domain

import "github.com/shopspring/decimal"

// Operating window of every studio: hourly slots start from OpeningHour to LastSlotHour inclusive
const (
	OpeningHour  = 9
	LastSlotHour = 22
	SlotsPerDay  = LastSlotHour - OpeningHour + 1
)

// Booking window defaults
const (
	DefaultWindowDays = 30
	MaxWindowDays     = 365
)

// BookingIDPrefix prefixes every studio booking reference
const BookingIDPrefix = "SYM"

// OrderIDPrefix prefixes every post-production order reference
const OrderIDPrefix = "PPO"

// PlatformFeeRate is the surcharge added on top of the studio rate
var PlatformFeeRate = decimal.RequireFromString("0.05")

// AllowedDurations session lengths in hours offered to customers
var AllowedDurations = []int{1, 2, 3, 4, 8}

// Business validation constants
const (
	MaxSpecialRequestsLength = 1000
	MaxContactNumberLength   = 32
	MaxProjectNameLength     = 200
	MaxNotesLength           = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
