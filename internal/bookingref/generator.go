package bookingref

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

const (
	suffixLength = 5
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// RandomSource источник случайных чисел.
// *rand.Rand из math/rand/v2 подходит только для однопоточного использования.
type RandomSource interface {
	IntN(n int) int
}

// globalSource использует потокобезопасный глобальный генератор math/rand/v2
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Generator генерирует человекочитаемые идентификаторы бронирований и заказов.
// Уникальность вероятностная: метка времени + случайный суффикс, коллизии не проверяются.
type Generator struct {
	random RandomSource
}

// NewGenerator создает генератор; nil означает глобальный источник случайных чисел
func NewGenerator(random RandomSource) *Generator {
	if random == nil {
		random = globalSource{}
	}
	return &Generator{random: random}
}

// NewBookingID возвращает идентификатор вида SYM-<base36 ms>-<5 символов base36> в верхнем регистре
func (g *Generator) NewBookingID(now time.Time) string {
	return Format(domain.BookingIDPrefix, now, g.random)
}

// NewOrderID возвращает идентификатор заказа постпродакшна с префиксом PPO
func (g *Generator) NewOrderID(now time.Time) string {
	return Format(domain.OrderIDPrefix, now, g.random)
}

// Format собирает идентификатор prefix-<base36 epoch ms>-<suffix>
func Format(prefix string, now time.Time, random RandomSource) string {
	var sb strings.Builder
	sb.Grow(len(prefix) + 2 + 9 + suffixLength)

	sb.WriteString(prefix)
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	sb.WriteByte('-')
	for i := 0; i < suffixLength; i++ {
		sb.WriteByte(alphabet[random.IntN(len(alphabet))])
	}

	return strings.ToUpper(sb.String())
}
