package session

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// RandomSource источник случайных чисел для UID
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRandom потокобезопасный источник на базе math/rand/v2
var DefaultRandom RandomSource = globalSource{}

// GenerateUID возвращает 4 цифры и 2 заглавные латинские буквы, например 1234AB
func GenerateUID(random RandomSource) string {
	var sb strings.Builder
	sb.Grow(6)
	for i := 0; i < 4; i++ {
		sb.WriteByte(byte('0' + random.IntN(10)))
	}
	for i := 0; i < 2; i++ {
		sb.WriteByte(byte('A' + random.IntN(26)))
	}
	return sb.String()
}

// NewUserProfile собирает полный профиль из частично заполненного, проставляя
// сгенерированный UID, роль по умолчанию и дату создания
func NewUserProfile(partial domain.User, now time.Time, random RandomSource) domain.User {
	profile := partial
	profile.ID = uuid.NewString()
	profile.UID = GenerateUID(random)
	profile.CreatedAt = types.NewDate(now)

	if !profile.Role.IsValid() {
		profile.Role = domain.RoleArtist
	}
	if profile.Categories == nil {
		profile.Categories = []string{}
	}
	if profile.Preferences.Genres == nil {
		profile.Preferences.Genres = []string{}
	}

	return profile
}
