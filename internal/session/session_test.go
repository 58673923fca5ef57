package session

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type fixedSource struct{ v int }

func (f fixedSource) IntN(n int) int { return f.v % n }

func TestSession_LoginLogout(t *testing.T) {
	anon := Anonymous()
	assert.False(t, anon.IsAuthenticated())
	assert.Empty(t, anon.UserID())

	loggedIn := anon.Login(domain.User{ID: "1", Name: "Gita Lipika"})
	assert.True(t, loggedIn.IsAuthenticated())
	assert.Equal(t, "1", loggedIn.UserID())
	assert.False(t, anon.IsAuthenticated(), "login must not mutate the original session")

	user, ok := loggedIn.User()
	require.True(t, ok)
	assert.Equal(t, "Gita Lipika", user.Name)

	loggedOut := loggedIn.Logout()
	assert.False(t, loggedOut.IsAuthenticated())
	assert.True(t, loggedIn.IsAuthenticated(), "logout must not mutate the original session")
}

func TestSession_UserIsCopied(t *testing.T) {
	u := domain.User{ID: "1", Name: "before"}
	s := Anonymous().Login(u)
	u.Name = "after"

	got, _ := s.User()
	assert.Equal(t, "before", got.Name)
}

func TestSession_Context(t *testing.T) {
	assert.False(t, FromContext(context.Background()).IsAuthenticated())

	ctx := WithSession(context.Background(), Anonymous().Login(domain.User{ID: "42"}))
	assert.Equal(t, "42", FromContext(ctx).UserID())
}

func TestGenerateUID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{4}[A-Z]{2}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, GenerateUID(DefaultRandom))
	}
	assert.Equal(t, "3333DD", GenerateUID(fixedSource{v: 3}))
}

func TestNewUserProfile_Defaults(t *testing.T) {
	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

	profile := NewUserProfile(domain.User{Name: "Arjun", Email: "arjun@example.com"}, now, fixedSource{v: 1})

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "1111BB", profile.UID)
	assert.Equal(t, domain.RoleArtist, profile.Role)
	assert.Equal(t, "2026-10-18", profile.CreatedAt.String())
	assert.NotNil(t, profile.Categories)
	assert.NotNil(t, profile.Preferences.Genres)
	assert.Equal(t, "Arjun", profile.Name)
}

func TestNewUserProfile_KeepsValidRole(t *testing.T) {
	profile := NewUserProfile(domain.User{Role: domain.RoleEngineer}, time.Now(), DefaultRandom)
	assert.Equal(t, domain.RoleEngineer, profile.Role)
}
