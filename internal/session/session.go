package session

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Session is the authentication state of one client. It is a value: Login and Logout
// return a new Session and leave the receiver untouched.
type Session struct {
	user *domain.User
}

// Anonymous returns a session without a user
func Anonymous() Session {
	return Session{}
}

// Login returns a session authenticated as user
func (s Session) Login(user domain.User) Session {
	return Session{user: &user}
}

// Logout returns an anonymous session
func (s Session) Logout() Session {
	return Anonymous()
}

// IsAuthenticated reports whether a user is logged in
func (s Session) IsAuthenticated() bool {
	return s.user != nil
}

// User returns a copy of the logged-in user
func (s Session) User() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// UserID returns the logged-in user id or an empty string
func (s Session) UserID() string {
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

type contextKey struct{}

// WithSession stores the session in ctx
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, or an anonymous one
func FromContext(ctx context.Context) Session {
	s, ok := ctx.Value(contextKey{}).(Session)
	if !ok {
		return Anonymous()
	}
	return s
}
