// Package session holds the authenticated identity for the duration of a
// request. The role is dispatched once here, as a tagged variant, rather than
// re-checked ad hoc at every call site.
package session

import (
	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
)

// Session is one of Anonymous, UserSession, or ProviderSession.
type Session interface {
	isSession()
}

// Anonymous is the unauthenticated session.
type Anonymous struct{}

func (Anonymous) isSession() {}

// Identity carries the display fields of a logged-in user plus the opaque
// bearer token echoed back on each request. The token is never interpreted
// here.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Token  string
}

// UserSession is a logged-in customer.
type UserSession struct {
	Identity
}

func (UserSession) isSession() {}

// ProviderSession is a logged-in service provider.
type ProviderSession struct {
	Identity
}

func (ProviderSession) isSession() {}

// FromUser builds the session variant matching the user's role.
func FromUser(u *models.User, token string) Session {
	id := Identity{UserID: u.UserID, Name: u.Name, Email: u.Email, Token: token}
	switch u.Role {
	case models.RoleProvider:
		return ProviderSession{Identity: id}
	case models.RoleUser:
		return UserSession{Identity: id}
	}
	return Anonymous{}
}

// RequireUser gates customer-only operations.
func RequireUser(s Session) (UserSession, error) {
	u, ok := s.(UserSession)
	if !ok {
		return UserSession{}, apperr.Authorizationf("only users can perform this operation")
	}
	return u, nil
}

// RequireProvider gates provider-only operations.
func RequireProvider(s Session) (ProviderSession, error) {
	p, ok := s.(ProviderSession)
	if !ok {
		return ProviderSession{}, apperr.Authorizationf("only service providers can perform this operation")
	}
	return p, nil
}

// UserID returns the authenticated user id, or "" for Anonymous.
func UserID(s Session) string {
	switch v := s.(type) {
	case UserSession:
		return v.Identity.UserID
	case ProviderSession:
		return v.Identity.UserID
	}
	return ""
}
