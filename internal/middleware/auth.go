package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Premkumar95/UPPTN/internal/session"
	"github.com/Premkumar95/UPPTN/internal/storage"
	"github.com/Premkumar95/UPPTN/internal/utils"
)

const sessionKey = "session"

// SessionFromToken resolves the bearer token into a session variant and
// stashes it on the request. Requests without a valid token proceed as
// Anonymous; gating happens downstream.
func SessionFromToken(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(sessionKey, session.Session(session.Anonymous{}))

		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token := strings.TrimPrefix(auth, "Bearer ")
			if claims, err := utils.VerifyToken(token); err == nil {
				if user, err := store.GetUserByID(claims.UserID); err == nil {
					c.Locals(sessionKey, session.FromUser(user, token))
				}
			}
		}
		return c.Next()
	}
}

// RequireAuth rejects requests that did not resolve to an identity.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := GetSession(c).(session.Anonymous); ok {
			return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
		}
		return c.Next()
	}
}

// GetSession returns the session attached by SessionFromToken.
func GetSession(c *fiber.Ctx) session.Session {
	if s, ok := c.Locals(sessionKey).(session.Session); ok {
		return s
	}
	return session.Anonymous{}
}
