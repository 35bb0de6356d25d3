package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/services/auth"
	"QuickTech-Backend/src/utils"
)

const sessionKey = "session"

// SessionParser is the part of auth.Service the middleware needs.
type SessionParser interface {
	SessionFromToken(token string) (auth.Session, error)
}

// AuthJWT ตรวจสอบ Bearer token แล้วเก็บ session ไว้ใน c.Locals
func AuthJWT(parser SessionParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.HandleCodedError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid Authorization header")
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		session, err := parser.SessionFromToken(tokenStr)
		if err != nil {
			return utils.HandleCodedError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Locals(sessionKey, session)
		return c.Next()
	}
}

// RequireAdmin must run after AuthJWT.
func RequireAdmin(c *fiber.Ctx) error {
	session, ok := SessionFrom(c)
	if !ok || !session.IsAdmin() {
		return utils.HandleCodedError(c, fiber.StatusForbidden, "FORBIDDEN", "Admin access required")
	}
	return c.Next()
}

// SessionFrom returns the session stored by AuthJWT.
func SessionFrom(c *fiber.Ctx) (auth.Session, bool) {
	session, ok := c.Locals(sessionKey).(auth.Session)
	return session, ok
}
