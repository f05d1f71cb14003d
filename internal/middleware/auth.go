package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"movie-search-service/internal/auth"
)

// UserKey is the locals key the signed-in user is stored under.
const UserKey = "user"

// TokenKey is the locals key the raw bearer token is stored under.
const TokenKey = "auth_token"

// RequireUser gates a route group on a valid bearer session token.
// The resolved user is placed in locals for the handler.
func RequireUser(provider *auth.Provider) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing Authorization header",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid Authorization header format, expected 'Bearer <token>'",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := provider.CurrentUser(token)
		if err != nil {
			msg := "invalid session token"
			if errors.Is(err, auth.ErrSessionExpired) {
				msg = "session expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": msg,
			})
		}

		c.Locals(UserKey, user)
		c.Locals(TokenKey, token)
		return c.Next()
	}
}
