package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"blogserver/internal/authctx"
)

// RequireAuth rejects requests that reached here without a verified identity.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v := c.Locals(authctx.LocalUserID); v == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		} else if uid, ok := v.(string); !ok || strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
