package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"blogserver/internal/authctx"
	"blogserver/internal/token"
)

const CookieName = "user_token"

// JWT verifies the session token from the Authorization header or the
// user_token cookie and stores uid/role in Locals. Requests without a token
// pass through anonymous; protected groups gate on RequireAuth.
func JWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			tokenStr = c.Cookies(CookieName)
		}
		if tokenStr == "" {
			return c.Next()
		}

		claims, err := token.Parse(secret, tokenStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(authctx.LocalUserID, claims.UID)
		c.Locals(authctx.LocalRole, claims.Role)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}
