package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"blogserver/internal/middleware"
	"blogserver/internal/repository"
)

func errJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// storeStatus maps repository errors onto the HTTP error taxonomy.
func storeStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func setSessionCookie(c *fiber.Ctx, tok string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    tok,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: "Strict",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Strict",
	})
}
