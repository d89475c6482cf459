package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Config configures the shared-secret guard.
type Config struct {
	// ApiKey is the single system-wide secret. An empty key rejects every request.
	ApiKey string
	// Header is the request header carrying the secret. Defaults to X-API-KEY.
	Header string
}

// New returns a middleware that rejects requests whose secret header does not
// match the configured key. Rejected requests never reach the handler.
func New(cfg Config) fiber.Handler {
	header := cfg.Header
	if header == "" {
		header = "X-API-KEY"
	}
	expected := []byte(cfg.ApiKey)

	return func(c *fiber.Ctx) error {
		got := []byte(c.Get(header))
		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized",
			})
		}
		return c.Next()
	}
}
