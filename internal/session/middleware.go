package session

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printfood/storefront/internal/upstream"
)

// Middleware resolves the session ID from the validated JWT into the
// upstream access token and stashes it on the request context, where the
// upstream client picks it up. Runs after the jwt middleware; an expired
// or revoked session rejects with 401 so the client can re-login.
func Middleware(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid, err := SIDFromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}

		token, err := store.Get(c.UserContext(), sid)
		if err != nil {
			if err == ErrNotFound {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "session expired"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}

		c.Locals("sid", sid)
		c.SetUserContext(upstream.WithToken(c.UserContext(), token))
		return c.Next()
	}
}

// SID returns the session ID resolved by Middleware.
func SID(c *fiber.Ctx) string {
	sid, _ := c.Locals("sid").(string)
	return sid
}
