package upstream

import "github.com/gofiber/fiber/v2"

// RespondError writes a normalized upstream failure to the client. Upstream
// 4xx statuses and their joined messages pass through untouched; transport
// errors and upstream 5xx collapse into a 502 so internal details never
// leak.
func RespondError(c *fiber.Ctx, err error) error {
	if ue, ok := AsError(err); ok && ue.Status >= 400 && ue.Status < 500 {
		return c.Status(ue.Status).JSON(fiber.Map{"message": ue.Message})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "upstream unavailable"})
}
