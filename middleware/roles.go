package middleware

import (
	"github.com/gofiber/fiber/v2"

	"optcg-tracker/models"
)

// RequireRoles gates a route on role membership. It must run after
// AuthMiddleware. Failure is a plain 403; it never downgrades the request.
func RequireRoles(requiredRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := CurrentUserRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}

		for _, required := range requiredRoles {
			if role == required {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient permissions",
		})
	}
}
