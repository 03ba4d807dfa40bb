package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"optcg-tracker/models"
	"optcg-tracker/utils"
)

// AuthMiddleware validates the Bearer session token and attaches the
// authenticated identity to the request context.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing Authorization header",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "malformed Authorization header",
			})
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		// Attach to ctx for handlers
		c.Locals("user_id", claims.UserID)
		c.Locals("user_name", claims.Name)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// CurrentUserRole returns the authenticated role set by AuthMiddleware.
func CurrentUserRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals("user_role").(models.Role)
	return role
}
