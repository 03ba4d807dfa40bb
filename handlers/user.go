package handlers

import (
	"github.com/gofiber/fiber/v2"

	"optcg-tracker/middleware"
	"optcg-tracker/models"
	"optcg-tracker/services"
)

func SetupUserRoutes(app *fiber.App, userService *services.UserService) {
	// 🔐 Authenticated routes
	secured := app.Group("/", middleware.AuthMiddleware())
	secured.Get("/users/search", userService.SearchUsers)
	secured.Get("/users/me/stats", userService.MyStats)
	secured.Patch("/users/me/avatar", userService.UpdateAvatar)

	// 🔒 Admin-only routes
	admin := secured.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	admin.Get("/users", userService.ListUsers)
	admin.Patch("/users/:id/role", userService.UpdateUserRole)
	admin.Patch("/users/:id/password", userService.ResetUserPassword)
	admin.Delete("/users/:id", userService.DeleteUser)
}
