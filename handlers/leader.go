package handlers

import (
	"github.com/gofiber/fiber/v2"

	"optcg-tracker/middleware"
	"optcg-tracker/models"
	"optcg-tracker/services"
)

func SetupLeaderRoutes(app *fiber.App, leaderService *services.LeaderService) {
	// 🔓 Public catalog for the match form
	app.Get("/leaders", leaderService.GetLeaders)

	// 🔐 Authenticated
	secured := app.Group("/", middleware.AuthMiddleware())
	secured.Get("/stats/leaders", leaderService.GetLeaderStats)

	// 🔒 Admin-only catalog management
	admin := secured.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	admin.Post("/leaders", leaderService.CreateLeader)
	admin.Delete("/leaders/:id", leaderService.DeleteLeader)
}
