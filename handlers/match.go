package handlers

import (
	"github.com/gofiber/fiber/v2"

	"optcg-tracker/middleware"
	"optcg-tracker/models"
	"optcg-tracker/services"
)

func SetupMatchRoutes(app *fiber.App, matchService *services.MatchService) {
	// 🔐 Authenticated routes
	secured := app.Group("/", middleware.AuthMiddleware())
	secured.Post("/matches", matchService.CreateMatch)
	secured.Get("/matches", matchService.GetMyMatches)

	// Review (judge or admin) — registered before /matches/:id so "pending"
	// is not captured as an id
	review := secured.Group("/", middleware.RequireRoles(models.RoleJudge, models.RoleAdmin))
	review.Get("/matches/pending", matchService.GetPendingMatches)
	review.Patch("/matches/:id/review", matchService.ReviewMatch)

	secured.Get("/matches/:id", matchService.GetMatch)
}
