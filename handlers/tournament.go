package handlers

import (
	"github.com/gofiber/fiber/v2"

	"optcg-tracker/middleware"
	"optcg-tracker/models"
	"optcg-tracker/services"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService) {
	// 🔐 Authenticated routes
	secured := app.Group("/", middleware.AuthMiddleware())
	secured.Get("/tournaments", tournamentService.GetAllTournaments)
	secured.Get("/tournaments/:id", tournamentService.GetTournamentByID)
	secured.Post("/tournaments/:id/join", tournamentService.JoinTournament)
	secured.Get("/tournaments/:id/participants", tournamentService.GetParticipants)
	secured.Get("/tournaments/:id/ranking", tournamentService.GetRanking)
	secured.Get("/rankings", tournamentService.GetRankings)

	// Tournament management (judge or admin)
	managed := secured.Group("/", middleware.RequireRoles(models.RoleJudge, models.RoleAdmin))
	managed.Post("/tournaments", tournamentService.CreateTournament)
	managed.Put("/tournaments/:id", tournamentService.UpdateTournament)
	managed.Post("/tournaments/:id/poster", tournamentService.UploadPoster)
	managed.Post("/tournaments/update-status", tournamentService.UpdateStatuses)

	// 🔒 Admin-only
	admin := secured.Group("/", middleware.RequireRoles(models.RoleAdmin))
	admin.Delete("/tournaments/:id", tournamentService.DeleteTournament)
}
