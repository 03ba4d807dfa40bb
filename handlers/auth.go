package handlers

import (
	"github.com/gofiber/fiber/v2"

	"optcg-tracker/middleware"
	"optcg-tracker/services"
)

func SetupAuthRoutes(app *fiber.App, authService *services.AuthService) {
	// 🔓 Public routes
	app.Post("/auth/register", authService.Register)
	app.Post("/auth/login", authService.Login)

	// 🔐 Authenticated
	secured := app.Group("/", middleware.AuthMiddleware())
	secured.Get("/auth/me", authService.Me)
}
