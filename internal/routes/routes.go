package routes

import (
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/token"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps carries what the route table needs to build its handlers.
type Deps struct {
	DB     *gorm.DB
	Tokens *token.Issuer
	Auth   *services.AuthService
	Record *services.RecordService
	Stats  *services.StatsService
	Plans  *services.ProgramService
}

func Setup(app *fiber.App, deps Deps) {
	authHandler := handlers.NewAuthHandler(deps.Auth)
	healthHandler := handlers.NewHealthHandler(deps.DB)
	bmiHandler := handlers.NewBmiHandler(deps.Record)
	statsHandler := handlers.NewStatsHandler(deps.Stats)
	programHandler := handlers.NewProgramHandler(deps.Plans)

	api := app.Group("/api")

	// Public
	api.Get("/health", healthHandler.Check)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Protected routes (JWT required), applied per route so public routes stay open
	jwt := middleware.JWTProtected(deps.Tokens)

	api.Get("/auth/me", jwt, authHandler.Me)
	api.Put("/auth/profile", jwt, authHandler.UpdateProfile)

	api.Post("/bmi", jwt, bmiHandler.Create)
	api.Put("/bmi/:id", jwt, bmiHandler.Update)
	api.Delete("/bmi/:id", jwt, bmiHandler.Delete)
	api.Get("/history", jwt, bmiHandler.History)

	api.Get("/stats/summary", jwt, statsHandler.Summary)
	api.Get("/stats/detailed", jwt, statsHandler.Detailed)

	api.Post("/programs/start", jwt, programHandler.Start)
	api.Get("/programs/recommendations", jwt, programHandler.Recommendations)
	api.Get("/programs", jwt, programHandler.List)
}
