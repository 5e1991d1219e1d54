// Package server assembles the Fiber application: middleware stack, services
// and route table.
package server

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/token"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

type Options struct {
	// AccessLog enables Fiber's request logger.
	AccessLog bool
}

func New(cfg *config.Config, db *gorm.DB, opts Options) *fiber.App {
	tokens := token.NewIssuer(cfg.JWTSecret)

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${respHeader:X-Request-ID}\n",
		}))
	}
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, routes.Deps{
		DB:     db,
		Tokens: tokens,
		Auth:   services.NewAuthService(db, tokens, cfg),
		Record: services.NewRecordService(db),
		Stats:  services.NewStatsService(db),
		Plans:  services.NewProgramService(db),
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
