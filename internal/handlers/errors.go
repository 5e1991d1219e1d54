package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/bmi"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/owner"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/token"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Internal server error"

// respondError maps service errors onto HTTP statuses. Anything unrecognised
// is logged, reported to Sentry and answered with a generic 500.
func respondError(c *fiber.Ctx, err error, action string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return fail(c, fiber.StatusBadRequest, verr.Message)
	case errors.Is(err, bmi.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, token.ErrInvalidToken):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrRecordNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	}

	attrs := []any{
		"action", action,
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"path", c.Path(),
		"error", err,
	}
	if userID, uerr := owner.UserID(c); uerr == nil {
		attrs = append(attrs, "user_id", userID)
	}
	slog.Error("request failed", attrs...)

	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	return fail(c, fiber.StatusInternalServerError, internalErrorMessage)
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func invalidBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "Invalid request body")
}

// currentUser reads the authenticated user's id. Routes behind the JWT
// middleware always carry one; a miss is answered with 401.
func currentUser(c *fiber.Ctx) (uint, bool) {
	userID, err := owner.UserID(c)
	if err != nil {
		_ = fail(c, fiber.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	return userID, true
}
