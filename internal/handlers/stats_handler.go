package handlers

import (
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	summary, err := h.statsService.Summary(userID)
	if err != nil {
		return respondError(c, err, "stats.summary")
	}

	return c.JSON(summary)
}

func (h *StatsHandler) Detailed(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	records, err := h.statsService.Detailed(userID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return respondError(c, err, "stats.detailed")
	}

	return c.JSON(records)
}
