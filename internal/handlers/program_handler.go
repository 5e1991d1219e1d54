package handlers

import (
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProgramHandler struct {
	programService *services.ProgramService
}

func NewProgramHandler(programService *services.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

func (h *ProgramHandler) Start(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	var req dto.StartProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	program, err := h.programService.Start(userID, &req)
	if err != nil {
		return respondError(c, err, "programs.start")
	}

	return c.JSON(dto.StartProgramResponse{
		ID:      program.ID,
		Message: "Program started successfully",
		Program: *program,
	})
}

func (h *ProgramHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	programs, err := h.programService.List(userID)
	if err != nil {
		return respondError(c, err, "programs.list")
	}

	return c.JSON(programs)
}

func (h *ProgramHandler) Recommendations(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	recs, err := h.programService.Recommendations(userID)
	if err != nil {
		return respondError(c, err, "programs.recommendations")
	}

	return c.JSON(recs)
}
