package handlers

import (
	"strconv"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BmiHandler struct {
	recordService *services.RecordService
}

func NewBmiHandler(recordService *services.RecordService) *BmiHandler {
	return &BmiHandler{recordService: recordService}
}

func (h *BmiHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	var req dto.BmiRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.recordService.Create(userID, &req)
	if err != nil {
		return respondError(c, err, "bmi.create")
	}

	return c.JSON(resp)
}

// History accepts ?limit=N; unparsable values fall back to the default.
func (h *BmiHandler) History(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = services.DefaultHistoryLimit
	}

	records, err := h.recordService.History(userID, limit)
	if err != nil {
		return respondError(c, err, "bmi.history")
	}

	return c.JSON(records)
}

func (h *BmiHandler) Update(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	recordID, ok := pathID(c)
	if !ok {
		return nil
	}

	var req dto.BmiRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.recordService.Update(userID, recordID, &req)
	if err != nil {
		return respondError(c, err, "bmi.update")
	}

	return c.JSON(resp)
}

func (h *BmiHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	recordID, ok := pathID(c)
	if !ok {
		return nil
	}

	if err := h.recordService.Delete(userID, recordID); err != nil {
		return respondError(c, err, "bmi.delete")
	}

	return c.JSON(dto.MessageResponse{Message: "Record deleted successfully"})
}

// pathID parses :id as a positive integer and answers 400 otherwise.
func pathID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		_ = fail(c, fiber.StatusBadRequest, "Invalid record id")
		return 0, false
	}
	return uint(id), true
}
