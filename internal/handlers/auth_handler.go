package handlers

import (
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		return respondError(c, err, "auth.register")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return respondError(c, err, "auth.login")
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	user, err := h.authService.Me(userID)
	if err != nil {
		return respondError(c, err, "auth.me")
	}

	return c.JSON(dto.MeResponse{User: *user})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return nil
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	user, err := h.authService.UpdateProfile(userID, &req)
	if err != nil {
		return respondError(c, err, "auth.update_profile")
	}

	return c.JSON(dto.ProfileResponse{User: *user, Message: "Profile updated successfully"})
}
