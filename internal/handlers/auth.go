package handlers

import (
	"estatien/internal/services/auth"
	"estatien/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input auth.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, "Registration successful", fiber.Map{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
		"role":     user.Role,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	user, accessToken, refreshToken, err := h.authService.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token":         accessToken,
		"refresh_token": refreshToken,
		"user": fiber.Map{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
			"role":     user.Role,
		},
	})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	accessToken, refreshToken, err := h.authService.RefreshTokens(c.Context(), input.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, err.Error())
	}

	return response.Success(c, "Tokens refreshed", fiber.Map{
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}
