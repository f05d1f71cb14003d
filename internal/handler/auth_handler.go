package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-search-service/internal/auth"
	"movie-search-service/internal/middleware"
)

// AuthHandler handles login, logout and current-user lookups.
type AuthHandler struct {
	provider *auth.Provider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(provider *auth.Provider) *AuthHandler {
	return &AuthHandler{provider: provider}
}

// LoginRequest is the request body for starting a session.
type LoginRequest struct {
	Username string `json:"username"`
}

// Login starts a session and returns the bearer token.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	token, user, err := h.provider.Login(c.Context(), req.Username)
	if err != nil {
		slog.Warn("login failed", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error: "failed to log in, please try again",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout revokes the current session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	token, _ := c.Locals(middleware.TokenKey).(string)
	if err := h.provider.Logout(c.Context(), token); err != nil {
		slog.Warn("logout failed", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error: "failed to log out, please try again",
		})
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

// Me returns the signed-in user resolved by the auth middleware.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	user, _ := c.Locals(middleware.UserKey).(*auth.User)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "not signed in"})
	}
	return c.JSON(fiber.Map{"user": user})
}
