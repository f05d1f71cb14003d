package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

// ThemeKey is the storage key for the display preference.
const ThemeKey = "theme"

// PreferenceKV is the storage the display preference is kept in.
type PreferenceKV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// PreferenceHandler handles the light/dark display preference. It
// shares the favorites storage backend under its own key.
type PreferenceHandler struct {
	kv PreferenceKV
}

// NewPreferenceHandler creates a new PreferenceHandler. A nil kv is
// valid; the preference then always reads as the default.
func NewPreferenceHandler(kv PreferenceKV) *PreferenceHandler {
	return &PreferenceHandler{kv: kv}
}

// ThemeRequest is the request body for setting the display theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// GetTheme returns the stored display theme, defaulting to light.
func (h *PreferenceHandler) GetTheme(c fiber.Ctx) error {
	theme := "light"
	if h.kv != nil {
		stored, err := h.kv.Get(c.Context(), ThemeKey)
		if err != nil {
			slog.Warn("failed to read theme preference", "error", err)
		} else if stored != "" {
			theme = stored
		}
	}
	return c.JSON(fiber.Map{"theme": theme})
}

// SetTheme stores the display theme.
func (h *PreferenceHandler) SetTheme(c fiber.Ctx) error {
	var req ThemeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if req.Theme != "light" && req.Theme != "dark" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "theme must be light or dark"})
	}

	if h.kv != nil {
		if err := h.kv.Set(c.Context(), ThemeKey, req.Theme); err != nil {
			slog.Warn("failed to persist theme preference", "error", err)
		}
	}
	return c.JSON(fiber.Map{"theme": req.Theme})
}
