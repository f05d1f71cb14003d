package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-search-service/internal/favorites"
	"movie-search-service/internal/models"
)

// FavoritesHandler handles HTTP requests for the favorites list.
// Routes behind this handler are gated by the auth middleware.
type FavoritesHandler struct {
	store *favorites.Store
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(store *favorites.Store) *FavoritesHandler {
	return &FavoritesHandler{store: store}
}

// List returns all favorited movies in insertion order. Favorites are
// stored raw, so no sanitization on this path.
func (h *FavoritesHandler) List(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"favorites": h.store.All(),
	})
}

// Add favorites a movie. Adding an already-favorited id is a no-op.
func (h *FavoritesHandler) Add(c fiber.Ctx) error {
	var movie models.Movie
	if err := c.Bind().JSON(&movie); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if movie.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "movie id is required"})
	}

	h.store.Add(c.Context(), movie)
	slog.Debug("movie favorited", "id", movie.ID, "title", movie.Title)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "movie added to favorites",
		"id":      movie.ID,
	})
}

// Remove unfavorites a movie by id. Removing an absent id is a no-op.
func (h *FavoritesHandler) Remove(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "movie id is required"})
	}

	h.store.Remove(c.Context(), id)
	slog.Debug("movie unfavorited", "id", id)

	return c.JSON(fiber.Map{
		"message": "movie removed from favorites",
		"id":      id,
	})
}
