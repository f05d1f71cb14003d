package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-search-service/internal/catalog"
	"movie-search-service/internal/ghibli"
	"movie-search-service/internal/models"
	"movie-search-service/internal/sanitize"
)

// MovieHandler handles HTTP requests for movie search and detail.
type MovieHandler struct {
	engine          *catalog.Engine
	client          *ghibli.Client
	defaultPageSize int
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(engine *catalog.Engine, client *ghibli.Client, defaultPageSize int) *MovieHandler {
	return &MovieHandler{
		engine:          engine,
		client:          client,
		defaultPageSize: defaultPageSize,
	}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns service health status.
func (h *MovieHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "movie-search-service",
	})
}

// Search returns one page of matching movies plus the total match
// count. Results are sanitized before leaving the server.
func (h *MovieHandler) Search(c fiber.Ctx) error {
	params := models.SearchParams{
		Query:       c.Query("query"),
		Page:        fiber.Query(c, "page", 1),
		PageSize:    fiber.Query(c, "page_size", h.defaultPageSize),
		ReleaseDate: c.Query("release_date"),
		Rating:      c.Query("rating"),
	}
	params.Validate(h.defaultPageSize)

	result, err := h.engine.Search(c.Context(), params.Query, params.Page, params.PageSize, params.Filters())
	if err != nil {
		slog.Error("failed to search movies", "query", params.Query, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "failed to retrieve movies, try again later",
		})
	}

	result.Results = sanitize.Movies(result.Results)
	return c.JSON(result)
}

// Detail returns one sanitized movie by id.
func (h *MovieHandler) Detail(c fiber.Ctx) error {
	id := c.Params("id")

	movie, err := h.client.Film(c.Context(), id)
	if err != nil {
		if errors.Is(err, ghibli.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "movie not found",
			})
		}
		slog.Error("failed to get movie detail", "id", id, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "failed to retrieve movie details",
		})
	}

	return c.JSON(sanitize.Movie(*movie))
}
