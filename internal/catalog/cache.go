// Package catalog implements the in-memory film catalog: the one-shot
// dataset cache, the search/filter/paginate engine and the debounced
// query controller that feeds it.
package catalog

import (
	"context"
	"log/slog"
	"sync"

	"movie-search-service/internal/models"
)

// MovieSource provides the full film dataset.
type MovieSource interface {
	GetAll(ctx context.Context) ([]models.Movie, error)
}

// FilmLister is the remote API surface the cache fetches from.
type FilmLister interface {
	Films(ctx context.Context) ([]models.Movie, error)
}

// Cache memoizes the full film list after the first successful fetch.
// A failed fetch leaves the cache uninitialized so the next call
// retries instead of serving a cached failure. Constructed once in
// main and injected into every consumer.
type Cache struct {
	client FilmLister

	mu     sync.Mutex
	movies []models.Movie
	loaded bool
}

// NewCache creates a dataset cache backed by the given film client.
func NewCache(client FilmLister) *Cache {
	return &Cache{client: client}
}

// GetAll returns the cached film list, fetching it on first use.
// The returned slice is shared; callers must not mutate it.
func (c *Cache) GetAll(ctx context.Context) ([]models.Movie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.movies, nil
	}

	movies, err := c.client.Films(ctx)
	if err != nil {
		return nil, err
	}

	c.movies = movies
	c.loaded = true
	slog.Info("film catalog loaded", "count", len(movies))
	return c.movies, nil
}
