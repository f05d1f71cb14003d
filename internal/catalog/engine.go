package catalog

import (
	"context"
	"strconv"
	"strings"

	"movie-search-service/internal/models"
)

// Engine filters and paginates the film dataset. It is a pure function
// over the source snapshot; dataset order is preserved.
type Engine struct {
	source MovieSource
}

// NewEngine creates a search engine over the given dataset source.
func NewEngine(source MovieSource) *Engine {
	return &Engine{source: source}
}

// Search returns the page-sliced matches for the query plus the total
// match count before pagination. Malformed filter tokens never fail
// the search; they degrade to no constraint. Fetch failures from the
// source propagate to the caller.
func (e *Engine) Search(ctx context.Context, query string, page, pageSize int, filters models.FilterOptions) (models.SearchResult, error) {
	movies, err := e.source.GetAll(ctx)
	if err != nil {
		return models.SearchResult{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			filtered = append(filtered, m)
		}
	}

	if filters.ReleaseDate != "" {
		if decade, ok := ParseDecade(filters.ReleaseDate); ok {
			kept := filtered[:0]
			for _, m := range filtered {
				year, ok := leadingYear(m.ReleaseDate)
				if ok && year >= decade && year < decade+10 {
					kept = append(kept, m)
				}
			}
			filtered = kept
		}
	}

	if filters.Rating != "" {
		band := ParseRating(filters.Rating)
		kept := filtered[:0]
		for _, m := range filtered {
			score, err := strconv.Atoi(m.RTScore)
			if err != nil {
				continue
			}
			if band.Min != nil && score < *band.Min {
				continue
			}
			if band.Max != nil && score > *band.Max {
				continue
			}
			kept = append(kept, m)
		}
		filtered = kept
	}

	total := len(filtered)

	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return models.SearchResult{
		Results: filtered[start:end],
		Total:   total,
	}, nil
}
