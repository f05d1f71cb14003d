package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-search-service/internal/models"
)

type stubSource struct {
	movies []models.Movie
	err    error
	calls  int
}

func (s *stubSource) GetAll(_ context.Context) ([]models.Movie, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.movies, nil
}

func makeMovies(n int) []models.Movie {
	movies := make([]models.Movie, n)
	for i := range movies {
		movies[i] = models.Movie{
			ID:          fmt.Sprintf("film-%02d", i),
			Title:       fmt.Sprintf("Movie %02d", i),
			ReleaseDate: "1997-06-01",
			RTScore:     "85",
		}
	}
	return movies
}

func TestEngineSearch_Pagination(t *testing.T) {
	engine := NewEngine(&stubSource{movies: makeMovies(15)})

	page1, err := engine.Search(context.Background(), "", 1, 12, models.FilterOptions{})
	require.NoError(t, err)
	assert.Len(t, page1.Results, 12)
	assert.Equal(t, 15, page1.Total)

	page2, err := engine.Search(context.Background(), "", 2, 12, models.FilterOptions{})
	require.NoError(t, err)
	assert.Len(t, page2.Results, 3)
	assert.Equal(t, 15, page2.Total)

	// Out-of-range page is an empty slice, not an error
	page3, err := engine.Search(context.Background(), "", 3, 12, models.FilterOptions{})
	require.NoError(t, err)
	assert.Empty(t, page3.Results)
	assert.Equal(t, 15, page3.Total)
}

func TestEngineSearch_PagesReconstructFilteredSet(t *testing.T) {
	movies := makeMovies(23)
	engine := NewEngine(&stubSource{movies: movies})

	var collected []models.Movie
	for page := 1; ; page++ {
		result, err := engine.Search(context.Background(), "", page, 5, models.FilterOptions{})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(result.Results), 5)
		assert.Equal(t, 23, result.Total)
		if len(result.Results) == 0 {
			break
		}
		collected = append(collected, result.Results...)
	}
	assert.Equal(t, movies, collected)
}

func TestEngineSearch_QueryMatching(t *testing.T) {
	engine := NewEngine(&stubSource{movies: []models.Movie{
		{ID: "1", Title: "Spirited Away"},
		{ID: "2", Title: "My Neighbor Totoro"},
		{ID: "3", Title: "Princess Mononoke"},
	}})

	result, err := engine.Search(context.Background(), "  TOTORO ", 1, 12, models.FilterOptions{})
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "2", result.Results[0].ID)
	assert.Equal(t, 1, result.Total)
}

func TestEngineSearch_DecadeFilter(t *testing.T) {
	engine := NewEngine(&stubSource{movies: []models.Movie{
		{ID: "in", Title: "A", ReleaseDate: "1997-06-01"},
		{ID: "out", Title: "B", ReleaseDate: "1989-01-01"},
		{ID: "bad", Title: "C", ReleaseDate: "unknown"},
	}})

	result, err := engine.Search(context.Background(), "", 1, 12, models.FilterOptions{ReleaseDate: "1990s"})
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "in", result.Results[0].ID)

	// Unparseable decade token degrades to no constraint
	result, err = engine.Search(context.Background(), "", 1, 12, models.FilterOptions{ReleaseDate: "whenever"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
}

func TestEngineSearch_RatingFilter(t *testing.T) {
	engine := NewEngine(&stubSource{movies: []models.Movie{
		{ID: "high", Title: "A", RTScore: "85"},
		{ID: "low", Title: "B", RTScore: "79"},
		{ID: "nan", Title: "C", RTScore: "N/A"},
	}})

	result, err := engine.Search(context.Background(), "", 1, 12, models.FilterOptions{Rating: "80+"})
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "high", result.Results[0].ID)

	result, err = engine.Search(context.Background(), "", 1, 12, models.FilterOptions{Rating: "70-79"})
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "low", result.Results[0].ID)

	// A rating token that parses to no bounds still excludes
	// non-numeric scores
	result, err = engine.Search(context.Background(), "", 1, 12, models.FilterOptions{Rating: "any"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestEngineSearch_TotalStableAcrossPages(t *testing.T) {
	engine := NewEngine(&stubSource{movies: makeMovies(40)})

	for page := 1; page <= 6; page++ {
		result, err := engine.Search(context.Background(), "movie", page, 7, models.FilterOptions{})
		require.NoError(t, err)
		assert.Equal(t, 40, result.Total)
	}
}

func TestEngineSearch_PropagatesFetchError(t *testing.T) {
	fetchErr := errors.New("upstream down")
	engine := NewEngine(&stubSource{err: fetchErr})

	_, err := engine.Search(context.Background(), "", 1, 12, models.FilterOptions{})
	assert.ErrorIs(t, err, fetchErr)
}
