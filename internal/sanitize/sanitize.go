// Package sanitize strips unsafe markup from film records before they
// are returned for display. Favorites keep the raw fetched records;
// sanitization happens on the way out only.
package sanitize

import (
	"net/url"
	"regexp"

	"movie-search-service/internal/models"
)

var (
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	entityPattern = regexp.MustCompile(`(?i)&[a-z]+;`)
)

// Text removes HTML-like tags and named character entities.
func Text(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	return entityPattern.ReplaceAllString(s, "")
}

// ImageURL keeps the URL only when its scheme is exactly http or
// https; anything else, including unparseable URLs, becomes empty.
func ImageURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return raw
}

// Movie returns a copy of the record with every free-text field
// stripped and image URLs validated. Total and idempotent.
func Movie(m models.Movie) models.Movie {
	m.Title = Text(m.Title)
	m.OriginalTitle = Text(m.OriginalTitle)
	m.OriginalTitleRomanised = Text(m.OriginalTitleRomanised)
	m.Description = Text(m.Description)
	m.Director = Text(m.Director)
	m.Producer = Text(m.Producer)
	m.ReleaseDate = Text(m.ReleaseDate)
	m.RunningTime = Text(m.RunningTime)
	m.RTScore = Text(m.RTScore)
	m.Image = ImageURL(m.Image)
	m.MovieBanner = ImageURL(m.MovieBanner)
	return m
}

// Movies sanitizes a page of results, preserving order.
func Movies(in []models.Movie) []models.Movie {
	out := make([]models.Movie, len(in))
	for i, m := range in {
		out[i] = Movie(m)
	}
	return out
}
