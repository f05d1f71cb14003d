package models

// Movie represents a film record as served by the catalog API.
// All scalar fields are transmitted as strings per the source schema.
type Movie struct {
	ID                     string `json:"id"`
	Title                  string `json:"title"`
	OriginalTitle          string `json:"original_title"`
	OriginalTitleRomanised string `json:"original_title_romanised"`
	Description            string `json:"description"`
	Director               string `json:"director"`
	Producer               string `json:"producer"`
	ReleaseDate            string `json:"release_date"`
	RunningTime            string `json:"running_time"`
	RTScore                string `json:"rt_score"`
	Image                  string `json:"image"`
	MovieBanner            string `json:"movie_banner"`
}

// FilterOptions holds the raw filter tokens selected by the user,
// e.g. ReleaseDate "1990s" and Rating "80+" or "70-79". Parsing the
// tokens is the search engine's job; an empty token means no filter.
type FilterOptions struct {
	ReleaseDate string `json:"release_date"`
	Rating      string `json:"rating"`
}

// RatingRange is a parsed rating band on the 0-100 review score.
// A nil bound is unconstrained on that side, so zero is a real bound.
type RatingRange struct {
	Min *int
	Max *int
}

// SearchResult is one page of matches plus the total match count
// across the whole filtered set.
type SearchResult struct {
	Results []Movie `json:"results"`
	Total   int     `json:"total"`
}
