package models

// SearchParams holds query parameters for the movie search endpoint.
type SearchParams struct {
	Query       string `query:"query"`
	Page        int    `query:"page"`
	PageSize    int    `query:"page_size"`
	ReleaseDate string `query:"release_date"`
	Rating      string `query:"rating"`
}

// Validate sets defaults and clamps out-of-range values.
func (p *SearchParams) Validate(defaultPageSize int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = defaultPageSize
	}
}

// Filters returns the filter tokens carried by the params.
func (p *SearchParams) Filters() FilterOptions {
	return FilterOptions{
		ReleaseDate: p.ReleaseDate,
		Rating:      p.Rating,
	}
}
