package catalog

import (
	"strconv"
	"strings"

	"movie-search-service/internal/models"
)

// ParseDecade parses a decade token like "1990s" into its start year.
// Returns false when the token does not encode a year.
func ParseDecade(token string) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSuffix(token, "s"))
	if err != nil {
		return 0, false
	}
	return year, true
}

// ParseRating parses a rating token into a band on the 0-100 score.
// "80+" means an open-ended minimum, "70-79" a closed range; any other
// token yields no bounds.
func ParseRating(token string) models.RatingRange {
	if strings.Contains(token, "+") {
		if min, err := strconv.Atoi(strings.TrimSuffix(token, "+")); err == nil {
			return models.RatingRange{Min: &min}
		}
		return models.RatingRange{}
	}
	if minStr, maxStr, ok := strings.Cut(token, "-"); ok {
		min, errMin := strconv.Atoi(minStr)
		max, errMax := strconv.Atoi(maxStr)
		r := models.RatingRange{}
		if errMin == nil {
			r.Min = &min
		}
		if errMax == nil {
			r.Max = &max
		}
		return r
	}
	return models.RatingRange{}
}

// leadingYear extracts the year from a release date like "1997-06-01"
// or "1997". Returns false when the date does not start with a number.
func leadingYear(date string) (int, bool) {
	end := 0
	for end < len(date) && date[end] >= '0' && date[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:end])
	if err != nil {
		return 0, false
	}
	return year, true
}
