package favorites

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"movie-search-service/internal/models"
)

// Encode serializes the favorites list and applies the reversible
// text obfuscation used for at-rest storage. This is not encryption;
// it only avoids storing plain JSON.
func Encode(favorites []models.Movie) (string, error) {
	data, err := json.Marshal(favorites)
	if err != nil {
		return "", fmt.Errorf("failed to serialize favorites: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode reverses Encode. Any malformed input is an error; callers
// fall back to an empty list.
func Decode(stored string) ([]models.Movie, error) {
	data, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored favorites: %w", err)
	}
	var favorites []models.Movie
	if err := json.Unmarshal(data, &favorites); err != nil {
		return nil, fmt.Errorf("failed to parse stored favorites: %w", err)
	}
	return favorites, nil
}
