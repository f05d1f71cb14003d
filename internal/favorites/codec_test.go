package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-search-service/internal/models"
)

func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		favorites []models.Movie
	}{
		{"empty", []models.Movie{}},
		{"single", []models.Movie{{ID: "1", Title: "Spirited Away"}}},
		{"unicode titles", []models.Movie{
			{ID: "1", Title: "千と千尋の神隠し", OriginalTitleRomanised: "Sen to Chihiro no kamikakushi"},
			{ID: "2", Title: "Kiki's Delivery Service — 魔女の宅急便"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(tt.favorites)
			require.NoError(t, err)

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.favorites, decoded)
		})
	}
}

func TestEncodeIsNotPlainJSON(t *testing.T) {
	encoded, err := Encode([]models.Movie{{ID: "1", Title: "Ponyo"}})
	require.NoError(t, err)
	assert.NotContains(t, encoded, "Ponyo")
	assert.NotContains(t, encoded, "{")
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode("not base64!!!")
	assert.Error(t, err)

	// Valid base64 but not JSON underneath
	_, err = Decode("bm90IGpzb24=")
	assert.Error(t, err)
}
