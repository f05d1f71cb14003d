package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-search-service/internal/auth"
)

func newProtectedApp(provider *auth.Provider) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireUser(provider), func(c fiber.Ctx) error {
		user, _ := c.Locals(UserKey).(*auth.User)
		return c.JSON(fiber.Map{"name": user.Name})
	})
	return app
}

func TestRequireUser_ValidToken(t *testing.T) {
	provider := auth.NewProvider("test-secret", time.Hour)
	token, _, err := provider.Login(context.Background(), "chihiro")
	require.NoError(t, err)

	app := newProtectedApp(provider)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireUser_Rejections(t *testing.T) {
	provider := auth.NewProvider("test-secret", time.Hour)
	app := newProtectedApp(provider)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not-a-session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestRequireUser_RevokedToken(t *testing.T) {
	provider := auth.NewProvider("test-secret", time.Hour)
	token, _, err := provider.Login(context.Background(), "chihiro")
	require.NoError(t, err)
	require.NoError(t, provider.Logout(context.Background(), token))

	app := newProtectedApp(provider)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
