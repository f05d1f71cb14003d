package ghibli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"movie-search-service/internal/models"
)

// ErrNotFound is returned when the remote API has no film with the given id.
var ErrNotFound = errors.New("film not found")

// FetchError describes a failed request against the remote film API.
type FetchError struct {
	Status int
	Body   string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("film API request failed: %v", e.Err)
	}
	return fmt.Sprintf("film API returned status %d: %s", e.Status, e.Body)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client is the Studio Ghibli film API client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new film API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Films fetches the full film list.
func (c *Client) Films(ctx context.Context) ([]models.Movie, error) {
	url := c.baseURL + "/films"

	slog.Debug("fetching film list", "url", url)
	resp, err := c.doGet(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var films []models.Movie
	if err := json.NewDecoder(resp.Body).Decode(&films); err != nil {
		return nil, fmt.Errorf("failed to decode film list: %w", err)
	}
	return films, nil
}

// Film fetches a single film by id. Returns ErrNotFound for unknown ids.
func (c *Client) Film(ctx context.Context, id string) (*models.Movie, error) {
	url := fmt.Sprintf("%s/films/%s", c.baseURL, id)

	slog.Debug("fetching film detail", "id", id)
	resp, err := c.doGet(ctx, url)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) && fe.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer resp.Body.Close()

	var film models.Movie
	if err := json.NewDecoder(resp.Body).Decode(&film); err != nil {
		return nil, fmt.Errorf("failed to decode film detail: %w", err)
	}
	return &film, nil
}

func (c *Client) doGet(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, &FetchError{Status: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}
