package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"paddock/internal/domain"
)

// Config controls how the client reaches the teams backend.
type Config struct {
	BaseURL    string
	Timeout    time.Duration // zero means no timeout
	HTTPClient *http.Client
}

// Client fetches teams, drivers and static images from the backend.
type Client struct {
	baseURL    string
	httpClient httpDoer
	newID      func() string
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		newID:      uuid.NewString,
	}
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Teams retrieves the full team list.
func (c *Client) Teams(ctx context.Context) ([]domain.Team, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, "teams", teamsPath, &payload); err != nil {
		return nil, err
	}
	if payload.Teams == nil {
		return []domain.Team{}, nil
	}
	return payload.Teams, nil
}

// TeamByName looks up a single team by its exact name. An unknown name is
// reported by the backend as an error response.
func (c *Client) TeamByName(ctx context.Context, name string) (domain.Team, error) {
	var payload teamResponse
	if err := c.getJSON(ctx, "team by name", teamByNamePath+url.PathEscape(name), &payload); err != nil {
		return domain.Team{}, err
	}
	if payload.Team == nil {
		return domain.Team{}, fmt.Errorf("team by name: %w", ErrEmptyResponse)
	}
	return *payload.Team, nil
}

// Drivers retrieves the drivers of a team.
func (c *Client) Drivers(ctx context.Context, teamID string) ([]domain.Driver, error) {
	var payload driversResponse
	path := teamPath + url.PathEscape(teamID) + "/drivers"
	if err := c.getJSON(ctx, "drivers", path, &payload); err != nil {
		return nil, err
	}
	if payload.Drivers == nil {
		return []domain.Driver{}, nil
	}
	return payload.Drivers, nil
}

// TeamLogoURL resolves a team's logo reference against the static base.
func (c *Client) TeamLogoURL(logo string) string {
	return c.baseURL + staticTeams + strings.TrimPrefix(logo, "/")
}

// BannerURL is the address of the API's own logo.
func (c *Client) BannerURL() string {
	return c.baseURL + bannerPath
}

// Fetch downloads raw bytes, used for images.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	body, err := c.get(ctx, "image", rawURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("image: read body: %w", err)
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	body, err := c.get(ctx, op, c.baseURL+path)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, op, target string) (io.ReadCloser, error) {
	reqID := c.newID()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &RequestError{Op: op, URL: target, RequestID: reqID, Err: err}
	}
	req.Header.Set(requestIDHeader, reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Op: op, URL: target, RequestID: reqID, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &RequestError{
			Op:         op,
			URL:        target,
			RequestID:  reqID,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return resp.Body, nil
}
