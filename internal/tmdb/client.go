package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"movie-catalog/internal/config"

	"github.com/sirupsen/logrus"
)

// ErrUpstream covers every provider failure: non-200 status, transport
// errors and timeouts. Callers never retry.
var ErrUpstream = fmt.Errorf("upstream provider unavailable")

// Client is a thin read-only client for the movie metadata provider. The
// API key is injected configuration; every call is bounded by the
// http.Client timeout and the request context.
type Client struct {
	cfg        config.TMDBConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg config.TMDBConfig, logger *logrus.Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.cfg.APIKey)
	params.Set("language", c.cfg.Language)

	fullURL := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("endpoint", endpoint).Error("Provider request failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
		}).Error("Provider returned non-200 status")
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	return body, nil
}

func (c *Client) getList(ctx context.Context, endpoint string, params url.Values) ([]MovieSummary, error) {
	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var result MovieListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	return result.Results, nil
}

func (c *Client) TopRated(ctx context.Context) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("page", "1")
	return c.getList(ctx, "/movie/top_rated", params)
}

func (c *Client) Popular(ctx context.Context) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("page", "1")
	params.Set("region", c.cfg.Region)
	return c.getList(ctx, "/movie/popular", params)
}

func (c *Client) NowPlaying(ctx context.Context) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("page", "1")
	params.Set("region", c.cfg.Region)
	return c.getList(ctx, "/movie/now_playing", params)
}

func (c *Client) GenreList(ctx context.Context) ([]Genre, error) {
	body, err := c.get(ctx, "/genre/movie/list", nil)
	if err != nil {
		return nil, err
	}

	var result GenreListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	return result.Genres, nil
}

func (c *Client) DiscoverByGenre(ctx context.Context, genreID int) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("page", "1")
	return c.getList(ctx, "/discover/movie", params)
}

func (c *Client) DiscoverByCast(ctx context.Context, actorID int64) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("with_cast", strconv.FormatInt(actorID, 10))
	params.Set("page", "1")
	return c.getList(ctx, "/discover/movie", params)
}

func (c *Client) DiscoverByCrew(ctx context.Context, directorID int64) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("with_crew", strconv.FormatInt(directorID, 10))
	params.Set("page", "1")
	return c.getList(ctx, "/discover/movie", params)
}

// MovieDetail returns the typed detail payload plus the raw decoded object.
// The raw form is kept so transient provider-only fields survive the merge
// with locally persisted data.
func (c *Client) MovieDetail(ctx context.Context, movieID int64) (*MovieDetail, map[string]interface{}, error) {
	body, err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), nil)
	if err != nil {
		return nil, nil, err
	}

	var detail MovieDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, nil, fmt.Errorf("%w: decode detail: %v", ErrUpstream, err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: decode detail: %v", ErrUpstream, err)
	}

	return &detail, raw, nil
}

func (c *Client) MovieCredits(ctx context.Context, movieID int64) (*Credits, map[string]interface{}, error) {
	body, err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", movieID), nil)
	if err != nil {
		return nil, nil, err
	}

	var credits Credits
	if err := json.Unmarshal(body, &credits); err != nil {
		return nil, nil, fmt.Errorf("%w: decode credits: %v", ErrUpstream, err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: decode credits: %v", ErrUpstream, err)
	}

	return &credits, raw, nil
}

func (c *Client) PersonDetail(ctx context.Context, personID int64) (map[string]interface{}, error) {
	body, err := c.get(ctx, fmt.Sprintf("/person/%d", personID), nil)
	if err != nil {
		return nil, err
	}

	var person map[string]interface{}
	if err := json.Unmarshal(body, &person); err != nil {
		return nil, fmt.Errorf("%w: decode person: %v", ErrUpstream, err)
	}
	return person, nil
}

func (c *Client) PersonMovieCredits(ctx context.Context, personID int64) (map[string]interface{}, error) {
	body, err := c.get(ctx, fmt.Sprintf("/person/%d/movie_credits", personID), nil)
	if err != nil {
		return nil, err
	}

	var credits map[string]interface{}
	if err := json.Unmarshal(body, &credits); err != nil {
		return nil, fmt.Errorf("%w: decode person credits: %v", ErrUpstream, err)
	}
	return credits, nil
}
