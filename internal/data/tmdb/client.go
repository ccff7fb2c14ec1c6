package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.themoviedb.org/3"
	extrasBundle   = "videos,credits,similar"
)

// Gateway is the catalog surface the rest of the service depends on.
type Gateway interface {
	ListPopular(ctx context.Context, page int) (*MoviePage, error)
	DiscoverByGenre(ctx context.Context, genreID, page int) (*MoviePage, error)
	GetMovie(ctx context.Context, movieID int64) (*MovieDetail, error)
	GetMovieWithExtras(ctx context.Context, movieID int64) (*MovieDetailWithExtras, error)
}

// Client talks to the TMDB v3 REST API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	log        *zap.Logger
}

var _ Gateway = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log.With(zap.String("gateway", "tmdb"))
		}
	}
}

// New creates a TMDB client. The api key is mandatory.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ListPopular fetches one page of movie/popular.
func (c *Client) ListPopular(ctx context.Context, page int) (*MoviePage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(normalizePage(page)))

	var payload MoviePage
	if err := c.get(ctx, "movie/popular", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DiscoverByGenre fetches one page of discover/movie for a single genre,
// most popular first, without adult or video-only entries.
// A genreID of zero discovers across all genres.
func (c *Client) DiscoverByGenre(ctx context.Context, genreID, page int) (*MoviePage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(normalizePage(page)))
	params.Set("sort_by", "popularity.desc")
	params.Set("include_adult", "false")
	params.Set("include_video", "false")
	if genreID > 0 {
		params.Set("with_genres", strconv.Itoa(genreID))
	}

	var payload MoviePage
	if err := c.get(ctx, "discover/movie", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetMovie fetches a movie's detail. Any upstream failure is reported as not found.
func (c *Client) GetMovie(ctx context.Context, movieID int64) (*MovieDetail, error) {
	if movieID <= 0 {
		return nil, fmt.Errorf("%w: movie %d", utils.ErrNotFound, movieID)
	}

	var payload MovieDetail
	if err := c.get(ctx, "movie/"+strconv.FormatInt(movieID, 10), url.Values{}, &payload); err != nil {
		return nil, fmt.Errorf("%w: movie %d: %v", utils.ErrNotFound, movieID, err)
	}
	return &payload, nil
}

// GetMovieWithExtras fetches detail plus videos, credits and similar titles in one call.
func (c *Client) GetMovieWithExtras(ctx context.Context, movieID int64) (*MovieDetailWithExtras, error) {
	if movieID <= 0 {
		return nil, fmt.Errorf("%w: movie %d", utils.ErrNotFound, movieID)
	}

	params := url.Values{}
	params.Set("append_to_response", extrasBundle)

	var payload MovieDetailWithExtras
	if err := c.get(ctx, "movie/"+strconv.FormatInt(movieID, 10), params, &payload); err != nil {
		return nil, fmt.Errorf("%w: movie %d: %v", utils.ErrNotFound, movieID, err)
	}
	return &payload, nil
}

// get performs a single GET; every failure is wrapped in utils.ErrUpstream.
func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	endpoint, err := url.Parse(c.baseURL + "/" + path)
	if err != nil {
		return fmt.Errorf("%w: parse tmdb url: %v", utils.ErrUpstream, err)
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", utils.ErrUpstream, err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		c.log.Warn("TMDB request failed",
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
		return fmt.Errorf("%w: execute request (latency=%v): %v", utils.ErrUpstream, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("TMDB returned non-success status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("latency", latency),
		)
		return fmt.Errorf("%w: tmdb %s returned %d", utils.ErrUpstream, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode tmdb %s response: %v", utils.ErrUpstream, path, err)
	}

	c.log.Debug("TMDB request completed",
		zap.String("path", path),
		zap.Duration("latency", latency),
	)
	return nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
