package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/data/tmdb"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticGateway struct{}

func (staticGateway) ListPopular(_ context.Context, page int) (*tmdb.MoviePage, error) {
	return &tmdb.MoviePage{Page: page, Results: []tmdb.MovieSummary{{ID: 550, Title: "Fight Club"}}}, nil
}

func (staticGateway) DiscoverByGenre(_ context.Context, genreID, page int) (*tmdb.MoviePage, error) {
	if genreID == 27 {
		return nil, utils.ErrUpstream
	}
	return &tmdb.MoviePage{Page: page, Results: []tmdb.MovieSummary{{ID: int64(genreID)}}}, nil
}

func (staticGateway) GetMovie(_ context.Context, id int64) (*tmdb.MovieDetail, error) {
	if id != 550 {
		return nil, utils.ErrNotFound
	}
	return &tmdb.MovieDetail{ID: id, Title: "Fight Club"}, nil
}

func (staticGateway) GetMovieWithExtras(ctx context.Context, id int64) (*tmdb.MovieDetailWithExtras, error) {
	movie, err := staticGateway{}.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	return &tmdb.MovieDetailWithExtras{MovieDetail: *movie}, nil
}

func newTestApp(t *testing.T, configure ...func(*utils.Config)) (*App, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	config := &utils.Config{
		App:       utils.AppConfig{AllowedOrigins: []string{"*"}},
		RateLimit: utils.RateLimitConfig{PerMinute: 60},
		Catalog:   utils.CatalogConfig{MaxConcurrency: 4},
		Session:   utils.SessionConfig{ExpiryHours: 24},
	}
	for _, fn := range configure {
		fn(config)
	}

	log := zap.NewNop()
	return Wiring(repository.NewRepository(mock, log), staticGateway{}, config, log), mock
}

func TestRouterPublicRoutes(t *testing.T) {
	app, mock := newTestApp(t)

	tests := []struct {
		target string
		status int
	}{
		{target: "/health", status: http.StatusOK},
		{target: "/movies", status: http.StatusOK},
		{target: "/movies/discover?with_genres=28", status: http.StatusOK},
		{target: "/movies/550", status: http.StatusOK},
		{target: "/movies/999999999", status: http.StatusNotFound},
		{target: "/catalog/home", status: http.StatusOK},
		{target: "/favorites", status: http.StatusUnauthorized},
		{target: "/favorites/check/550", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
		require.Equal(t, tt.status, rec.Code, tt.target)
		require.NotEmpty(t, rec.Header().Get("X-Request-Id"), tt.target)
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterProtectedMutations(t *testing.T) {
	app, _ := newTestApp(t)

	for _, route := range []struct{ method, target string }{
		{http.MethodPost, "/comments"},
		{http.MethodPut, "/comments/3d3c1c5e-56b4-4c53-9c43-1c1ad2bd9a10"},
		{http.MethodDelete, "/comments/3d3c1c5e-56b4-4c53-9c43-1c1ad2bd9a10"},
		{http.MethodPost, "/favorites"},
		{http.MethodDelete, "/favorites/550"},
		{http.MethodPost, "/auth/logout"},
		{http.MethodGet, "/user"},
		{http.MethodGet, "/profile"},
		{http.MethodPatch, "/profile"},
		{http.MethodDelete, "/profile"},
	} {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(route.method, route.target, nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code, route.method+" "+route.target)
	}
}

func TestRouterRegistersSurface(t *testing.T) {
	app, _ := newTestApp(t)

	routes := map[string]bool{}
	err := chi.Walk(app.Router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, want := range []string{
		"GET /movies",
		"GET /movies/discover",
		"GET /movies/{id}",
		"GET /movies/{id}/comments",
		"POST /comments",
		"PUT /comments/{id}",
		"DELETE /comments/{id}",
		"GET /favorites/",
		"POST /favorites/",
		"DELETE /favorites/{movie_id}",
		"GET /favorites/check/{movie_id}",
		"GET /catalog/home",
		"GET /catalog/movies/{id}",
		"POST /auth/register",
		"POST /auth/login",
		"POST /auth/logout",
		"GET /user",
		"GET /profile/",
		"PATCH /profile/",
		"DELETE /profile/",
		"GET /health",
	} {
		require.True(t, routes[want], want)
	}
}

func TestRateLimitIgnoresForwardedForByDefault(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		second     int
	}{
		{name: "direct", trustProxy: false, second: http.StatusTooManyRequests},
		{name: "behind proxy", trustProxy: true, second: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, func(c *utils.Config) {
				c.RateLimit.PerMinute = 2
				c.App.TrustProxy = tt.trustProxy
			})

			login := func(forwardedFor string) int {
				req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
				req.Header.Set("X-Forwarded-For", forwardedFor)
				rec := httptest.NewRecorder()
				app.Router.ServeHTTP(rec, req)
				return rec.Code
			}

			require.Equal(t, http.StatusBadRequest, login("203.0.113.1"))
			require.Equal(t, tt.second, login("203.0.113.2"))
		})
	}
}
