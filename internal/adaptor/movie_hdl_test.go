package adaptor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/data/tmdb"
	"movie-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMovieRouter(t *testing.T, upstream http.HandlerFunc) http.Handler {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "pt-BR")
	require.NoError(t, err)

	handler := NewMovieHandler(usecase.NewMovieService(client, zap.NewNop()), nil, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/movies", handler.ListPopular)
	r.Get("/movies/discover", handler.Discover)
	r.Get("/movies/{id}", handler.GetMovie)
	return r
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestGetMovieNotFound(t *testing.T) {
	router := newMovieRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	})

	for _, target := range []string{"/movies/999999999", "/movies/abc", "/movies/999999999?extras"} {
		rec := serve(router, http.MethodGet, target)
		require.Equal(t, http.StatusNotFound, rec.Code, target)
		require.JSONEq(t, `{"error":"movie not found"}`, rec.Body.String(), target)
	}
}

func TestGetMovieRawPayload(t *testing.T) {
	router := newMovieRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("append_to_response") != "" {
			w.Write([]byte(`{"id":550,"title":"Fight Club","videos":{"results":[{"key":"abc"}]}}`))
			return
		}
		w.Write([]byte(`{"id":550,"title":"Fight Club"}`))
	})

	rec := serve(router, http.MethodGet, "/movies/550")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"title":"Fight Club"`)
	require.NotContains(t, rec.Body.String(), `"message"`)
	require.NotContains(t, rec.Body.String(), `"videos"`)

	rec = serve(router, http.MethodGet, "/movies/550?extras")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"key":"abc"`)
}

func TestListPopularUpstreamFailure(t *testing.T) {
	router := newMovieRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`internal stack trace`))
	})

	rec := serve(router, http.MethodGet, "/movies?page=2")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.JSONEq(t, `{"error":"failed to fetch movies"}`, rec.Body.String())

	rec = serve(router, http.MethodGet, "/movies/discover?with_genres=28")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.JSONEq(t, `{"error":"failed to discover movies"}`, rec.Body.String())
}

func TestListPopularPassesPage(t *testing.T) {
	router := newMovieRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":` + r.URL.Query().Get("page") + `,"total_pages":9,"results":[]}`))
	})

	rec := serve(router, http.MethodGet, "/movies?page=4")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"page":4,"total_pages":9,"total_results":0,"results":[]}`, rec.Body.String())
}
