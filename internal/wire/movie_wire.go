package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireMovie registers the public TMDB proxy routes
func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Get("/movies", movieHandler.ListPopular)
	r.Get("/movies/discover", movieHandler.Discover)
	r.Get("/movies/{id}", movieHandler.GetMovie)
	r.Get("/movies/{id}/comments", movieHandler.ListComments)
}
