package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFavorite(
	r chi.Router,
	favoriteHandler *adaptor.FavoriteHandler,
	repo *repository.Repository,
	limit func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/favorites", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", favoriteHandler.List)
		r.Get("/check/{movie_id}", favoriteHandler.Check)
		r.With(limit).Post("/", favoriteHandler.Add)
		r.With(limit).Delete("/{movie_id}", favoriteHandler.Remove)
	})
}
