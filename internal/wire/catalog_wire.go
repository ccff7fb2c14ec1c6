package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/catalog", func(r chi.Router) {
		r.Use(middleware.OptionalSession(repo.Session, log))

		r.Get("/home", catalogHandler.Home)
		r.Get("/movies/{id}", catalogHandler.Movie)
	})
}
