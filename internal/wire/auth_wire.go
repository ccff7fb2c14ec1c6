package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	limit func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Use(limit)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.With(middleware.AuthSession(repo.Session, log)).Post("/logout", authHandler.Logout)
	})
}
