package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser exposes the signed in user's own account
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	limit func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, log)

	r.With(auth).Get("/user", userHandler.CurrentUser)

	r.Route("/profile", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", userHandler.GetProfile)
		r.With(limit).Patch("/", userHandler.UpdateProfile)
		r.With(limit).Delete("/", userHandler.DeleteProfile)
	})
}
