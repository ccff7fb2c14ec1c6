package adaptor

import (
	"movie-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Movie    *MovieHandler
	Comment  *CommentHandler
	Favorite *FavoriteHandler
	Catalog  *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Movie:    NewMovieHandler(service.Movie, service.Comment, log),
		Comment:  NewCommentHandler(service.Comment, log),
		Favorite: NewFavoriteHandler(service.Favorite, service.Catalog, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
	}
}
