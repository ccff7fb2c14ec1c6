package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/data/tmdb"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Movie    MovieService
	Comment  CommentService
	Favorite FavoriteService
	Catalog  CatalogService
}

func NewService(repo *repository.Repository, gateway tmdb.Gateway, config *utils.Config, log *zap.Logger) *Service {
	comment := NewCommentService(repo.Comment, log)
	favorite := NewFavoriteService(repo.Favorite, log)

	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo, log),
		Movie:    NewMovieService(gateway, log),
		Comment:  comment,
		Favorite: favorite,
		Catalog:  NewCatalogService(gateway, comment, favorite, config.Catalog.MaxConcurrency, log),
	}
}
