package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FavoriteStatus reports the outcome of Add and Remove. Duplicates and
// missing rows are signals, not errors.
type FavoriteStatus string

const (
	FavoriteAdded         FavoriteStatus = "added"
	FavoriteAlreadyExists FavoriteStatus = "already_favorited"
	FavoriteRemoved       FavoriteStatus = "removed"
	FavoriteNotFound      FavoriteStatus = "not_found"
)

type FavoriteService interface {
	Add(ctx context.Context, userID uuid.UUID, movieID int64) (*entity.FavoriteMovie, FavoriteStatus, error)
	Remove(ctx context.Context, userID uuid.UUID, movieID int64) (FavoriteStatus, error)
	IsFavorite(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteMovie, error)
}

type favoriteService struct {
	repo repository.FavoriteRepository
	log  *zap.Logger
}

func NewFavoriteService(repo repository.FavoriteRepository, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo: repo,
		log:  log.With(zap.String("service", "favorite")),
	}
}

func (s *favoriteService) Add(ctx context.Context, userID uuid.UUID, movieID int64) (*entity.FavoriteMovie, FavoriteStatus, error) {
	if movieID <= 0 {
		return nil, "", fmt.Errorf("%w: movie_id must be a positive integer", utils.ErrValidation)
	}

	favorite := &entity.FavoriteMovie{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		MovieID: movieID,
	}

	created, err := s.repo.Create(ctx, favorite)
	if err != nil {
		return nil, "", fmt.Errorf("add favorite: %w", err)
	}

	if !created {
		s.log.Debug("Movie already favorited",
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return nil, FavoriteAlreadyExists, nil
	}

	s.log.Info("Favorite added",
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", movieID),
	)
	return favorite, FavoriteAdded, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID uuid.UUID, movieID int64) (FavoriteStatus, error) {
	removed, err := s.repo.Delete(ctx, userID, movieID)
	if err != nil {
		return "", fmt.Errorf("remove favorite: %w", err)
	}

	if !removed {
		return FavoriteNotFound, nil
	}

	s.log.Info("Favorite removed",
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", movieID),
	)
	return FavoriteRemoved, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error) {
	exists, err := s.repo.Exists(ctx, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return exists, nil
}

func (s *favoriteService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteMovie, error) {
	favorites, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
