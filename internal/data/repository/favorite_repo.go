package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FavoriteRepository interface {
	// Create returns false when the (user, movie) pair already exists.
	Create(ctx context.Context, favorite *entity.FavoriteMovie) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error)
	Exists(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteMovie, error)
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.FavoriteMovie) (bool, error) {
	// the unique constraint rejects the loser of a concurrent double insert
	query := `
		INSERT INTO favorite_movies (id, user_id, movie_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		favorite.ID,
		favorite.UserID,
		favorite.MovieID,
		favorite.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create favorite",
			zap.Error(err),
			zap.String("user_id", favorite.UserID.String()),
			zap.Int64("movie_id", favorite.MovieID),
		)
		return false, fmt.Errorf("create favorite for movie %d by user %s: %w",
			favorite.MovieID, favorite.UserID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error) {
	query := `DELETE FROM favorite_movies WHERE user_id = $1 AND movie_id = $2`

	result, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to delete favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return false, fmt.Errorf("delete favorite movie %d for user %s: %w", movieID, userID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM favorite_movies WHERE user_id = $1 AND movie_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, movieID).Scan(&exists); err != nil {
		r.log.Error("Failed to check favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return false, fmt.Errorf("check favorite movie %d for user %s: %w", movieID, userID.String(), err)
	}

	return exists, nil
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteMovie, error) {
	query := `
		SELECT id, user_id, movie_id, created_at
		FROM favorite_movies
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find favorites by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find favorites by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	favorites := make([]*entity.FavoriteMovie, 0)
	for rows.Next() {
		var favorite entity.FavoriteMovie
		if err := rows.Scan(
			&favorite.ID,
			&favorite.UserID,
			&favorite.MovieID,
			&favorite.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favorites = append(favorites, &favorite)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate favorite rows: %w", err)
	}

	return favorites, nil
}
