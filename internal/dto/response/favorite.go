package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type FavoriteResponse struct {
	ID        string    `json:"id"`
	MovieID   int64     `json:"movie_id"`
	CreatedAt time.Time `json:"created_at"`
}

type FavoriteCheckResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

type FavoriteRemoveResponse struct {
	MovieID int64 `json:"movie_id"`
	Removed bool  `json:"removed"`
}

func FavoriteToResponse(favorite *entity.FavoriteMovie) FavoriteResponse {
	return FavoriteResponse{
		ID:        favorite.ID.String(),
		MovieID:   favorite.MovieID,
		CreatedAt: favorite.CreatedAt,
	}
}
