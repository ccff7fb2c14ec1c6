package entity

import (
	"github.com/google/uuid"
)

// FavoriteMovie links a user to a TMDB movie id; (UserID, MovieID) is unique.
type FavoriteMovie struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	MovieID int64     `db:"movie_id"`
}
