package entity

import (
	"github.com/google/uuid"
)

// Comment is a user's note on a TMDB movie. UserID is fixed at creation.
type Comment struct {
	BaseNoDelete
	MovieID int64     `db:"movie_id"`
	UserID  uuid.UUID `db:"user_id"`
	Content string    `db:"content"` // 1-1000 chars
}

// CommentWithAuthor carries the author's display name joined from users.
type CommentWithAuthor struct {
	Comment
	AuthorName string `db:"username"`
}
