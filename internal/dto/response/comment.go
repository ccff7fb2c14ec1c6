package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type CommentResponse struct {
	ID        string    `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func CommentToResponse(comment *entity.Comment, username string) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.String(),
		MovieID:   comment.MovieID,
		UserID:    comment.UserID.String(),
		Username:  username,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func CommentsToResponse(comments []*entity.CommentWithAuthor) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentToResponse(&c.Comment, c.AuthorName))
	}
	return out
}
