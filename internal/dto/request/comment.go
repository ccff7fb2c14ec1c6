package request

type CreateCommentRequest struct {
	MovieID int64  `json:"movie_id" validate:"gt=0"`
	Content string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}
