package request

type AddFavoriteRequest struct {
	MovieID int64 `json:"movie_id" validate:"gt=0"`
}
