package response

import "movie-catalog/internal/data/tmdb"

// CategoryRail is one genre row on the home page.
type CategoryRail struct {
	GenreID int                 `json:"genre_id"`
	Name    string              `json:"name"`
	Movies  []tmdb.MovieSummary `json:"movies"`
}

type HomePage struct {
	Categories []CategoryRail `json:"categories"`
}

type MoviePage struct {
	Movie      *tmdb.MovieDetail `json:"movie"`
	Comments   []CommentResponse `json:"comments"`
	IsFavorite *bool             `json:"is_favorite,omitempty"`
}

// FavoritesPage lists the details that could be fetched; Missing counts the ones that could not.
type FavoritesPage struct {
	Movies  []tmdb.MovieDetail `json:"movies"`
	Total   int                `json:"total"`
	Missing int                `json:"missing"`
}
