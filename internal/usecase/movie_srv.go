package usecase

import (
	"context"

	"movie-catalog/internal/data/tmdb"

	"go.uber.org/zap"
)

// MovieService exposes the TMDB gateway to the movie routes.
type MovieService interface {
	ListPopular(ctx context.Context, page int) (*tmdb.MoviePage, error)
	Discover(ctx context.Context, genreID, page int) (*tmdb.MoviePage, error)
	GetMovie(ctx context.Context, movieID int64) (*tmdb.MovieDetail, error)
	GetMovieWithExtras(ctx context.Context, movieID int64) (*tmdb.MovieDetailWithExtras, error)
}

type movieService struct {
	gateway tmdb.Gateway
	log     *zap.Logger
}

func NewMovieService(gateway tmdb.Gateway, log *zap.Logger) MovieService {
	return &movieService{
		gateway: gateway,
		log:     log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListPopular(ctx context.Context, page int) (*tmdb.MoviePage, error) {
	movies, err := s.gateway.ListPopular(ctx, page)
	if err != nil {
		s.log.Warn("Failed to list popular movies", zap.Error(err), zap.Int("page", page))
		return nil, err
	}
	return movies, nil
}

func (s *movieService) Discover(ctx context.Context, genreID, page int) (*tmdb.MoviePage, error) {
	movies, err := s.gateway.DiscoverByGenre(ctx, genreID, page)
	if err != nil {
		s.log.Warn("Failed to discover movies",
			zap.Error(err),
			zap.Int("genre_id", genreID),
			zap.Int("page", page),
		)
		return nil, err
	}
	return movies, nil
}

func (s *movieService) GetMovie(ctx context.Context, movieID int64) (*tmdb.MovieDetail, error) {
	movie, err := s.gateway.GetMovie(ctx, movieID)
	if err != nil {
		s.log.Info("Movie not found", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, err
	}
	return movie, nil
}

// GetMovieWithExtras adds videos, credits and similar titles to the detail.
func (s *movieService) GetMovieWithExtras(ctx context.Context, movieID int64) (*tmdb.MovieDetailWithExtras, error) {
	movie, err := s.gateway.GetMovieWithExtras(ctx, movieID)
	if err != nil {
		s.log.Info("Movie with extras not found", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, err
	}
	return movie, nil
}
