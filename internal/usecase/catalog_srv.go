package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/tmdb"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// RailSize is the number of movies shown per home page category.
const RailSize = 15

// Category is a named TMDB genre rail on the home page.
type Category struct {
	GenreID int
	Name    string
}

// DefaultCategories are the home page rails, in display order.
var DefaultCategories = []Category{
	{GenreID: 28, Name: "Action"},
	{GenreID: 12, Name: "Adventure"},
	{GenreID: 16, Name: "Animation"},
	{GenreID: 35, Name: "Comedy"},
	{GenreID: 80, Name: "Crime"},
	{GenreID: 99, Name: "Documentary"},
	{GenreID: 18, Name: "Drama"},
	{GenreID: 10751, Name: "Family"},
	{GenreID: 14, Name: "Fantasy"},
	{GenreID: 36, Name: "History"},
	{GenreID: 27, Name: "Horror"},
	{GenreID: 10402, Name: "Music"},
	{GenreID: 9648, Name: "Mystery"},
	{GenreID: 10749, Name: "Romance"},
	{GenreID: 878, Name: "Science Fiction"},
	{GenreID: 10770, Name: "TV Movie"},
	{GenreID: 53, Name: "Thriller"},
	{GenreID: 10752, Name: "War"},
	{GenreID: 37, Name: "Western"},
}

// CatalogService assembles page view-models from the gateway and the stores.
// A failed rail or favorite detail is left out of the page instead of failing it.
type CatalogService interface {
	HomePage(ctx context.Context) (*response.HomePage, error)
	MoviePage(ctx context.Context, movieID int64, viewer uuid.UUID) (*response.MoviePage, error)
	FavoritesPage(ctx context.Context, userID uuid.UUID) (*response.FavoritesPage, error)
}

type catalogService struct {
	gateway        tmdb.Gateway
	comments       CommentService
	favorites      FavoriteService
	categories     []Category
	maxConcurrency int
	log            *zap.Logger
}

func NewCatalogService(
	gateway tmdb.Gateway,
	comments CommentService,
	favorites FavoriteService,
	maxConcurrency int,
	log *zap.Logger,
) CatalogService {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	return &catalogService{
		gateway:        gateway,
		comments:       comments,
		favorites:      favorites,
		categories:     DefaultCategories,
		maxConcurrency: maxConcurrency,
		log:            log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) HomePage(ctx context.Context) (*response.HomePage, error) {
	rails := make([]*response.CategoryRail, len(s.categories))

	p := pool.New().WithMaxGoroutines(s.maxConcurrency)
	for i, category := range s.categories {
		p.Go(func() {
			movies, err := s.gateway.DiscoverByGenre(ctx, category.GenreID, 1)
			if err != nil {
				s.log.Warn("Home rail omitted",
					zap.Error(err),
					zap.String("category", category.Name),
					zap.Int("genre_id", category.GenreID),
				)
				return
			}

			results := movies.Results
			if len(results) > RailSize {
				results = results[:RailSize]
			}

			rails[i] = &response.CategoryRail{
				GenreID: category.GenreID,
				Name:    category.Name,
				Movies:  results,
			}
		})
	}
	p.Wait()

	page := &response.HomePage{Categories: make([]response.CategoryRail, 0, len(rails))}
	for _, rail := range rails {
		if rail != nil {
			page.Categories = append(page.Categories, *rail)
		}
	}

	s.log.Debug("Home page assembled",
		zap.Int("rails", len(page.Categories)),
		zap.Int("omitted", len(s.categories)-len(page.Categories)),
	)

	return page, nil
}

// MoviePage fetches the movie and its comments concurrently. viewer may be uuid.Nil for anonymous requests.
func (s *catalogService) MoviePage(ctx context.Context, movieID int64, viewer uuid.UUID) (*response.MoviePage, error) {
	var (
		movie       *tmdb.MovieDetail
		movieErr    error
		comments    []response.CommentResponse
		commentsErr error
		isFavorite  *bool
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		movie, movieErr = s.gateway.GetMovie(ctx, movieID)
	})
	wg.Go(func() {
		comments, commentsErr = s.comments.ListByMovie(ctx, movieID)
	})
	if viewer != uuid.Nil {
		wg.Go(func() {
			favorite, err := s.favorites.IsFavorite(ctx, viewer, movieID)
			if err != nil {
				s.log.Warn("Favorite flag omitted", zap.Error(err), zap.Int64("movie_id", movieID))
				return
			}
			isFavorite = &favorite
		})
	}
	wg.Wait()

	if movieErr != nil {
		if !errors.Is(movieErr, utils.ErrNotFound) {
			movieErr = fmt.Errorf("%w: %v", utils.ErrNotFound, movieErr)
		}
		return nil, movieErr
	}
	if commentsErr != nil {
		s.log.Error("Failed to load comments for movie page",
			zap.Error(commentsErr),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("movie page comments: %w", commentsErr)
	}

	return &response.MoviePage{
		Movie:      movie,
		Comments:   comments,
		IsFavorite: isFavorite,
	}, nil
}

// FavoritesPage keeps the favorites order, newest first; details that fail to load are left out.
func (s *catalogService) FavoritesPage(ctx context.Context, userID uuid.UUID) (*response.FavoritesPage, error) {
	favorites, err := s.favorites.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]*tmdb.MovieDetail, len(favorites))

	p := pool.New().WithMaxGoroutines(s.maxConcurrency)
	for i, favorite := range favorites {
		p.Go(func() {
			movie, err := s.gateway.GetMovie(ctx, favorite.MovieID)
			if err != nil {
				s.log.Warn("Favorite movie omitted",
					zap.Error(err),
					zap.String("user_id", userID.String()),
					zap.Int64("movie_id", favorite.MovieID),
				)
				return
			}
			details[i] = movie
		})
	}
	p.Wait()

	page := &response.FavoritesPage{
		Movies: make([]tmdb.MovieDetail, 0, len(details)),
		Total:  len(favorites),
	}
	for _, movie := range details {
		if movie == nil {
			page.Missing++
			continue
		}
		page.Movies = append(page.Movies, *movie)
	}

	return page, nil
}
