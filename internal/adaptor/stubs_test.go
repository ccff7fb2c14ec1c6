package adaptor

import (
	"context"
	"net/http"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
)

type stubCommentService struct {
	createFn func(userID uuid.UUID, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	updateFn func(userID, commentID uuid.UUID, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	deleteFn func(userID, commentID uuid.UUID) error
	listFn   func(movieID int64) ([]response.CommentResponse, error)
}

func (s *stubCommentService) Create(_ context.Context, userID uuid.UUID, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	return s.createFn(userID, req)
}

func (s *stubCommentService) Update(_ context.Context, userID, commentID uuid.UUID, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	return s.updateFn(userID, commentID, req)
}

func (s *stubCommentService) Delete(_ context.Context, userID, commentID uuid.UUID) error {
	return s.deleteFn(userID, commentID)
}

func (s *stubCommentService) ListByMovie(_ context.Context, movieID int64) ([]response.CommentResponse, error) {
	return s.listFn(movieID)
}

type stubFavoriteService struct {
	favorites map[int64]bool
}

func (s *stubFavoriteService) Add(_ context.Context, userID uuid.UUID, movieID int64) (*entity.FavoriteMovie, usecase.FavoriteStatus, error) {
	if s.favorites[movieID] {
		return nil, usecase.FavoriteAlreadyExists, nil
	}
	s.favorites[movieID] = true
	return &entity.FavoriteMovie{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		UserID:     userID,
		MovieID:    movieID,
	}, usecase.FavoriteAdded, nil
}

func (s *stubFavoriteService) Remove(_ context.Context, _ uuid.UUID, movieID int64) (usecase.FavoriteStatus, error) {
	if !s.favorites[movieID] {
		return usecase.FavoriteNotFound, nil
	}
	delete(s.favorites, movieID)
	return usecase.FavoriteRemoved, nil
}

func (s *stubFavoriteService) IsFavorite(_ context.Context, _ uuid.UUID, movieID int64) (bool, error) {
	return s.favorites[movieID], nil
}

func (s *stubFavoriteService) ListForUser(context.Context, uuid.UUID) ([]*entity.FavoriteMovie, error) {
	return nil, nil
}

type stubCatalogService struct {
	viewer uuid.UUID
}

func (s *stubCatalogService) HomePage(context.Context) (*response.HomePage, error) {
	return &response.HomePage{}, nil
}

func (s *stubCatalogService) MoviePage(_ context.Context, movieID int64, viewer uuid.UUID) (*response.MoviePage, error) {
	s.viewer = viewer
	return nil, utils.ErrNotFound
}

func (s *stubCatalogService) FavoritesPage(context.Context, uuid.UUID) (*response.FavoritesPage, error) {
	return &response.FavoritesPage{}, nil
}

// asUser injects the session user the way AuthSession does.
func asUser(userID uuid.UUID, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r.WithContext(utils.SetUserContext(r.Context(), userID, "tester")))
	}
}
