package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MaxCommentLength = 1000

type CommentService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	Update(ctx context.Context, userID, commentID uuid.UUID, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
	ListByMovie(ctx context.Context, movieID int64) ([]response.CommentResponse, error)
}

type commentService struct {
	repo repository.CommentRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewCommentService(repo repository.CommentRepository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
		now:  time.Now,
	}
}

func (s *commentService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if req.MovieID <= 0 {
		return nil, fmt.Errorf("%w: movie_id must be a positive integer", utils.ErrValidation)
	}

	content, err := normalizeContent(req.Content)
	if err != nil {
		s.log.Warn("Create comment validation failed",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, err
	}

	now := s.now()
	comment := &entity.Comment{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID: req.MovieID,
		UserID:  userID,
		Content: content,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", comment.MovieID),
	)

	username, _ := utils.GetUsernameFromContext(ctx)
	resp := response.CommentToResponse(comment, username)
	return &resp, nil
}

// Update refuses non-owners before the new content is validated.
func (s *commentService) Update(ctx context.Context, userID, commentID uuid.UUID, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	comment, err := s.findOwned(ctx, userID, commentID, "update")
	if err != nil {
		return nil, err
	}

	content, err := normalizeContent(req.Content)
	if err != nil {
		return nil, err
	}

	updatedAt := s.now()
	updated, err := s.repo.UpdateContent(ctx, commentID, userID, content, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if !updated {
		// removed between the lookup and the write
		return nil, fmt.Errorf("%w: comment %s", utils.ErrNotFound, commentID)
	}

	comment.Content = content
	comment.UpdatedAt = updatedAt

	s.log.Info("Comment updated",
		zap.String("comment_id", commentID.String()),
		zap.String("user_id", userID.String()),
	)

	username, _ := utils.GetUsernameFromContext(ctx)
	resp := response.CommentToResponse(comment, username)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, commentID, "delete"); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, commentID, userID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: comment %s", utils.ErrNotFound, commentID)
	}

	s.log.Info("Comment deleted",
		zap.String("comment_id", commentID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}

func (s *commentService) ListByMovie(ctx context.Context, movieID int64) ([]response.CommentResponse, error) {
	comments, err := s.repo.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	s.log.Debug("Comments listed",
		zap.Int64("movie_id", movieID),
		zap.Int("count", len(comments)),
	)

	return response.CommentsToResponse(comments), nil
}

func (s *commentService) findOwned(ctx context.Context, userID, commentID uuid.UUID, operation string) (*entity.Comment, error) {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return nil, fmt.Errorf("%w: comment %s", utils.ErrNotFound, commentID)
	}

	if comment.UserID != userID {
		s.log.Warn("Comment ownership check failed",
			zap.String("operation", operation),
			zap.String("comment_id", commentID.String()),
			zap.String("owner_id", comment.UserID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("%w: not allowed to %s this comment", utils.ErrForbidden, operation)
	}

	return comment, nil
}

// normalizeContent strips markup and enforces 1..MaxCommentLength characters.
func normalizeContent(raw string) (string, error) {
	content := utils.SanitizeText(raw)

	length := utf8.RuneCountInString(content)
	if length == 0 {
		return "", fmt.Errorf("%w: content is required", utils.ErrValidation)
	}
	if length > MaxCommentLength {
		return "", fmt.Errorf("%w: content must be at most %d characters", utils.ErrValidation, MaxCommentLength)
	}

	return content, nil
}
