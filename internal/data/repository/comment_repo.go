package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.CommentWithAuthor, error)
	UpdateContent(ctx context.Context, id, userID uuid.UUID, content string, updatedAt time.Time) (bool, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, movie_id, user_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.MovieID,
		comment.UserID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("user_id", comment.UserID.String()),
			zap.Int64("movie_id", comment.MovieID),
		)
		return fmt.Errorf("create comment for movie %d by user %s: %w",
			comment.MovieID, comment.UserID.String(), err)
	}

	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	query := `
		SELECT id, movie_id, user_id, content, created_at, updated_at
		FROM comments
		WHERE id = $1
	`

	var comment entity.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.MovieID,
		&comment.UserID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find comment by ID",
			zap.Error(err),
			zap.String("comment_id", id.String()),
		)
		return nil, fmt.Errorf("find comment by ID %s: %w", id.String(), err)
	}

	return &comment, nil
}

// FindByMovieID lists a movie's comments newest first with the author's username.
// Authors removed from users keep their comments with an empty name.
func (r *commentRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.movie_id, c.user_id, c.content, c.created_at, c.updated_at,
		       COALESCE(u.username, '')
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id AND u.deleted_at IS NULL
		WHERE c.movie_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find comments by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find comments by movie ID %d: %w", movieID, err)
	}
	defer rows.Close()

	comments := make([]*entity.CommentWithAuthor, 0)
	for rows.Next() {
		var comment entity.CommentWithAuthor
		err := rows.Scan(
			&comment.ID,
			&comment.MovieID,
			&comment.UserID,
			&comment.Content,
			&comment.CreatedAt,
			&comment.UpdatedAt,
			&comment.AuthorName,
		)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return comments, nil
}

// UpdateContent only touches the row when userID still owns it. false means no row matched.
func (r *commentRepository) UpdateContent(ctx context.Context, id, userID uuid.UUID, content string, updatedAt time.Time) (bool, error) {
	query := `
		UPDATE comments
		SET content = $3, updated_at = $4
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query, id, userID, content, updatedAt)
	if err != nil {
		r.log.Error("Failed to update comment",
			zap.Error(err),
			zap.String("comment_id", id.String()),
		)
		return false, fmt.Errorf("update comment %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *commentRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM comments WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.String("comment_id", id.String()),
		)
		return false, fmt.Errorf("delete comment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Comment deleted", zap.String("comment_id", id.String()))
	return true, nil
}
