package usecase

import (
	"context"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCommentService(repo *memCommentRepo) *commentService {
	svc := NewCommentService(repo, zap.NewNop()).(*commentService)
	svc.now = tickingClock()
	return svc
}

func TestCommentCreateAssignsCaller(t *testing.T) {
	repo := newMemCommentRepo()
	svc := newTestCommentService(repo)
	userID := uuid.New()

	comment, err := svc.Create(context.Background(), userID, &request.CreateCommentRequest{MovieID: 550, Content: "  great movie  "})
	require.NoError(t, err)
	require.Equal(t, userID.String(), comment.UserID)
	require.Equal(t, int64(550), comment.MovieID)
	require.Equal(t, "great movie", comment.Content)
	require.Equal(t, comment.CreatedAt, comment.UpdatedAt)
}

func TestCommentCreateUsesSessionUsername(t *testing.T) {
	svc := newTestCommentService(newMemCommentRepo())
	userID := uuid.New()
	ctx := utils.SetUserContext(context.Background(), userID, "marina")

	comment, err := svc.Create(ctx, userID, &request.CreateCommentRequest{MovieID: 1, Content: "ok"})
	require.NoError(t, err)
	require.Equal(t, "marina", comment.Username)
}

func TestCommentContentLength(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "single character", content: "a"},
		{name: "exactly 1000", content: strings.Repeat("a", 1000)},
		{name: "1000 multibyte runes", content: strings.Repeat("é", 1000)},
		{name: "1001 rejected", content: strings.Repeat("a", 1001), wantErr: true},
		{name: "empty rejected", content: "", wantErr: true},
		{name: "whitespace rejected", content: "   \n\t ", wantErr: true},
		{name: "markup only rejected", content: "<script>alert(1)</script>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestCommentService(newMemCommentRepo())
			_, err := svc.Create(context.Background(), uuid.New(), &request.CreateCommentRequest{MovieID: 1, Content: tt.content})
			if tt.wantErr {
				require.ErrorIs(t, err, utils.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCommentCreateStripsMarkup(t *testing.T) {
	svc := newTestCommentService(newMemCommentRepo())

	comment, err := svc.Create(context.Background(), uuid.New(), &request.CreateCommentRequest{
		MovieID: 1,
		Content: `<b>Loved</b> it <img src=x onerror="alert(1)"> & "more"`,
	})
	require.NoError(t, err)
	require.Equal(t, `Loved it  & "more"`, comment.Content)

	encoded, err := svc.Create(context.Background(), uuid.New(), &request.CreateCommentRequest{
		MovieID: 1,
		Content: "nice &lt;script&gt;alert(1)&lt;/script&gt;",
	})
	require.NoError(t, err)
	require.Equal(t, "nice", encoded.Content)

	prose, err := svc.Create(context.Background(), uuid.New(), &request.CreateCommentRequest{
		MovieID: 1,
		Content: "if a<b then the sequel wins",
	})
	require.NoError(t, err)
	require.Equal(t, "if a<b then the sequel wins", prose.Content)
}

func TestCommentCreateRejectsEncodedMarkupOnly(t *testing.T) {
	svc := newTestCommentService(newMemCommentRepo())

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateCommentRequest{
		MovieID: 1,
		Content: "&lt;img src=x onerror=alert(1)&gt;",
	})
	require.ErrorIs(t, err, utils.ErrValidation)
}

func TestCommentCreateRejectsInvalidMovie(t *testing.T) {
	svc := newTestCommentService(newMemCommentRepo())

	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateCommentRequest{MovieID: 0, Content: "hi"})
	require.ErrorIs(t, err, utils.ErrValidation)
}

func TestCommentNonOwnerIsForbidden(t *testing.T) {
	repo := newMemCommentRepo()
	svc := newTestCommentService(repo)
	owner, stranger := uuid.New(), uuid.New()

	created, err := svc.Create(context.Background(), owner, &request.CreateCommentRequest{MovieID: 10, Content: "mine"})
	require.NoError(t, err)
	commentID := uuid.MustParse(created.ID)

	for _, content := range []string{"hijack", "", strings.Repeat("x", 2000)} {
		_, err = svc.Update(context.Background(), stranger, commentID, &request.UpdateCommentRequest{Content: content})
		require.ErrorIs(t, err, utils.ErrForbidden)
	}

	err = svc.Delete(context.Background(), stranger, commentID)
	require.ErrorIs(t, err, utils.ErrForbidden)

	stored, err := repo.FindByID(context.Background(), commentID)
	require.NoError(t, err)
	require.Equal(t, "mine", stored.Content)
}

func TestCommentMissingIsNotFound(t *testing.T) {
	svc := newTestCommentService(newMemCommentRepo())

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &request.UpdateCommentRequest{Content: "x"})
	require.ErrorIs(t, err, utils.ErrNotFound)

	err = svc.Delete(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCommentOwnerUpdateAndDelete(t *testing.T) {
	repo := newMemCommentRepo()
	svc := newTestCommentService(repo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &request.CreateCommentRequest{MovieID: 10, Content: "first take"})
	require.NoError(t, err)
	commentID := uuid.MustParse(created.ID)

	_, err = svc.Update(context.Background(), owner, commentID, &request.UpdateCommentRequest{Content: strings.Repeat("b", 1001)})
	require.ErrorIs(t, err, utils.ErrValidation)

	updated, err := svc.Update(context.Background(), owner, commentID, &request.UpdateCommentRequest{Content: "second take"})
	require.NoError(t, err)
	require.Equal(t, "second take", updated.Content)
	require.Equal(t, owner.String(), updated.UserID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	require.NoError(t, svc.Delete(context.Background(), owner, commentID))

	stored, err := repo.FindByID(context.Background(), commentID)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestCommentListByMovieNewestFirst(t *testing.T) {
	repo := newMemCommentRepo()
	svc := newTestCommentService(repo)
	alice, bob := uuid.New(), uuid.New()
	repo.authors[alice] = "alice"
	repo.authors[bob] = "bob"

	for _, c := range []struct {
		user    uuid.UUID
		movie   int64
		content string
	}{
		{alice, 7, "one"},
		{bob, 7, "two"},
		{alice, 8, "elsewhere"},
		{bob, 7, "three"},
	} {
		_, err := svc.Create(context.Background(), c.user, &request.CreateCommentRequest{MovieID: c.movie, Content: c.content})
		require.NoError(t, err)
	}

	comments, err := svc.ListByMovie(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "three", comments[0].Content)
	require.Equal(t, "bob", comments[0].Username)
	require.Equal(t, "one", comments[2].Content)
	require.Equal(t, "alice", comments[2].Username)
}
