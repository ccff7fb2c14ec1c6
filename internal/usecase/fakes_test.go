package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/tmdb"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
)

type memCommentRepo struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]*entity.Comment
	authors map[uuid.UUID]string
	listErr error
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{
		rows:    make(map[uuid.UUID]*entity.Comment),
		authors: make(map[uuid.UUID]string),
	}
}

func (r *memCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *comment
	r.rows[c.ID] = &c
	return nil
}

func (r *memCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	out := *c
	return &out, nil
}

func (r *memCommentRepo) FindByMovieID(_ context.Context, movieID int64) ([]*entity.CommentWithAuthor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}

	out := make([]*entity.CommentWithAuthor, 0)
	for _, c := range r.rows {
		if c.MovieID == movieID {
			out = append(out, &entity.CommentWithAuthor{Comment: *c, AuthorName: r.authors[c.UserID]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memCommentRepo) UpdateContent(_ context.Context, id, userID uuid.UUID, content string, updatedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok || c.UserID != userID {
		return false, nil
	}
	c.Content = content
	c.UpdatedAt = updatedAt
	return true, nil
}

func (r *memCommentRepo) Delete(_ context.Context, id, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok || c.UserID != userID {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type favoriteKey struct {
	userID  uuid.UUID
	movieID int64
}

// memFavoriteRepo enforces the (user, movie) uniqueness the table's constraint provides.
type memFavoriteRepo struct {
	mu   sync.Mutex
	rows map[favoriteKey]*entity.FavoriteMovie
	err  error
}

func newMemFavoriteRepo() *memFavoriteRepo {
	return &memFavoriteRepo{rows: make(map[favoriteKey]*entity.FavoriteMovie)}
}

func (r *memFavoriteRepo) Create(_ context.Context, favorite *entity.FavoriteMovie) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := favoriteKey{favorite.UserID, favorite.MovieID}
	if _, ok := r.rows[key]; ok {
		return false, nil
	}
	f := *favorite
	r.rows[key] = &f
	return true, nil
}

func (r *memFavoriteRepo) Delete(_ context.Context, userID uuid.UUID, movieID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := favoriteKey{userID, movieID}
	if _, ok := r.rows[key]; !ok {
		return false, nil
	}
	delete(r.rows, key)
	return true, nil
}

func (r *memFavoriteRepo) Exists(_ context.Context, userID uuid.UUID, movieID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.rows[favoriteKey{userID, movieID}]
	return ok, nil
}

func (r *memFavoriteRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.FavoriteMovie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.FavoriteMovie, 0)
	for _, f := range r.rows {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memFavoriteRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[u.ID] = &u
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username }), nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[user.ID]
	if !ok || u.DeletedAt != nil {
		return utils.ErrNotFound
	}
	u.Username, u.Email, u.UpdatedAt = user.Username, user.Email, user.UpdatedAt
	return nil
}

func (r *memUserRepo) SoftDelete(_ context.Context, id uuid.UUID, deletedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return utils.ErrNotFound
	}
	u.DeletedAt = &deletedAt
	return nil
}

func (r *memUserRepo) find(match func(*entity.User) bool) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.DeletedAt == nil && match(u) {
			out := *u
			return &out
		}
	}
	return nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *memSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := *session
	r.sessions[s.Token.String()] = &s
	return nil
}

func (r *memSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok || s.RevokedAt != nil || time.Now().After(s.ExpiresAt) {
		return nil, nil
	}
	out := *s
	return &out, nil
}

func (r *memSessionRepo) RevokeAllForUser(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var revoked int64
	now := time.Now()
	for _, s := range r.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
			revoked++
		}
	}
	return revoked, nil
}

func (r *memSessionRepo) Revoke(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok || s.RevokedAt != nil {
		return utils.ErrUnauthorized
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

type fakeGateway struct {
	popular  func(page int) (*tmdb.MoviePage, error)
	discover func(genreID, page int) (*tmdb.MoviePage, error)
	movie    func(id int64) (*tmdb.MovieDetail, error)
	extras   func(id int64) (*tmdb.MovieDetailWithExtras, error)
}

func (g *fakeGateway) ListPopular(_ context.Context, page int) (*tmdb.MoviePage, error) {
	return g.popular(page)
}

func (g *fakeGateway) DiscoverByGenre(_ context.Context, genreID, page int) (*tmdb.MoviePage, error) {
	return g.discover(genreID, page)
}

func (g *fakeGateway) GetMovie(_ context.Context, id int64) (*tmdb.MovieDetail, error) {
	return g.movie(id)
}

func (g *fakeGateway) GetMovieWithExtras(_ context.Context, id int64) (*tmdb.MovieDetailWithExtras, error) {
	return g.extras(id)
}

// tickingClock returns strictly increasing times so ordering by created_at is deterministic.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}
