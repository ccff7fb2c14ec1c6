package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MovieHandler serves TMDB payloads as-is. Failures use the bare {"error": "..."} body.
type MovieHandler struct {
	service  usecase.MovieService
	comments usecase.CommentService
	log      *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, comments usecase.CommentService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service:  service,
		comments: comments,
		log:      log.With(zap.String("handler", "movie")),
	}
}

// ListPopular handles GET /movies?page=N
func (h *MovieHandler) ListPopular(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	movies, err := h.service.ListPopular(r.Context(), page)
	if err != nil {
		utils.ResponseError(w, http.StatusBadGateway, "failed to fetch movies")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, movies)
}

// Discover handles GET /movies/discover?page=N&with_genres=ID
func (h *MovieHandler) Discover(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	genreID := utils.ParseInt(query.Get("with_genres"), 0)

	movies, err := h.service.Discover(r.Context(), genreID, page)
	if err != nil {
		utils.ResponseError(w, http.StatusBadGateway, "failed to discover movies")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, movies)
}

// GetMovie handles GET /movies/{id}; ?extras adds videos, credits and similar titles
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseError(w, http.StatusNotFound, "movie not found")
		return
	}

	var (
		movie any
		err   error
	)
	if wantsExtras(r) {
		movie, err = h.service.GetMovieWithExtras(r.Context(), movieID)
	} else {
		movie, err = h.service.GetMovie(r.Context(), movieID)
	}
	if err != nil {
		h.movieError(w, err, movieID)
		return
	}

	utils.ResponseRaw(w, http.StatusOK, movie)
}

func (h *MovieHandler) movieError(w http.ResponseWriter, err error, movieID int64) {
	if errors.Is(err, utils.ErrNotFound) {
		utils.ResponseError(w, http.StatusNotFound, "movie not found")
		return
	}
	h.log.Error("Failed to get movie", zap.Error(err), zap.Int64("movie_id", movieID))
	utils.ResponseError(w, http.StatusBadGateway, "failed to fetch movie")
}

// ListComments handles GET /movies/{id}/comments
func (h *MovieHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	movieID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	comments, err := h.comments.ListByMovie(r.Context(), movieID)
	if err != nil {
		handleServiceError(h.log, w, err, "list comments")
		return
	}

	utils.ResponseSuccess(w, "success", comments)
}

// wantsExtras accepts "?extras", "?extras=1" and "?extras=true".
func wantsExtras(r *http.Request) bool {
	query := r.URL.Query()
	if !query.Has("extras") {
		return false
	}

	switch strings.ToLower(query.Get("extras")) {
	case "0", "false", "no":
		return false
	default:
		return true
	}
}
