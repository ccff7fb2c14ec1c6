package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	service usecase.FavoriteService
	catalog usecase.CatalogService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, catalog usecase.CatalogService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		catalog: catalog,
		log:     log.With(zap.String("handler", "favorite")),
	}
}

// List handles GET /favorites
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page, err := h.catalog.FavoritesPage(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list favorites")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// Add handles POST /favorites; a repeat add is reported, not rejected
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	favorite, status, err := h.service.Add(r.Context(), userID, req.MovieID)
	if err != nil {
		handleServiceError(h.log, w, err, "add favorite")
		return
	}

	if status == usecase.FavoriteAlreadyExists {
		utils.ResponseSuccess(w, "Movie already in favorites", map[string]int64{"movie_id": req.MovieID})
		return
	}

	utils.ResponseCreated(w, "Movie added to favorites", response.FavoriteToResponse(favorite))
}

// Remove handles DELETE /favorites/{movie_id}
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, ok := utils.ParseID(chi.URLParam(r, "movie_id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	status, err := h.service.Remove(r.Context(), userID, movieID)
	if err != nil {
		handleServiceError(h.log, w, err, "remove favorite")
		return
	}

	removed := status == usecase.FavoriteRemoved
	message := "Movie removed from favorites"
	if !removed {
		message = "Favorite not found"
	}

	utils.ResponseSuccess(w, message, response.FavoriteRemoveResponse{MovieID: movieID, Removed: removed})
}

// Check handles GET /favorites/check/{movie_id}; the body is {"isFavorite": bool}
func (h *FavoriteHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	movieID, ok := utils.ParseID(chi.URLParam(r, "movie_id"))
	if !ok {
		utils.ResponseRaw(w, http.StatusOK, response.FavoriteCheckResponse{IsFavorite: false})
		return
	}

	isFavorite, err := h.service.IsFavorite(r.Context(), userID, movieID)
	if err != nil {
		h.log.Error("Failed to check favorite", zap.Error(err), zap.Int64("movie_id", movieID))
		utils.ResponseError(w, http.StatusInternalServerError, "failed to check favorite")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, response.FavoriteCheckResponse{IsFavorite: isFavorite})
}
