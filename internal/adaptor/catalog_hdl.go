package adaptor

import (
	"errors"
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// Home handles GET /catalog/home
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.HomePage(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "home page")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// Movie handles GET /catalog/movies/{id}; is_favorite is filled in for signed-in viewers
func (h *CatalogHandler) Movie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w, "Movie not found")
		return
	}

	// uuid.Nil when anonymous
	viewer, _ := utils.GetUserIDFromContext(r.Context())

	page, err := h.service.MoviePage(r.Context(), movieID, viewer)
	if errors.Is(err, utils.ErrNotFound) {
		utils.ResponseNotFound(w, "Movie not found")
		return
	}
	if err != nil {
		handleServiceError(h.log, w, err, "movie page")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}
