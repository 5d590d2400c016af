package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"beautysalon/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type AddFavoriteRequest struct {
	MasterID int64 `json:"master_id" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("/:masterId", h.RemoveFavorite)
	}
}

func (h *Handler) ListFavorites(c *gin.Context) {
	userID := c.GetInt64("user_id")
	masters, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get favorites")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"masters": masters})
}

func (h *Handler) AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "master_id is required")
		return
	}

	userID := c.GetInt64("user_id")
	f, err := h.service.Add(c.Request.Context(), userID, req.MasterID)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid master id")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "ALREADY_FAVORITE", "Master is already in favorites")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"favorite": f})
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	masterID, err := strconv.ParseInt(c.Param("masterId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid master id")
		return
	}

	userID := c.GetInt64("user_id")
	if err := h.service.Remove(c.Request.Context(), userID, masterID); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid master id")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Master is not in favorites")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove favorite")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Removed from favorites"})
}
