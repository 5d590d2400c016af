package review

import (
	"errors"
	"net/http"
	"strconv"

	"beautysalon/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Reads are public, writes require an authenticated user.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.ListReviews)
	rg.GET("/reviews/master/:masterId", h.ListMasterReviews)
	rg.GET("/reviews/master/:masterId/rating", h.GetMasterRating)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.AddReview)
	rg.PUT("/reviews/:id", h.UpdateReview)
	rg.DELETE("/reviews/:id", h.DeleteReview)
}

func (h *Handler) AddReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Fill in all required fields")
		return
	}

	userID := c.GetInt64("user_id")
	rv, err := h.service.Add(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Fill in all required fields")
		case errors.Is(err, ErrMasterNotFound):
			response.Error(c, http.StatusNotFound, "MASTER_NOT_FOUND", "Master not found")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "REVIEW_EXISTS", "You already reviewed this master")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) UpdateReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review id")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Text and rating are required")
		return
	}

	userID := c.GetInt64("user_id")
	rv, err := h.service.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Text and rating are required")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update review")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"review": rv})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review id")
		return
	}

	userID := c.GetInt64("user_id")
	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review id")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete review")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.service.List(c.Request.Context(), 0)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) ListMasterReviews(c *gin.Context) {
	masterID, err := strconv.ParseInt(c.Param("masterId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid master id")
		return
	}

	reviews, err := h.service.List(c.Request.Context(), masterID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) GetMasterRating(c *gin.Context) {
	masterID, err := strconv.ParseInt(c.Param("masterId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid master id")
		return
	}

	rating, err := h.service.MasterRating(c.Request.Context(), masterID)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid master id")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get rating")
		return
	}

	response.Success(c, http.StatusOK, rating)
}
