package master

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/masters", h.ListMasters)
	rg.GET("/masters/:id", h.GetMaster)
}

func (h *Handler) ListMasters(c *gin.Context) {
	userID := c.GetInt64("user_id")
	masters, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list masters")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"masters": masters})
}

func (h *Handler) GetMaster(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid master id")
		return
	}

	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Master not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get master")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"master": m})
}
