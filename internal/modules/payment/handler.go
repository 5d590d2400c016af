package payment

import (
	"errors"
	"net/http"
	"strconv"

	"beautysalon/internal/pkg/response"
	"beautysalon/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cards", h.SaveCard)
	rg.GET("/cards", h.ListCards)
	rg.DELETE("/cards/:id", h.DeleteCard)
	rg.POST("/payments", h.CreatePayment)
	rg.GET("/payments", h.ListPayments)
}

func (h *Handler) SaveCard(c *gin.Context) {
	var req SaveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid card data")
		return
	}

	if fieldErrors := validator.Validate(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid card data", fieldErrors)
		return
	}

	userID := c.GetInt64("user_id")
	card, err := h.service.SaveCard(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save card")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"card": card})
}

func (h *Handler) ListCards(c *gin.Context) {
	userID := c.GetInt64("user_id")
	cards, err := h.service.ListCards(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list cards")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cards": cards})
}

func (h *Handler) DeleteCard(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid card id")
		return
	}

	userID := c.GetInt64("user_id")
	if err := h.service.DeleteCard(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid card id")
		case errors.Is(err, ErrCardNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Card not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete card")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Card deleted"})
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment data")
		return
	}

	userID := c.GetInt64("user_id")
	p, err := h.service.CreatePayment(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment data")
		case errors.Is(err, ErrCardNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Card not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment": p})
}

func (h *Handler) ListPayments(c *gin.Context) {
	userID := c.GetInt64("user_id")
	payments, err := h.service.ListPayments(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}
