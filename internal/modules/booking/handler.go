package booking

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
	rg.POST("/check-availability", h.CheckAvailability)
	rg.POST("/appointments", h.CreateAppointment)
	rg.GET("/appointments", h.ListAppointments)
	rg.DELETE("/appointments/:id", h.CancelAppointment)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), req.MasterID, req.DateTime)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid master or date_time")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"available": available})
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	a, err := h.service.CreateAppointment(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All appointment fields are required")
		case errors.Is(err, ErrMasterNotFound):
			response.Error(c, http.StatusNotFound, "MASTER_NOT_FOUND", "Master not found")
		case errors.Is(err, ErrSlotTaken):
			response.Error(c, http.StatusConflict, "SLOT_TAKEN", "This time is already booked, pick another one")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create appointment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"appointment": a})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	userID := c.GetInt64("user_id")
	appointments, err := h.service.ListAppointments(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list appointments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointments": appointments})
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment id")
		return
	}

	userID := c.GetInt64("user_id")
	if err := h.service.CancelAppointment(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment id")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel appointment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Appointment cancelled"})
}
