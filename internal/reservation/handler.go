package reservation

import (
	"errors"
	"net/http"

	"github.com/JaeMinBird/Courtly/internal/api"
	"github.com/JaeMinBird/Courtly/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListReservations godoc
// @Summary      List reservations
// @Description  Optionally filtered by userId and/or courtId.
// @Tags         reservations
// @Produce      json
// @Param        userId  query string false "User ID filter"
// @Param        courtId query string false "Court ID filter"
// @Success      200 {array} Reservation
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/reservations [get]
func (h *Handler) ListReservations(c *gin.Context) {
	filter := ListFilter{
		UserID:  c.Query("userId"),
		CourtID: c.Query("courtId"),
	}

	reservations, err := h.service.GetReservations(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// CreateReservation godoc
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        request body CreateReservationRequest true "Reservation payload"
// @Success      201 {object} Reservation
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/reservations [post]
func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error creating reservation: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	res, err := h.service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRequiredFields):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Court ID, user ID, start time, and end time are required"})
		case errors.Is(err, ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation time range"})
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Status must be confirmed, cancelled, or completed"})
		default:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, res)
}

// GetReservation godoc
// @Summary      Get a reservation by id
// @Tags         reservations
// @Produce      json
// @Param        id path string true "Reservation ID"
// @Success      200 {object} Reservation
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/reservations/{id} [get]
func (h *Handler) GetReservation(c *gin.Context) {
	res, err := h.service.GetReservationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Reservation not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// UpdateReservation godoc
// @Summary      Update a reservation
// @Description  Partial update; cancellation is a status update, not a delete.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id path string true "Reservation ID"
// @Param        request body UpdateReservationRequest true "Fields to update"
// @Success      200 {object} Reservation
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/reservations/{id} [put]
func (h *Handler) UpdateReservation(c *gin.Context) {
	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error updating reservation: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	res, err := h.service.UpdateReservation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Reservation not found"})
		case errors.Is(err, ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation time range"})
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Status must be confirmed, cancelled, or completed"})
		default:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, res)
}

// DeleteReservation godoc
// @Summary      Delete a reservation
// @Description  Hard delete. Cancelling should normally go through PUT with status=cancelled.
// @Tags         reservations
// @Produce      json
// @Param        id path string true "Reservation ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/reservations/{id} [delete]
func (h *Handler) DeleteReservation(c *gin.Context) {
	if err := h.service.DeleteReservation(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Reservation deleted successfully"})
}
