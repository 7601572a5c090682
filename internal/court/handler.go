package court

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

// ListCourts godoc
// @Summary      List courts
// @Description  Optionally filtered by locationId.
// @Tags         courts
// @Produce      json
// @Param        locationId query string false "Location ID filter"
// @Success      200 {array} Court
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/courts [get]
func (h *Handler) ListCourts(c *gin.Context) {
	courts, err := h.service.GetAllCourts(c.Request.Context(), c.Query("locationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, courts)
}

// CreateCourt godoc
// @Summary      Create a court
// @Tags         courts
// @Accept       json
// @Produce      json
// @Param        request body CreateCourtRequest true "Court payload"
// @Success      201 {object} Court
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/courts [post]
func (h *Handler) CreateCourt(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error creating court: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	court, err := h.service.CreateCourt(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRequiredFields):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Location ID, name, and sport are required"})
		case errors.Is(err, ErrInvalidSport):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Sport must be tennis, pickleball, or squash"})
		default:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, court)
}

// GetCourt godoc
// @Summary      Get a court by id
// @Tags         courts
// @Produce      json
// @Param        id path string true "Court ID"
// @Success      200 {object} Court
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/courts/{id} [get]
func (h *Handler) GetCourt(c *gin.Context) {
	court, err := h.service.GetCourtByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Court not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, court)
}

// UpdateCourt godoc
// @Summary      Update a court
// @Tags         courts
// @Accept       json
// @Produce      json
// @Param        id path string true "Court ID"
// @Param        request body UpdateCourtRequest true "Fields to update"
// @Success      200 {object} Court
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/courts/{id} [put]
func (h *Handler) UpdateCourt(c *gin.Context) {
	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error updating court: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	court, err := h.service.UpdateCourt(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCourtNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Court not found"})
		case errors.Is(err, ErrInvalidSport):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Sport must be tennis, pickleball, or squash"})
		default:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, court)
}

// DeleteCourt godoc
// @Summary      Delete a court
// @Tags         courts
// @Produce      json
// @Param        id path string true "Court ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/courts/{id} [delete]
func (h *Handler) DeleteCourt(c *gin.Context) {
	if err := h.service.DeleteCourt(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Court deleted successfully"})
}
