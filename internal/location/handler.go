package location

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

// ListLocations godoc
// @Summary      List locations
// @Tags         locations
// @Produce      json
// @Success      200 {array} Location
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/locations [get]
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.service.GetAllLocations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// CreateLocation godoc
// @Summary      Create a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        request body CreateLocationRequest true "Location payload"
// @Success      201 {object} Location
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/locations [post]
func (h *Handler) CreateLocation(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error creating location: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	loc, err := h.service.CreateLocation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrRequiredFields) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Name, address, city, and country are required"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, loc)
}

// GetLocation godoc
// @Summary      Get a location by id
// @Tags         locations
// @Produce      json
// @Param        id path string true "Location ID"
// @Success      200 {object} Location
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/locations/{id} [get]
func (h *Handler) GetLocation(c *gin.Context) {
	loc, err := h.service.GetLocationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Location not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, loc)
}

// UpdateLocation godoc
// @Summary      Update a location
// @Description  Partial update; omitted fields are left unchanged.
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        id path string true "Location ID"
// @Param        request body UpdateLocationRequest true "Fields to update"
// @Success      200 {object} Location
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/locations/{id} [put]
func (h *Handler) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error updating location: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	loc, err := h.service.UpdateLocation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Location not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, loc)
}

// DeleteLocation godoc
// @Summary      Delete a location
// @Tags         locations
// @Produce      json
// @Param        id path string true "Location ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/locations/{id} [delete]
func (h *Handler) DeleteLocation(c *gin.Context) {
	if err := h.service.DeleteLocation(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Location deleted successfully"})
}
