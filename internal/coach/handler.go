package coach

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

// ListCoaches godoc
// @Summary      List coach profiles
// @Tags         coaches
// @Produce      json
// @Success      200 {array} CoachProfile
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/coaches [get]
func (h *Handler) ListCoaches(c *gin.Context) {
	coaches, err := h.service.GetAllCoaches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, coaches)
}

// CreateCoach godoc
// @Summary      Create a coach profile
// @Tags         coaches
// @Accept       json
// @Produce      json
// @Param        request body CreateCoachRequest true "Coach payload"
// @Success      201 {object} CoachProfile
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/coaches [post]
func (h *Handler) CreateCoach(c *gin.Context) {
	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error creating coach: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	profile, err := h.service.CreateCoach(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetCoach godoc
// @Summary      Get a coach profile by id
// @Tags         coaches
// @Produce      json
// @Param        id path string true "Coach ID"
// @Success      200 {object} CoachProfile
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/coaches/{id} [get]
func (h *Handler) GetCoach(c *gin.Context) {
	profile, err := h.service.GetCoachByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Coach not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateCoach godoc
// @Summary      Update a coach profile
// @Tags         coaches
// @Accept       json
// @Produce      json
// @Param        id path string true "Coach ID"
// @Param        request body UpdateCoachRequest true "Fields to update"
// @Success      200 {object} CoachProfile
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/coaches/{id} [put]
func (h *Handler) UpdateCoach(c *gin.Context) {
	var req UpdateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error updating coach: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	profile, err := h.service.UpdateCoach(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Coach not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteCoach godoc
// @Summary      Delete a coach profile
// @Tags         coaches
// @Produce      json
// @Param        id path string true "Coach ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/coaches/{id} [delete]
func (h *Handler) DeleteCoach(c *gin.Context) {
	if err := h.service.DeleteCoach(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Coach deleted successfully"})
}

// ListAvailability godoc
// @Summary      List a coach's weekly availability
// @Tags         coaches
// @Produce      json
// @Param        id path string true "Coach ID"
// @Success      200 {array} CoachAvailability
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/coaches/{id}/availability [get]
func (h *Handler) ListAvailability(c *gin.Context) {
	slots, err := h.service.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Coach not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// CreateAvailability godoc
// @Summary      Add a weekly availability slot
// @Tags         coaches
// @Accept       json
// @Produce      json
// @Param        id path string true "Coach ID"
// @Param        request body CreateAvailabilityRequest true "Availability payload"
// @Success      201 {object} CoachAvailability
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/coaches/{id}/availability [post]
func (h *Handler) CreateAvailability(c *gin.Context) {
	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error creating availability: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	slot, err := h.service.AddAvailability(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCoachNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Coach not found"})
		case errors.Is(err, ErrInvalidTimeOfDay), errors.Is(err, ErrAvailabilityWindow):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// DeleteAvailability godoc
// @Summary      Remove an availability slot
// @Tags         coaches
// @Produce      json
// @Param        id path string true "Availability ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/availability/{id} [delete]
func (h *Handler) DeleteAvailability(c *gin.Context) {
	if err := h.service.RemoveAvailability(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Availability deleted successfully"})
}
