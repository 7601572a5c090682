package lessons

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

// ListPackages godoc
// @Summary      List lesson packages
// @Tags         packages
// @Produce      json
// @Param        active query bool false "Only active packages"
// @Success      200 {array} LessonPackage
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/packages [get]
func (h *Handler) ListPackages(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	packages, err := h.service.GetPackages(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, packages)
}

// CreatePackage godoc
// @Summary      Create a lesson package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        request body CreatePackageRequest true "Package payload"
// @Success      201 {object} LessonPackage
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/packages [post]
func (h *Handler) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error creating package: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	pkg, err := h.service.CreatePackage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// GetPackage godoc
// @Summary      Get a lesson package by id
// @Tags         packages
// @Produce      json
// @Param        id path string true "Package ID"
// @Success      200 {object} LessonPackage
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/packages/{id} [get]
func (h *Handler) GetPackage(c *gin.Context) {
	pkg, err := h.service.GetPackageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Package not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// UpdatePackage godoc
// @Summary      Update a lesson package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        request body UpdatePackageRequest true "Fields to update"
// @Success      200 {object} LessonPackage
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/packages/{id} [put]
func (h *Handler) UpdatePackage(c *gin.Context) {
	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error updating package: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	pkg, err := h.service.UpdatePackage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Package not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// DeletePackage godoc
// @Summary      Delete a lesson package
// @Tags         packages
// @Produce      json
// @Param        id path string true "Package ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/packages/{id} [delete]
func (h *Handler) DeletePackage(c *gin.Context) {
	if err := h.service.DeletePackage(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Package deleted successfully"})
}

// PurchasePackage godoc
// @Summary      Purchase a lesson package for a member
// @Tags         member-packages
// @Accept       json
// @Produce      json
// @Param        request body PurchasePackageRequest true "Purchase payload"
// @Success      201 {object} MemberPackage
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/member-packages [post]
func (h *Handler) PurchasePackage(c *gin.Context) {
	var req PurchasePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error purchasing package: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	mp, err := h.service.PurchasePackage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Package not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, mp)
}

// ListMemberPackages godoc
// @Summary      List a member's purchased packages
// @Tags         member-packages
// @Produce      json
// @Param        memberId query string true "Member ID"
// @Success      200 {array} MemberPackage
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/member-packages [get]
func (h *Handler) ListMemberPackages(c *gin.Context) {
	memberID := c.Query("memberId")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Member ID is required"})
		return
	}

	packages, err := h.service.GetMemberPackages(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, packages)
}

// GetMemberPackage godoc
// @Summary      Get a purchased package by id
// @Tags         member-packages
// @Produce      json
// @Param        id path string true "Member package ID"
// @Success      200 {object} MemberPackage
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/member-packages/{id} [get]
func (h *Handler) GetMemberPackage(c *gin.Context) {
	mp, err := h.service.GetMemberPackageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrMemberPackageNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member package not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, mp)
}

// ListBookings godoc
// @Summary      List lesson bookings
// @Tags         lesson-bookings
// @Produce      json
// @Param        memberId query string false "Filter by member"
// @Param        coachId query string false "Filter by coach"
// @Success      200 {array} LessonBooking
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/lesson-bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	filter := BookingFilter{
		MemberID: c.Query("memberId"),
		CoachID:  c.Query("coachId"),
	}

	bookings, err := h.service.GetBookings(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CreateBooking godoc
// @Summary      Book a lesson with a coach
// @Tags         lesson-bookings
// @Accept       json
// @Produce      json
// @Param        request body CreateLessonBookingRequest true "Booking payload"
// @Success      201 {object} LessonBooking
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/lesson-bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateLessonBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error creating lesson booking: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid lesson time range"})
		case errors.Is(err, ErrPackageExhausted):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Package has no remaining lessons or has expired"})
		default:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBooking godoc
// @Summary      Get a lesson booking by id
// @Tags         lesson-bookings
// @Produce      json
// @Param        id path string true "Booking ID"
// @Success      200 {object} LessonBooking
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/lesson-bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.service.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Lesson booking not found"})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking godoc
// @Summary      Update a lesson booking
// @Tags         lesson-bookings
// @Accept       json
// @Produce      json
// @Param        id path string true "Booking ID"
// @Param        request body UpdateLessonBookingRequest true "Fields to update"
// @Success      200 {object} LessonBooking
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/lesson-bookings/{id} [put]
func (h *Handler) UpdateBooking(c *gin.Context) {
	var req UpdateLessonBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Error updating lesson booking: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	booking, err := h.service.UpdateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Lesson booking not found"})
		case errors.Is(err, ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid lesson time range"})
		default:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking godoc
// @Summary      Delete a lesson booking
// @Tags         lesson-bookings
// @Produce      json
// @Param        id path string true "Booking ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/lesson-bookings/{id} [delete]
func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Lesson booking deleted successfully"})
}
