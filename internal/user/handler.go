package user

import (
	"errors"
	"net/http"

	"github.com/JaeMinBird/Courtly/internal/api"
	"github.com/JaeMinBird/Courtly/internal/auth"
	"github.com/JaeMinBird/Courtly/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Auth godoc
// @Summary      Authenticate
// @Description  Multiplexes signup, signin and signout through a single action field.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      AuthRequest  true  "Credentials and action"
// @Success      200      {object}  AuthResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/auth [post]
func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Errorf("Auth error: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case "signup":
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email and password are required"})
			return
		}

		user, err := h.service.SignUp(ctx, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrEmailExists) {
				c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email already registered"})
				return
			}
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Message: "Signup successful! Check your email for confirmation.",
			User:    user,
		})

	case "signin":
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email and password are required"})
			return
		}

		user, session, err := h.service.SignIn(ctx, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid email or password"})
				return
			}
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Message: "Login successful!",
			User:    user,
			Session: session,
		})

	case "signout":
		token, _ := auth.BearerToken(c)
		if err := h.service.SignOut(ctx, token); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{Message: "Logout successful!"})

	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid action"})
	}
}

// GetMe godoc
// @Summary      Get current user
// @Description  Returns profile of the authenticated user.
// @Tags         user
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  User
// @Failure      401  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
