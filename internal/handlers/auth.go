package handlers

import (
	"github.com/mitchell1972/examCoachNG/internal/middleware"
	"github.com/mitchell1972/examCoachNG/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Credentials"
// @Success      201 {object} Response{data=services.AuthResult}
// @Failure      400 {object} Response
// @Failure      409 {object} Response
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.authService.Register(req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}
	respondCreated(c, result)
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} Response{data=services.AuthResult}
// @Failure      401 {object} Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	respondOK(c, result)
}

// Me godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response{data=models.User}
// @Failure      401 {object} Response
// @Failure      404 {object} Response
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		respondBadRequest(c, "authentication required")
		return
	}

	user, err := h.authService.UserByID(*userID)
	if err != nil {
		respondError(c, err, "Failed to fetch user")
		return
	}
	respondOK(c, user)
}
