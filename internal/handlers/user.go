package handlers

import (
	"github.com/mitchell1972/examCoachNG/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type RegisterUserRequest struct {
	Phone            string   `json:"phone"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	SelectedSubjects []string `json:"selectedSubjects"`
}

// RegisterUser godoc
// @Summary      Register a learner by phone number
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterUserRequest true "Profile"
// @Success      200 {object} Response{data=models.User}
// @Failure      400 {object} Response
// @Failure      409 {object} Response
// @Router       /api/users/register [post]
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := h.userService.Register(services.RegisterUserParams{
		Phone:            req.Phone,
		Name:             req.Name,
		Email:            req.Email,
		SelectedSubjects: req.SelectedSubjects,
	})
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}
	respondOK(c, user)
}

// GetUserByPhone godoc
// @Summary      Look up a learner by phone number
// @Tags         users
// @Produce      json
// @Param        phone path string true "Phone number"
// @Success      200 {object} Response{data=models.User}
// @Failure      404 {object} Response
// @Router       /api/users/by-phone/{phone} [get]
func (h *UserHandler) GetUserByPhone(c *gin.Context) {
	user, err := h.userService.ByPhone(c.Param("phone"))
	if err != nil {
		respondError(c, err, "Failed to fetch user")
		return
	}
	respondOK(c, user)
}
