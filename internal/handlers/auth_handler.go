package handlers

import (
	"net/http"

	"pos_api/internal/models"
	"pos_api/internal/services"
	"pos_api/internal/utils"
	"pos_api/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService        services.UserService
	jwtSecret          string
	jwtExpirationHours int
}

func NewAuthHandler(userService services.UserService, jwtSecret string, jwtExpirationHours int) *AuthHandler {
	return &AuthHandler{
		userService:        userService,
		jwtSecret:          jwtSecret,
		jwtExpirationHours: jwtExpirationHours,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(user, h.jwtSecret, h.jwtExpirationHours)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Register creates a staff account. Admin-gated by the route's capability.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid registration payload")
		return
	}

	user := &models.User{
		Username: req.Username,
		FullName: req.FullName,
		Role:     req.Role,
		IsActive: true,
	}
	if err := h.userService.CreateUser(user, req.Password); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}
