package handlers

import (
	"net/http"
	"strconv"

	"pos_api/internal/services"
	"pos_api/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

type userUpdateRequest struct {
	FullName string `json:"full_name"`
	Role     string `json:"role" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userService.GetUserByID(uint(id))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "user not found")
		return
	}

	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid user payload")
		return
	}

	user.FullName = req.FullName
	user.Role = req.Role
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.userService.UpdateUser(user); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if _, err := h.userService.GetUserByID(uint(id)); err != nil {
		response.Fail(c, http.StatusNotFound, "user not found")
		return
	}

	if err := h.userService.DeleteUser(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
