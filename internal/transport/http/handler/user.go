package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"museum-api/internal/app"
	"museum-api/internal/transport/http/middleware"
	"museum-api/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email,max=128"`
	Username string  `json:"username" binding:"required,notblank,max=64"`
	FullName *string `json:"full_name" binding:"omitempty,max=128"`
	Password string  `json:"password" binding:"required,notblank,max=128"`
	IsAdmin  bool    `json:"is_admin"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email,max=128"`
	FullName *string `json:"full_name" binding:"omitempty,max=128"`
	Password *string `json:"password" binding:"omitempty,notblank,max=128"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  *bool   `json:"is_admin"`
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	var query PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid query parameters")
		return
	}

	users, err := h.userService.List(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	user, err := h.userService.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.userService.Create(c.Request.Context(), app.CreateUserInput{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.userService.Update(c.Request.Context(), middleware.CurrentUser(c), id, app.UpdateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		IsActive: req.IsActive,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, "User deleted successfully")
}
