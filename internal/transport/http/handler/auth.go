package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"museum-api/internal/app"
	"museum-api/internal/transport/http/middleware"
	"museum-api/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

// LoginRequest accepts either a form post or a JSON body. Username may hold an email.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required,notblank,max=128"`
	Password string `form:"password" json:"password" binding:"required,max=128"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Login:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, TokenResponse{
		AccessToken: result.Token,
		TokenType:   result.TokenType,
		ExpiresIn:   int64(time.Until(result.ExpiresAt).Round(time.Second).Seconds()),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	response.OK(c, middleware.CurrentUser(c))
}

// Logout only acknowledges the request. Tokens stay valid until they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Message(c, "Successfully logged out")
}
