package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeOK                 = 0
	CodeBadRequest         = 40000
	CodeEmailExists        = 40001
	CodeUsernameExists     = 40002
	CodeInactiveUser       = 40003
	CodeUnauthorized       = 40100
	CodeInvalidCredentials = 40101
	CodeForbidden          = 40300
	CodeUserNotFound       = 40401
	CodeNewsNotFound       = 40402
	CodeRouteNotFound      = 40400
	CodeInternalServer     = 50000
	CodeUnavailable        = 50300
)

type APIResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Code:    CodeOK,
		Message: "ok",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Code:    CodeOK,
		Message: "created",
		Data:    data,
	})
}

// Message answers 200 with a human readable message and no payload.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Code:    CodeOK,
		Message: message,
	})
}

func Error(c *gin.Context, httpStatus, code int, message string) {
	c.AbortWithStatusJSON(httpStatus, APIResponse{
		Code:    code,
		Message: message,
	})
}
