package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"museum-api/internal/app"
)

// FromError aborts the request with the status and code bound to err.
// Errors outside the app sentinels are recorded on the context and hidden
// behind a generic 500.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		Error(c, http.StatusBadRequest, CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrEmailExists):
		Error(c, http.StatusBadRequest, CodeEmailExists, err.Error())
	case errors.Is(err, app.ErrUsernameExists):
		Error(c, http.StatusBadRequest, CodeUsernameExists, err.Error())
	case errors.Is(err, app.ErrInactiveUser):
		Error(c, http.StatusBadRequest, CodeInactiveUser, err.Error())
	case errors.Is(err, app.ErrInvalidCredentials):
		unauthorized(c, CodeInvalidCredentials, err.Error())
	case errors.Is(err, app.ErrUnauthenticated):
		unauthorized(c, CodeUnauthorized, app.ErrUnauthenticated.Error())
	case errors.Is(err, app.ErrSubjectNotFound):
		unauthorized(c, CodeUnauthorized, err.Error())
	case errors.Is(err, app.ErrForbidden):
		Error(c, http.StatusForbidden, CodeForbidden, err.Error())
	case errors.Is(err, app.ErrUserNotFound):
		Error(c, http.StatusNotFound, CodeUserNotFound, err.Error())
	case errors.Is(err, app.ErrNewsNotFound):
		Error(c, http.StatusNotFound, CodeNewsNotFound, err.Error())
	default:
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, CodeInternalServer, "internal server error")
	}
}

func unauthorized(c *gin.Context, code int, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	Error(c, http.StatusUnauthorized, code, message)
}
