package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"museum-api/internal/app"
	"museum-api/internal/model"
	"museum-api/internal/transport/http/response"
)

const ContextUserKey = "current_user"

func RequireActiveUser(gate *app.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := gate.RequireActiveUser(c.Request.Context(), bearerToken(c))
		if err != nil {
			response.FromError(c, err)
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func RequireAdmin(gate *app.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := gate.RequireAdmin(c.Request.Context(), bearerToken(c))
		if err != nil {
			response.FromError(c, err)
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by one of the gates, or nil on public routes.
func CurrentUser(c *gin.Context) *model.User {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*model.User)
	return user
}

// bearerToken returns an empty string unless the header uses the Bearer scheme.
func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
