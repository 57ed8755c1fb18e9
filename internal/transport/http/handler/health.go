package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"museum-api/internal/transport/http/response"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	name      string
	env       string
	startedAt time.Time
	db        Pinger
}

type dependencyStatus struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func NewHealthHandler(name, env string, startedAt time.Time, db Pinger) *HealthHandler {
	return &HealthHandler{name: name, env: env, startedAt: startedAt, db: db}
}

func (h *HealthHandler) Welcome(c *gin.Context) {
	response.Message(c, "Bem-vindo à API do Museu da Computação")
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := h.checkDatabase(ctx)
	status, code, message := http.StatusOK, response.CodeOK, "healthy"
	if !dbStatus.OK {
		status, code, message = http.StatusServiceUnavailable, response.CodeUnavailable, "unhealthy"
	}

	c.JSON(status, response.APIResponse{
		Code:    code,
		Message: message,
		Data: gin.H{
			"app":        h.name,
			"env":        h.env,
			"uptime_sec": int(time.Since(h.startedAt).Seconds()),
			"dependencies": gin.H{
				"database": dbStatus,
			},
		},
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) dependencyStatus {
	if h.db == nil {
		return dependencyStatus{OK: false, Message: "not configured"}
	}
	if err := h.db.PingContext(ctx); err != nil {
		return dependencyStatus{OK: false, Message: err.Error()}
	}
	return dependencyStatus{OK: true}
}
