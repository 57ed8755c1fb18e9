package http

import (
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"museum-api/internal/bootstrap"
	"museum-api/internal/transport/http/handler"
	"museum-api/internal/transport/http/middleware"
	"museum-api/internal/transport/http/response"
)

func NewRouter(app *bootstrap.App) (nethttp.Handler, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(app.Logger), gin.Recovery())
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, nethttp.StatusNotFound, response.CodeRouteNotFound, "route not found")
	})

	var pinger handler.Pinger
	if app.SQL != nil {
		pinger = app.SQL
	}
	healthHandler := handler.NewHealthHandler(app.Config.App.Name, app.Config.App.Env, app.StartedAt, pinger)
	router.GET("/", healthHandler.Welcome)
	router.GET("/health", healthHandler.Check)

	authHandler := handler.NewAuthHandler(app.Auth)
	userHandler := handler.NewUserHandler(app.Users)
	newsHandler := handler.NewNewsHandler(app.News)

	activeUser := middleware.RequireActiveUser(app.Gate)
	admin := middleware.RequireAdmin(app.Gate)

	v1 := router.Group("/api/v1")
	authGroup := v1.Group("/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", activeUser, authHandler.Me)
	authGroup.POST("/logout", activeUser, authHandler.Logout)

	userGroup := v1.Group("/users")
	userGroup.GET("", admin, userHandler.List)
	userGroup.POST("", admin, userHandler.Create)
	userGroup.GET("/:id", activeUser, userHandler.Get)
	userGroup.PUT("/:id", activeUser, userHandler.Update)
	userGroup.DELETE("/:id", admin, userHandler.Delete)

	newsGroup := v1.Group("/news")
	newsGroup.GET("", newsHandler.List)
	newsGroup.GET("/:id", newsHandler.Get)
	newsGroup.POST("", admin, newsHandler.Create)
	newsGroup.PUT("/:id", admin, newsHandler.Update)
	newsGroup.DELETE("/:id", admin, newsHandler.Delete)

	return withCORS(router, app.Config.CORS.AllowedOrigins), nil
}

func withCORS(next nethttp.Handler, origins []string) nethttp.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders:   []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return fmt.Errorf("register notblank validator failed: %w", err)
	}
	return nil
}
