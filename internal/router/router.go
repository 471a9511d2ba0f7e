package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bibleplan/backend/internal/handler"
	"bibleplan/backend/internal/middleware"
	"bibleplan/backend/internal/service"
)

func New(
	authService *service.AuthService,
	authHandler *handler.AuthHandler,
	planHandler *handler.PlanHandler,
	corsOrigins []string,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	planRoutes := api.Group("/plan")
	planRoutes.Use(middleware.Auth(authService))
	planRoutes.GET("", planHandler.Get)
	planRoutes.POST("", planHandler.Create)
	planRoutes.POST("/markread", planHandler.MarkRead)
	planRoutes.POST("/revert", planHandler.Revert)
	planRoutes.POST("/pause", planHandler.Pause)
	planRoutes.POST("/resume", planHandler.Resume)
	planRoutes.DELETE("", planHandler.Delete)

	return engine
}
