package handler

import (
	"log/slog"
	"time"

	"github.com/classifieds-board/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Auth  *service.AuthService
	Users *service.UserService
	Ads   *service.AdService
}

type RouterConfig struct {
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
}

func NewRouter(log *slog.Logger, svcs Services, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), CORSMiddleware(cfg.AllowedOrigins, true))

	authHandler := NewAuthHandler(svcs.Auth)
	userHandler := NewUserHandler(svcs.Users)
	adHandler := NewAdHandler(svcs.Ads)

	router.GET("/", Root)
	router.GET("/ping", Ping)
	router.GET("/openapi.json", OpenAPIDoc)

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", RateLimitMiddleware(cfg.RateLimit, cfg.RateWindow), authHandler.Register)
	auth.POST("/login", RateLimitMiddleware(cfg.RateLimit, cfg.RateWindow), authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)
	api.GET("/users/:id/ads", adHandler.ListUserAds)
	api.GET("/ads", adHandler.ListAds)
	api.GET("/ads/:id", adHandler.GetAd)

	protected := api.Group("", AuthMiddleware(svcs.Auth))
	protected.GET("/me", userHandler.Me)
	protected.PUT("/me", userHandler.UpdateMe)
	protected.DELETE("/me", userHandler.DeleteMe)
	protected.POST("/ads", adHandler.CreateAd)
	protected.PUT("/ads/:id", adHandler.UpdateAd)
	protected.DELETE("/ads/:id", adHandler.DeleteAd)

	return router
}
