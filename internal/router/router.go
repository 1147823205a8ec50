package router

import (
	"context"
	"net/http"
	"time"

	"github.com/sneaker-store/internal/config"
	publichandlers "github.com/sneaker-store/internal/http/handlers/public"
	handlershared "github.com/sneaker-store/internal/http/handlers/shared"
	"github.com/sneaker-store/internal/http/response"
	"github.com/sneaker-store/internal/logger"
	"github.com/sneaker-store/internal/provider"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	r := gin.New()

	publicHandler := publichandlers.New(c)
	loginRule := RateLimitRule{
		Prefix:        c.Cache.Key("rate:login"),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.too_many_requests",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(logger.Z()))
	r.Use(CORSMiddleware(cfg.CORS))

	r.NoRoute(func(ctx *gin.Context) {
		handlershared.RespondError(ctx, response.CodeNotFound, "error.not_found", nil)
	})

	r.GET("/health", healthHandler(c))

	auth := r.Group("/auth")
	{
		auth.POST("/register", publicHandler.UserRegister)
		auth.POST("/login", RateLimitMiddleware(c.Cache.Client(), loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
	}
	authed := r.Group("/auth")
	authed.Use(UserAuthMiddleware(c.UserAuthService))
	{
		authed.GET("/profile", publicHandler.GetProfile)
		authed.PUT("/profile", publicHandler.UpdateProfile)
	}

	catalog := r.Group("/catalog")
	{
		catalog.GET("", publicHandler.ListCatalog)
		catalog.GET("/:id", publicHandler.GetCatalogItem)
	}

	basket := r.Group("/basket")
	basket.Use(UserAuthMiddleware(c.UserAuthService))
	{
		basket.GET("", publicHandler.GetBasket)
		basket.POST("", publicHandler.AddBasketItem)
		basket.DELETE("", publicHandler.ClearBasket)
		basket.PUT("/:id", publicHandler.UpdateBasketItem)
		basket.DELETE("/:id", publicHandler.RemoveBasketItem)
	}

	return r
}

// healthHandler 存活检查，数据库不可达时返回 503
func healthHandler(c *provider.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
		defer cancel()

		if c.DB != nil {
			sqlDB, err := c.DB.DB()
			if err == nil {
				err = sqlDB.PingContext(reqCtx)
			}
			if err != nil {
				logger.Warnw("health_database_unreachable", "error", err)
				response.Error(ctx, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		if err := c.Cache.Ping(reqCtx); err != nil {
			logger.Warnw("health_redis_unreachable", "error", err)
		}
		response.Success(ctx, gin.H{"status": "ok"})
	}
}
