package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/classifieds-board/backend/internal/model"
	"github.com/classifieds-board/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
)

const (
	authUserKey     = "auth_user"
	loggerKey       = "logger"
	requestIDHeader = "X-Request-ID"
)

// AuthMiddleware rejects the request with 401 unless the Authorization
// header carries a valid access token for an existing user.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

func GetAuthUser(c *gin.Context) *model.User {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.User); ok {
			return user
		}
	}
	return nil
}

// RequestLogger tags each request with an id and logs its outcome. The
// query string is left out so tokens passed there never reach the log.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		reqLog := log.With("request_id", requestID)
		c.Set(loggerKey, reqLog)

		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		reqLog.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

func requestLogger(c *gin.Context) *slog.Logger {
	if value, ok := c.Get(loggerKey); ok {
		if log, ok := value.(*slog.Logger); ok {
			return log
		}
	}
	return slog.Default()
}

// RateLimitMiddleware limits requests per client IP. Each call creates an
// independent limiter, so it is applied per route.
func RateLimitMiddleware(requestLimit int, window time.Duration) gin.HandlerFunc {
	limit := httprate.Limit(requestLimit, window, httprate.WithKeyFuncs(httprate.KeyByIP))

	return func(c *gin.Context) {
		allowed := false
		limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed = true
		})).ServeHTTP(c.Writer, c.Request)

		if !allowed {
			c.Abort()
			return
		}
		c.Next()
	}
}

func CORSMiddleware(allowedOrigins []string, allowCredentials bool) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if allowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
