// Package handlers exposes the simulator over HTTP.
package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RouterConfig holds the HTTP-level settings
type RouterConfig struct {
	PublicDir          string
	RateLimitPerMinute int
}

// NewRouter wires middleware, API routes and static assets
func NewRouter(h *Handler, cfg RouterConfig, log *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// middleware
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))
	e.Use(middleware.CORS())

	e.GET("/api/posts", h.GetPosts)
	e.GET("/api/posts/:id", h.GetPost)
	e.GET("/api/posts-info", h.GetPostsInfo)
	e.GET("/api/slang", h.GetSlang)
	e.GET("/api/emojis", h.GetEmojis)
	e.GET("/api/analytics", h.GetAnalytics)
	e.POST("/api/analytics/reset", h.ResetAnalytics)
	// each route keeps its own quota
	e.POST("/api/generate-comment", h.GenerateComment, rateLimiter(cfg.RateLimitPerMinute))
	e.POST("/api/generate-human-response", h.GenerateHumanResponse, rateLimiter(cfg.RateLimitPerMinute))
	e.POST("/api/vote", h.Vote)
	e.GET("/api/generated", h.GetGenerated)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	if cfg.PublicDir != "" {
		e.Static("/", cfg.PublicDir)
	}

	return e
}

// requestLogger sends echo's access log through logrus
func requestLogger(log *logrus.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
				"remote_ip":  v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("Request failed")
				return nil
			}
			entry.Debug("Request completed")
			return nil
		},
	})
}

// rateLimiter limits each client IP on one route; every call gets its own store
func rateLimiter(perMinute int) echo.MiddlewareFunc {
	limitExceeded := func(ctx echo.Context, identifier string, err error) error {
		return ctx.JSON(http.StatusTooManyRequests, map[string]string{
			"error": "Rate limit exceeded, please try again later",
		})
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(float64(perMinute) / 60.0),
				Burst:     perMinute,
				ExpiresIn: 3 * time.Minute,
			},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			return limitExceeded(ctx, "", err)
		},
		DenyHandler: limitExceeded,
	})
}
