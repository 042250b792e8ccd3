package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"oneplace/translation/internal/logger"
)

// RequestLoggerMiddleware logs HTTP requests through the process logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			result := "ok"
			if res.Status >= 400 {
				result = "failed"
			}

			logFn := logger.Debug
			switch {
			case res.Status >= 500:
				logFn = logger.Error
			case res.Status >= 400:
				logFn = logger.Warn
			}
			logFn("http request",
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			)
			return nil
		}
	}
}

// RateLimitMiddleware applies a token-bucket limit per client IP.
func RateLimitMiddleware(perSecond rate.Limit, burst int) echo.MiddlewareFunc {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(perSecond, burst)
			limiters[ip] = l
		}
		return l
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiterFor(c.RealIP()).Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"state":   "error",
					"message": "too many requests",
				})
			}
			return next(c)
		}
	}
}
