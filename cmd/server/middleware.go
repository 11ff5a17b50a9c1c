// Package main provides the course planner API server entry point.
package main

import (
	"strconv"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bucourseplanner/backend-go/internal/config"
	"github.com/bucourseplanner/backend-go/internal/ctxutil"
	"github.com/bucourseplanner/backend-go/internal/logger"
	"github.com/bucourseplanner/backend-go/internal/metrics"
)

// securityHeadersMiddleware adds security headers to all responses
// Reference: https://gin-gonic.com/en/docs/examples/security-headers
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")
		// Prevent clickjacking
		c.Header("X-Frame-Options", "DENY")
		// Enable XSS filter in browsers
		c.Header("X-XSS-Protection", "1; mode=block")
		// Strict referrer policy
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		// Restrict permissions
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Next()
	}
}

// requestIDMiddleware assigns each request an ID for log correlation.
// An incoming X-Request-ID is honored so upstream proxies can trace calls.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Request = c.Request.WithContext(ctxutil.WithRequestID(c.Request.Context(), requestID))
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// corsMiddleware allows the frontend to call the API from another origin.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}

	return cors.New(corsConfig)
}

// sentryMiddleware reports panics and attaches request context to events.
func sentryMiddleware() gin.HandlerFunc {
	// Repanic lets gin.Recovery() handle the response after capture.
	return sentrygin.New(sentrygin.Options{Repanic: true})
}

// loggingMiddleware logs HTTP requests and records request metrics
func loggingMiddleware(log *logger.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// Process request
		c.Next()

		// Log request
		duration := time.Since(start)
		status := c.Writer.Status()

		// FullPath gives the route pattern, keeping metric cardinality
		// bounded; unmatched requests fall back to the raw path.
		route := c.FullPath()
		if route == "" {
			route = path
		}
		m.RecordHTTPRequest(method, route, strconv.Itoa(status), duration.Seconds())

		entry := log.WithField("method", method).
			WithField("path", path).
			WithField("status", status).
			WithField("duration_ms", duration.Milliseconds()).
			WithField("ip", c.ClientIP())
		if requestID, ok := ctxutil.GetRequestID(c.Request.Context()); ok {
			entry = entry.WithRequestID(requestID)
		}

		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Error("Request completed with errors")
		} else {
			switch {
			case status >= 500:
				entry.Error("Request failed")
			case status >= 400:
				entry.Warn("Request completed with client error")
			default:
				entry.Debug("Request completed")
			}
		}
	}
}
