// Package main provides the course planner API server entry point.
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bucourseplanner/backend-go/internal/api"
	"github.com/bucourseplanner/backend-go/internal/buildinfo"
	"github.com/bucourseplanner/backend-go/internal/catalog"
	"github.com/bucourseplanner/backend-go/internal/config"
	"github.com/bucourseplanner/backend-go/internal/professors"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, handler *api.Handler, courses *catalog.Loader, directory *professors.Directory, registry *prometheus.Registry, cfg *config.Config) {
	// Root endpoint - API banner
	rootHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "BU Course Planner API",
			"status":  "running",
			"version": buildinfo.Version,
		})
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Liveness probe - only checks that the process is serving
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness probe - verifies the backing datasets are loadable
	readyHandler := func(c *gin.Context) {
		courseCount := len(courses.Load())
		professorCount := len(directory.All())

		if courseCount == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": "course dataset is empty",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
			"data": gin.H{
				"courses":    courseCount,
				"professors": professorCount,
			},
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Course catalog
	router.GET("/api/courses/", handler.ListCourses)
	router.GET("/api/courses/search/", handler.SearchCourses)
	router.GET("/api/courses/:id", handler.GetCourse)
	router.GET("/api/departments/", handler.ListDepartments)
	router.GET("/api/subjects/", handler.ListSubjects)

	// Professor directory and research data
	router.GET("/api/professors/", handler.ListProfessors)
	router.POST("/api/professors/cold-email", handler.ColdEmail)
	router.GET("/api/professors/:name", handler.GetProfessor)

	// AI endpoints
	router.POST("/api/ai-advisor/", handler.CareerAdvisor)
	router.POST("/api/gemini/", handler.Generate)
	router.GET("/api/ai/models", handler.ListModels)
	router.POST("/api/chatbot/", handler.Chatbot)

	// Prometheus metrics endpoint, behind Basic Auth when configured
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		authorized := router.Group("/", gin.BasicAuth(gin.Accounts{
			cfg.MetricsUsername: cfg.MetricsPassword,
		}))
		authorized.GET("/metrics", metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}
}
