// Package api provides the HTTP handlers for the course planner backend.
// Handlers load data on demand, call out to the LLM and OpenAlex clients,
// and translate internal errors into `{"detail": ...}` JSON responses.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bucourseplanner/backend-go/internal/catalog"
	apperrors "github.com/bucourseplanner/backend-go/internal/errors"
	"github.com/bucourseplanner/backend-go/internal/genai"
	"github.com/bucourseplanner/backend-go/internal/logger"
	"github.com/bucourseplanner/backend-go/internal/metrics"
	"github.com/bucourseplanner/backend-go/internal/openalex"
	"github.com/bucourseplanner/backend-go/internal/professors"
	"github.com/bucourseplanner/backend-go/internal/ratelimit"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	courses    *catalog.Loader
	professors *professors.Directory
	openalex   *openalex.Client
	generator  genai.Generator
	aiLimiter  *ratelimit.KeyedLimiter
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// Options configures a Handler.
type Options struct {
	Courses    *catalog.Loader
	Professors *professors.Directory
	OpenAlex   *openalex.Client
	Generator  genai.Generator
	AILimiter  *ratelimit.KeyedLimiter
	Metrics    *metrics.Metrics
	Logger     *logger.Logger
}

// NewHandler creates the handler set.
func NewHandler(opts Options) *Handler {
	return &Handler{
		courses:    opts.Courses,
		professors: opts.Professors,
		openalex:   opts.OpenAlex,
		generator:  opts.Generator,
		aiLimiter:  opts.AILimiter,
		metrics:    opts.Metrics,
		logger:     opts.Logger.WithModule("api"),
	}
}

// respondDetail writes the error body shape the frontend expects.
func respondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// respondError maps internal error kinds to HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		respondDetail(c, http.StatusNotFound, apperrors.UserFacing(err))
	case apperrors.IsInvalidInput(err), apperrors.IsNotConfigured(err):
		respondDetail(c, http.StatusBadRequest, apperrors.UserFacing(err))
	case apperrors.IsRateLimitExceeded(err):
		respondDetail(c, http.StatusTooManyRequests, apperrors.UserFacing(err))
	case apperrors.IsUpstream(err):
		respondDetail(c, http.StatusBadGateway, apperrors.UserFacing(err))
	default:
		h.logger.WithError(err).Error("Unhandled error in request")
		respondDetail(c, http.StatusInternalServerError, "Internal server error")
	}
}

// aiEnabled reports whether any LLM provider is configured.
func (h *Handler) aiEnabled() bool {
	return h.generator != nil && h.generator.IsEnabled()
}

// allowAI applies the per-client rate limit for AI-backed endpoints.
// Returns false after writing the 429 response.
func (h *Handler) allowAI(c *gin.Context) bool {
	if h.aiLimiter == nil {
		return true
	}
	if h.aiLimiter.Allow(c.ClientIP()) {
		return true
	}

	respondDetail(c, http.StatusTooManyRequests,
		"Too many AI requests. Please wait a moment and try again.")
	return false
}
