package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bucourseplanner/backend-go/internal/genai"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

// Generate handles POST /api/gemini/.
// Free-form text generation with automatic model and provider fallback.
// The response is always a JSON object: structured model output is
// passed through, anything else is wrapped under "result".
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Prompt == "" {
		respondDetail(c, http.StatusBadRequest, "Prompt is required")
		return
	}

	if !h.aiEnabled() {
		respondDetail(c, http.StatusBadRequest, "GOOGLE_API_KEY not set in environment")
		return
	}
	if !h.allowAI(c) {
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), req.Prompt, req.Model)
	if err != nil {
		h.logger.WithError(err).Warn("Generation failed")
		respondDetail(c, http.StatusBadGateway, "Failed to generate response. Please try again.")
		return
	}

	c.JSON(http.StatusOK, genai.NormalizeReply(result.Text))
}

// ListModels handles GET /api/ai/models.
func (h *Handler) ListModels(c *gin.Context) {
	if !h.aiEnabled() {
		respondDetail(c, http.StatusBadRequest, "GOOGLE_API_KEY not set in environment")
		return
	}

	models, err := h.generator.ListModels(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Warn("Model listing failed")
		respondDetail(c, http.StatusBadGateway, "Failed to list models. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"models": models})
}
