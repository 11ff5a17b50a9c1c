package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bucourseplanner/backend-go/internal/genai"
)

// careerAdvisorCourseLimit caps how many catalog entries are inlined
// into the advisor prompt.
const careerAdvisorCourseLimit = 20

type careerAdvisorRequest struct {
	CareerGoal string `json:"career_goal"`
	Major      string `json:"major"`
}

// CareerAdvisor handles POST /api/ai-advisor/.
// Maps a career goal to recommended catalog courses via the LLM and
// returns the model's structured JSON analysis.
func (h *Handler) CareerAdvisor(c *gin.Context) {
	var req careerAdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CareerGoal == "" {
		respondDetail(c, http.StatusBadRequest, "Career goal is required")
		return
	}
	if req.Major == "" {
		req.Major = "Computer Science"
	}

	if !h.aiEnabled() {
		respondDetail(c, http.StatusBadRequest, "GOOGLE_API_KEY not set in environment")
		return
	}
	if !h.allowAI(c) {
		return
	}

	courses := h.courses.Load()
	limit := min(len(courses), careerAdvisorCourseLimit)
	courseLines := make([]string, 0, limit)
	for _, course := range courses[:limit] {
		courseLines = append(courseLines, fmt.Sprintf("- %s: %s", course.String("code"), course.String("title")))
	}

	prompt := genai.CareerAdvisorPrompt(req.CareerGoal, req.Major, courseLines)

	result, err := h.generator.Generate(c.Request.Context(), prompt, "")
	if err != nil {
		h.logger.WithError(err).Warn("Career advisor generation failed")
		respondDetail(c, http.StatusBadGateway, "Failed to generate recommendations. Please try again.")
		return
	}

	parsed, ok := genai.ExtractJSON(result.Text)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"error":        "Could not parse AI response",
			"raw_response": result.Text,
		})
		return
	}

	c.JSON(http.StatusOK, parsed)
}
