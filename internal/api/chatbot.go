package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bucourseplanner/backend-go/internal/genai"
)

type chatbotRequest struct {
	Message string              `json:"message"`
	History []genai.ChatMessage `json:"history"`
}

// Chatbot handles POST /api/chatbot/.
// Answers site-navigation and planning questions with the LLM; when no
// provider is configured or generation fails, a deterministic rule-based
// reply is returned with model set to "fallback".
func (h *Handler) Chatbot(c *gin.Context) {
	var req chatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		respondDetail(c, http.StatusBadRequest, "Message is required")
		return
	}

	if h.aiEnabled() && h.allowChatbot(c) {
		prompt := genai.ChatbotPrompt(req.Message, req.History, len(h.courses.Load()))
		result, err := h.generator.Generate(c.Request.Context(), prompt, "")
		if err == nil {
			c.JSON(http.StatusOK, gin.H{
				"response": result.Text,
				"model":    result.Model,
				"message":  req.Message,
			})
			return
		}
		h.logger.WithError(err).Warn("Chatbot generation failed, using rule-based reply")
	}

	c.JSON(http.StatusOK, gin.H{
		"response": fallbackReply(req.Message),
		"model":    "fallback",
		"message":  req.Message,
	})
}

// allowChatbot applies the AI rate limit without writing a 429: a limited
// chatbot request degrades to the rule-based reply instead of failing.
func (h *Handler) allowChatbot(c *gin.Context) bool {
	if h.aiLimiter == nil {
		return true
	}
	return h.aiLimiter.Allow(c.ClientIP())
}

// fallbackReply picks a canned answer by keyword containment.
// Rules are checked in order and the first match wins.
func fallbackReply(message string) string {
	m := strings.ToLower(message)

	contains := func(keywords ...string) bool {
		for _, k := range keywords {
			if strings.Contains(m, k) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("find", "search", "where") && contains("course"):
		return "To find courses, go to the Explorer page from the top navigation bar. " +
			"You can search by name, code, or keywords, and filter by department or level. " +
			"Click any course card to see full details."
	case contains("plan") && contains("semester", "schedule"):
		return "To plan your semester, go to the Planner page. Click 'Add Semester' to create " +
			"a semester board, then drag courses from the catalog sidebar onto it. " +
			"Prerequisites are validated automatically."
	case contains("career", "recommendation"):
		return "For career-based course recommendations, go to the Progress page. " +
			"You can browse preset career paths or enter any custom career goal, " +
			"then click 'Get Recommendations' for an AI analysis with skill coverage."
	case contains("professor", "faculty"):
		return "To research professors, go to the Professors page. You can filter by " +
			"department and click a professor's name to see their publications, " +
			"research areas, and collaborators from OpenAlex."
	case contains("export", "pdf"):
		return "To export your plan, go to the Planner page and click the " +
			"'Export to PDF' button. Your semester plan will download as a PDF."
	case contains("navigate", "use", "how", "help", "guide"):
		return "The site has 5 main sections in the top navigation bar: Home, Explorer " +
			"(browse and search courses), Planner (drag-and-drop semester planning), " +
			"Progress (AI career advisor), and Professors (faculty research). " +
			"Ask me about any of them."
	default:
		return "I can help you find courses, plan your semester, get career recommendations, " +
			"or research professors. What would you like to do?"
	}
}
