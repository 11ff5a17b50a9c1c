package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/bucourseplanner/backend-go/internal/genai"
	"github.com/bucourseplanner/backend-go/internal/openalex"
	"github.com/bucourseplanner/backend-go/internal/professors"
)

// ListProfessors handles GET /api/professors/ with an optional department
// filter. "all" (any case) or an empty filter returns the full directory.
func (h *Handler) ListProfessors(c *gin.Context) {
	department := c.Query("department")

	var result []professors.Professor
	if department != "" && !strings.EqualFold(department, "all") {
		result = h.professors.ByDepartment(department)
	} else {
		result = h.professors.All()
	}

	c.JSON(http.StatusOK, gin.H{
		"professors": result,
		"total":      len(result),
	})
}

// GetProfessor handles GET /api/professors/:name.
// Enriches the directory record with OpenAlex author data, recent works,
// frequent coauthors and a research summary. Enrichment failures degrade
// to the bare directory record rather than failing the request.
func (h *Handler) GetProfessor(c *gin.Context) {
	professor := h.professors.ByName(c.Param("name"))
	if professor == nil {
		respondDetail(c, http.StatusNotFound, "Professor not found")
		return
	}

	oaid := professor.OpenAlexID()
	if oaid == "" {
		c.JSON(http.StatusOK, gin.H{"professor": professor})
		return
	}

	ctx := c.Request.Context()

	var (
		author    openalex.Author
		works     []openalex.Work
		coauthors []openalex.Coauthor
	)

	// Fetch the three OpenAlex views concurrently. Each result is
	// optional, so errors are logged and left nil instead of cancelling
	// the sibling fetches.
	var g errgroup.Group
	g.Go(func() error {
		a, err := h.openalex.Author(ctx, oaid)
		if err != nil {
			h.logger.WithError(err).WithField("oaid", oaid).Warn("OpenAlex author fetch failed")
			return nil
		}
		author = a
		return nil
	})
	g.Go(func() error {
		w, err := h.openalex.Works(ctx, oaid, 10)
		if err != nil {
			h.logger.WithError(err).WithField("oaid", oaid).Warn("OpenAlex works fetch failed")
			return nil
		}
		works = w
		return nil
	})
	g.Go(func() error {
		co, err := h.openalex.Coauthors(ctx, oaid, 10)
		if err != nil {
			h.logger.WithError(err).WithField("oaid", oaid).Warn("OpenAlex coauthor fetch failed")
			return nil
		}
		coauthors = co
		return nil
	})
	_ = g.Wait()

	if author == nil {
		c.JSON(http.StatusOK, gin.H{"professor": professor})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professor":        professor,
		"openalex_data":    author,
		"recent_works":     works,
		"coauthors":        coauthors,
		"research_summary": openalex.ResearchSummary(author, works),
	})
}

// coldEmailRequest is the POST /api/professors/cold-email body.
type coldEmailRequest struct {
	ProfessorName    string `json:"professor_name"`
	StudentInterests string `json:"student_interests"`
	CourseContext    string `json:"course_context"`
}

// ColdEmail handles POST /api/professors/cold-email.
// Generates a personalized research-interest email grounded in the
// professor's actual OpenAlex profile.
func (h *Handler) ColdEmail(c *gin.Context) {
	var req coldEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProfessorName == "" {
		respondDetail(c, http.StatusBadRequest, "professor_name is required")
		return
	}

	if !h.aiEnabled() {
		respondDetail(c, http.StatusBadRequest, "GOOGLE_API_KEY not set in environment")
		return
	}
	if !h.allowAI(c) {
		return
	}

	professor := h.professors.ByName(req.ProfessorName)
	if professor == nil {
		respondDetail(c, http.StatusNotFound, "Professor not found")
		return
	}

	oaid := professor.OpenAlexID()
	if oaid == "" {
		respondDetail(c, http.StatusBadRequest, "Professor has no OpenAlex ID")
		return
	}

	ctx := c.Request.Context()

	var (
		author openalex.Author
		works  []openalex.Work
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := h.openalex.Author(gctx, oaid)
		if err != nil {
			return err
		}
		author = a
		return nil
	})
	g.Go(func() error {
		w, err := h.openalex.Works(gctx, oaid, 10)
		if err != nil {
			h.logger.WithError(err).WithField("oaid", oaid).Warn("OpenAlex works fetch failed")
			return nil
		}
		works = w
		return nil
	})
	if err := g.Wait(); err != nil {
		h.respondError(c, err)
		return
	}

	prompt := genai.ColdEmailPrompt(
		professor.Name(),
		openalex.ResearchSummary(author, works),
		req.StudentInterests,
		req.CourseContext,
	)

	result, err := h.generator.Generate(ctx, prompt, "")
	if err != nil {
		h.logger.WithError(err).Warn("Cold email generation failed")
		respondDetail(c, http.StatusBadGateway, "Failed to generate email. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":          result.Text,
		"professor":      professor.Name(),
		"research_areas": openalex.ResearchAreas(author, 5),
	})
}
