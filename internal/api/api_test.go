package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/bucourseplanner/backend-go/internal/catalog"
	"github.com/bucourseplanner/backend-go/internal/genai"
	"github.com/bucourseplanner/backend-go/internal/logger"
	"github.com/bucourseplanner/backend-go/internal/openalex"
	"github.com/bucourseplanner/backend-go/internal/professors"
	"github.com/bucourseplanner/backend-go/internal/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubGenerator is a scriptable Generator for handler tests.
type stubGenerator struct {
	enabled bool
	text    string
	model   string
	err     error
	models  []string

	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt, _ string) (*genai.Result, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return nil, s.err
	}
	model := s.model
	if model == "" {
		model = "stub-model"
	}
	return &genai.Result{Text: s.text, Model: model}, nil
}

func (s *stubGenerator) ListModels(context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.models, nil
}

func (s *stubGenerator) IsEnabled() bool { return s.enabled }

func (s *stubGenerator) Provider() genai.Provider { return genai.ProviderGemini }

func (s *stubGenerator) Close() error { return nil }

// testEnv bundles a handler wired to temp data files and a router with
// the production route shapes.
type testEnv struct {
	handler   *Handler
	router    *gin.Engine
	generator *stubGenerator
	dataDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dataDir := t.TempDir()
	log := logger.NewWithWriter("error", os.Stderr)

	gen := &stubGenerator{enabled: true, text: "stub reply"}

	h := NewHandler(Options{
		Courses:    catalog.NewLoader(dataDir, log),
		Professors: professors.NewDirectory(dataDir, log),
		OpenAlex:   openalex.NewClient(openalex.Options{}, log),
		Generator:  gen,
		Logger:     log,
	})

	router := gin.New()
	router.GET("/api/courses/", h.ListCourses)
	router.GET("/api/courses/:id", h.GetCourse)
	router.GET("/api/courses/search/", h.SearchCourses)
	router.GET("/api/departments/", h.ListDepartments)
	router.GET("/api/subjects/", h.ListSubjects)
	router.GET("/api/professors/", h.ListProfessors)
	router.GET("/api/professors/:name", h.GetProfessor)
	router.POST("/api/professors/cold-email", h.ColdEmail)
	router.POST("/api/ai-advisor/", h.CareerAdvisor)
	router.POST("/api/gemini/", h.Generate)
	router.GET("/api/ai/models", h.ListModels)
	router.POST("/api/chatbot/", h.Chatbot)

	return &testEnv{handler: h, router: router, generator: gen, dataDir: dataDir}
}

func (e *testEnv) writeCourses(t *testing.T, courses []catalog.Course) {
	t.Helper()
	writeJSON(t, filepath.Join(e.dataDir, catalog.PrimaryFile), courses)
}

func (e *testEnv) writeProfessors(t *testing.T, records []map[string]any) {
	t.Helper()
	writeJSON(t, filepath.Join(e.dataDir, professors.File), records)
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, strings.ReplaceAll(path, " ", "%20"), nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sampleCourses() []catalog.Course {
	return []catalog.Course{
		{"id": "cs111", "code": "CAS CS 111", "title": "Intro to Computer Science", "subject": "CS", "department": "Computer Science", "level": "Introductory", "credits": 4.0},
		{"id": "cs460", "code": "CAS CS 460", "title": "Database Systems", "subject": "CS", "department": "Computer Science", "level": "Advanced"},
		{"id": "ma115", "code": "CAS MA 115", "title": "Statistics I", "subject": "MA", "department": "Mathematics", "level": "Introductory"},
	}
}

func sampleProfessors() []map[string]any {
	return []map[string]any{
		{"emp_name": "Alice Chen", "primary_department": "Computer Science", "oaid": "A5012345678", "email": "achen@bu.edu"},
		{"emp_name": "Bob Martin", "primary_department": "Mathematics & Statistics", "joint_department": "Computer Science", "oaid": "A5087654321"},
	}
}

// aiLimiter attaches a tiny keyed limiter so tests can exhaust it.
func (e *testEnv) withAILimiter(t *testing.T, burst int) *ratelimit.KeyedLimiter {
	t.Helper()
	limiter := ratelimit.NewKeyedLimiter(ratelimit.KeyedConfig{
		Name:       "ai",
		Burst:      float64(burst),
		RefillRate: 0.0001,
	})
	t.Cleanup(limiter.Stop)
	e.handler.aiLimiter = limiter
	return limiter
}

var errGenerationFailed = errors.New("generation failed")
