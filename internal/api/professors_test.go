package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bucourseplanner/backend-go/internal/logger"
	"github.com/bucourseplanner/backend-go/internal/openalex"
)

// newOpenAlexStub serves canned author and works payloads and swaps the
// handler's client to point at it.
func newOpenAlexStub(t *testing.T, env *testEnv, authorStatus int) *httptest.Server {
	t.Helper()

	author := map[string]any{
		"display_name":   "Alice Chen",
		"works_count":    float64(42),
		"cited_by_count": float64(1200),
		"summary_stats":  map[string]any{"h_index": float64(18)},
		"x_concepts": []any{
			map[string]any{"display_name": "Machine Learning"},
			map[string]any{"display_name": "Databases"},
		},
	}
	works := map[string]any{
		"results": []any{
			map[string]any{
				"title":            "Query Optimization at Scale",
				"publication_year": float64(2024),
				"cited_by_count":   float64(31),
				"authorships": []any{
					map[string]any{"author": map[string]any{"id": "https://openalex.org/A5012345678", "display_name": "Alice Chen"}},
					map[string]any{"author": map[string]any{"id": "https://openalex.org/A5099999999", "display_name": "Dana Wu"}},
				},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/authors/"):
			if authorStatus != http.StatusOK {
				w.WriteHeader(authorStatus)
				return
			}
			json.NewEncoder(w).Encode(author)
		case r.URL.Path == "/works":
			json.NewEncoder(w).Encode(works)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	log := logger.NewWithWriter("error", os.Stderr)
	env.handler.openalex = openalex.NewClient(openalex.Options{BaseURL: srv.URL}, log)
	return srv
}

func TestListProfessors(t *testing.T) {
	env := newTestEnv(t)
	env.writeProfessors(t, sampleProfessors())

	tests := []struct {
		name string
		path string
		want int
	}{
		{"all by default", "/api/professors/", 2},
		{"explicit all", "/api/professors/?department=all", 2},
		{"filtered", "/api/professors/?department=Mathematics", 1},
		{"joint department matches", "/api/professors/?department=Computer Science", 2},
		{"no match", "/api/professors/?department=Biology", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.get(t, tt.path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, float64(tt.want), decodeBody(t, w)["total"])
		})
	}
}

func TestGetProfessorEnriched(t *testing.T) {
	env := newTestEnv(t)
	env.writeProfessors(t, sampleProfessors())
	newOpenAlexStub(t, env, http.StatusOK)

	w := env.get(t, "/api/professors/Alice Chen")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Contains(t, body, "professor")
	require.Contains(t, body, "openalex_data")
	require.Contains(t, body, "recent_works")
	require.Contains(t, body, "coauthors")

	summary, ok := body["research_summary"].(string)
	require.True(t, ok)
	assert.Contains(t, summary, "Alice Chen")
	assert.Contains(t, summary, "42 works")
	assert.Contains(t, summary, "h-index of 18")
	assert.Contains(t, summary, "Machine Learning")

	coauthors, ok := body["coauthors"].([]any)
	require.True(t, ok)
	require.Len(t, coauthors, 1)
	first, ok := coauthors[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dana Wu", first["name"])
}

func TestGetProfessorAuthorFetchFails(t *testing.T) {
	env := newTestEnv(t)
	env.writeProfessors(t, sampleProfessors())
	newOpenAlexStub(t, env, http.StatusInternalServerError)

	w := env.get(t, "/api/professors/Alice Chen")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body, "professor")
	assert.NotContains(t, body, "openalex_data")
	assert.NotContains(t, body, "research_summary")
}

func TestGetProfessorNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.writeProfessors(t, sampleProfessors())

	w := env.get(t, "/api/professors/Nobody")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Professor not found", decodeBody(t, w)["detail"])
}

func TestColdEmail(t *testing.T) {
	env := newTestEnv(t)
	env.writeProfessors(t, sampleProfessors())
	newOpenAlexStub(t, env, http.StatusOK)
	env.generator.text = "Dear Professor Chen, ..."

	w := env.post(t, "/api/professors/cold-email", map[string]any{
		"professor_name":    "Alice Chen",
		"student_interests": "databases and ML systems",
		"course_context":    "Completed CAS CS 460",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Dear Professor Chen, ...", body["email"])
	assert.Equal(t, "Alice Chen", body["professor"])
	assert.Equal(t, []any{"Machine Learning", "Databases"}, body["research_areas"])

	require.Len(t, env.generator.prompts, 1)
	prompt := env.generator.prompts[0]
	assert.Contains(t, prompt, "Alice Chen")
	assert.Contains(t, prompt, "databases and ML systems")
	assert.Contains(t, prompt, "Completed CAS CS 460")
}

func TestColdEmailErrors(t *testing.T) {
	t.Run("unknown professor", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeProfessors(t, sampleProfessors())

		w := env.post(t, "/api/professors/cold-email", map[string]any{"professor_name": "Nobody"})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing professor_name", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.post(t, "/api/professors/cold-email", map[string]any{"student_interests": "x"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no research profile", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeProfessors(t, []map[string]any{
			{"emp_name": "Carol Diaz", "primary_department": "History", "oaid": ""},
		})

		w := env.post(t, "/api/professors/cold-email", map[string]any{"professor_name": "Carol Diaz"})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("author fetch failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeProfessors(t, sampleProfessors())
		newOpenAlexStub(t, env, http.StatusInternalServerError)

		w := env.post(t, "/api/professors/cold-email", map[string]any{"professor_name": "Alice Chen"})
		require.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("ai not configured", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeProfessors(t, sampleProfessors())
		env.generator.enabled = false

		w := env.post(t, "/api/professors/cold-email", map[string]any{"professor_name": "Alice Chen"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["detail"], "GOOGLE_API_KEY")
	})

	t.Run("generation failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeProfessors(t, sampleProfessors())
		newOpenAlexStub(t, env, http.StatusOK)
		env.generator.err = errGenerationFailed

		w := env.post(t, "/api/professors/cold-email", map[string]any{"professor_name": "Alice Chen"})
		require.Equal(t, http.StatusBadGateway, w.Code)
	})
}
