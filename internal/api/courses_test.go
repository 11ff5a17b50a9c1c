package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCourses(t *testing.T) {
	env := newTestEnv(t)
	env.writeCourses(t, sampleCourses())

	w := env.get(t, "/api/courses/")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["total"])

	courses, ok := body["courses"].([]any)
	require.True(t, ok)
	require.Len(t, courses, 3)

	// Enhancement fills defaults without overwriting present values.
	first, ok := courses[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(4), first["credits"])
	assert.Equal(t, "LEC", first["component"])
	assert.Equal(t, "Intro to Computer Science", first["short_title"])
}

func TestListCoursesEmptyDataset(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/api/courses/")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["total"])
	assert.Empty(t, body["courses"])
}

func TestGetCourse(t *testing.T) {
	env := newTestEnv(t)
	env.writeCourses(t, sampleCourses())

	t.Run("by id", func(t *testing.T) {
		w := env.get(t, "/api/courses/cs460")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Database Systems", decodeBody(t, w)["title"])
	})

	t.Run("by code", func(t *testing.T) {
		w := env.get(t, "/api/courses/CAS CS 460")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Database Systems", decodeBody(t, w)["title"])
	})

	t.Run("unknown", func(t *testing.T) {
		w := env.get(t, "/api/courses/nope")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Course not found", decodeBody(t, w)["detail"])
	})
}

func TestSearchCourses(t *testing.T) {
	env := newTestEnv(t)
	env.writeCourses(t, sampleCourses())

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"by keyword", "/api/courses/search/?q=database", 1},
		{"by department", "/api/courses/search/?department=Mathematics", 1},
		{"by level", "/api/courses/search/?level=Introductory", 2},
		{"combined", "/api/courses/search/?q=cs&level=Advanced", 1},
		{"no match", "/api/courses/search/?q=zzzz", 0},
		{"no filters returns all", "/api/courses/search/", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.get(t, tt.query)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, float64(tt.want), decodeBody(t, w)["total"])
		})
	}
}

func TestListDepartmentsAndSubjects(t *testing.T) {
	env := newTestEnv(t)
	env.writeCourses(t, sampleCourses())

	w := env.get(t, "/api/departments/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"Computer Science", "Mathematics"}, decodeBody(t, w)["departments"])

	w = env.get(t, "/api/subjects/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"CS", "MA"}, decodeBody(t, w)["subjects"])
}
