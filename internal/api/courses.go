package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bucourseplanner/backend-go/internal/catalog"
)

// ListCourses handles GET /api/courses/.
// Returns every course with display defaults filled in.
func (h *Handler) ListCourses(c *gin.Context) {
	courses := catalog.EnhanceAll(h.courses.Load())
	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetCourse handles GET /api/courses/:id.
// Looks up by id first, then by course code.
func (h *Handler) GetCourse(c *gin.Context) {
	id := c.Param("id")

	course, ok := catalog.FindByID(h.courses.Load(), id)
	if !ok {
		respondDetail(c, http.StatusNotFound, "Course not found")
		return
	}

	c.JSON(http.StatusOK, course)
}

// SearchCourses handles GET /api/courses/search/ with q, department and
// level query parameters. Empty filters return the full catalog.
func (h *Handler) SearchCourses(c *gin.Context) {
	results := catalog.Search(
		h.courses.Load(),
		c.Query("q"),
		c.Query("department"),
		c.Query("level"),
	)

	c.JSON(http.StatusOK, gin.H{
		"courses": results,
		"total":   len(results),
	})
}

// ListDepartments handles GET /api/departments/.
func (h *Handler) ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"departments": catalog.Departments(h.courses.Load()),
	})
}

// ListSubjects handles GET /api/subjects/.
func (h *Handler) ListSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"subjects": catalog.Subjects(h.courses.Load()),
	})
}
