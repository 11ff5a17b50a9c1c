package catalog

import (
	"sort"
	"strings"
)

// textSearchFields are the fields checked for a free-text query match.
var textSearchFields = []string{"code", "title", "subject", "catalog_number", "department"}

// departmentFields are the fields checked for a department filter match.
var departmentFields = []string{"department", "academic_group", "academic_org"}

// Search filters courses by free-text query, department, and level.
// Matching is case-insensitive substring containment throughout: the
// query matches if any text field contains it, the department filter
// if any department-like field contains it, and the level filter if
// the level field contains it. Filters combine with AND; absent
// filters always match. Results keep the input order and are enhanced.
func Search(courses []Course, query, department, level string) []Course {
	if query == "" && department == "" && level == "" {
		return EnhanceAll(courses)
	}

	query = strings.ToLower(query)
	department = strings.ToLower(department)
	level = strings.ToLower(level)

	results := make([]Course, 0, len(courses))
	for _, c := range courses {
		if !matchesAny(c, textSearchFields, query) {
			continue
		}
		if !matchesAny(c, departmentFields, department) {
			continue
		}
		if level != "" && !strings.Contains(strings.ToLower(c.String("level")), level) {
			continue
		}
		results = append(results, Enhance(c))
	}
	return results
}

// matchesAny reports whether any of the fields contains the lowercased
// needle. An empty needle always matches (filter absent).
func matchesAny(c Course, fields []string, needle string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(c.String(f)), needle) {
			return true
		}
	}
	return false
}

// FindByID returns the enhanced course whose id equals id, falling
// back to a code match. The second return value reports success.
func FindByID(courses []Course, id string) (Course, bool) {
	for _, c := range courses {
		if c.String("id") == id {
			return Enhance(c), true
		}
	}
	for _, c := range courses {
		if c.String("code") == id {
			return Enhance(c), true
		}
	}
	return nil, false
}

// Departments returns the sorted set union of department,
// academic_org, and academic_group values across all courses.
// Empty strings are excluded.
func Departments(courses []Course) []string {
	return uniqueFieldValues(courses, departmentFields...)
}

// Subjects returns the sorted set of subject values across all
// courses, excluding empty strings.
func Subjects(courses []Course) []string {
	return uniqueFieldValues(courses, "subject")
}

func uniqueFieldValues(courses []Course, fields ...string) []string {
	seen := make(map[string]struct{})
	for _, c := range courses {
		for _, f := range fields {
			if v := c.String(f); v != "" {
				seen[v] = struct{}{}
			}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
