// Package catalog provides access to the static course dataset.
// Courses are produced by an offline CSV conversion step and served
// read-only; this package loads, enhances, and filters them.
package catalog

// Course is a single catalog record. Records come from an externally
// generated JSON file with an open schema, so they are kept as maps:
// enhancement must distinguish an absent key from a present zero value
// (a course with 0 credits stays at 0 credits).
type Course map[string]any

// defaultPrerequisites returns the default prerequisites structure.
// Built per call so callers cannot share and mutate a single instance.
func defaultPrerequisites() map[string]any {
	return map[string]any{
		"required":    []any{},
		"recommended": []any{},
	}
}

// Enhance returns a copy of the course with defaults filled in for
// optional fields the offline converter does not emit. Present keys
// are never overwritten, which makes Enhance idempotent.
func Enhance(c Course) Course {
	enhanced := make(Course, len(c)+7)
	for k, v := range c {
		enhanced[k] = v
	}

	setDefault(enhanced, "short_title", c.String("title"))
	setDefault(enhanced, "credits", 4.0)
	setDefault(enhanced, "component", "LEC")
	setDefault(enhanced, "repeatable", false)
	setDefault(enhanced, "consent_required", false)
	setDefault(enhanced, "prerequisites", defaultPrerequisites())
	setDefault(enhanced, "hub_requirements", []any{})

	return enhanced
}

// EnhanceAll enhances every course, preserving order.
func EnhanceAll(courses []Course) []Course {
	enhanced := make([]Course, len(courses))
	for i, c := range courses {
		enhanced[i] = Enhance(c)
	}
	return enhanced
}

// String returns the course field as a string, or "" when the field is
// absent or not a string.
func (c Course) String(key string) string {
	if v, ok := c[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func setDefault(c Course, key string, value any) {
	if _, ok := c[key]; !ok {
		c[key] = value
	}
}
