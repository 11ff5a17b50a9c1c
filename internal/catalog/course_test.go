package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhance_FillsDefaults(t *testing.T) {
	c := Course{
		"id":    "cs111",
		"code":  "CAS CS 111",
		"title": "Introduction to Computer Science",
	}

	enhanced := Enhance(c)

	assert.Equal(t, "Introduction to Computer Science", enhanced["short_title"])
	assert.Equal(t, 4.0, enhanced["credits"])
	assert.Equal(t, "LEC", enhanced["component"])
	assert.Equal(t, false, enhanced["repeatable"])
	assert.Equal(t, false, enhanced["consent_required"])
	assert.Equal(t, []any{}, enhanced["hub_requirements"])

	prereqs, ok := enhanced["prerequisites"].(map[string]any)
	require.True(t, ok, "prerequisites should be a map")
	assert.Equal(t, []any{}, prereqs["required"])
	assert.Equal(t, []any{}, prereqs["recommended"])
}

func TestEnhance_PreservesPresentFields(t *testing.T) {
	c := Course{
		"id":          "cs112",
		"title":       "Data Structures",
		"short_title": "DS",
		"credits":     2.0,
		"component":   "LAB",
		"repeatable":  true,
	}

	enhanced := Enhance(c)

	assert.Equal(t, "DS", enhanced["short_title"])
	assert.Equal(t, 2.0, enhanced["credits"])
	assert.Equal(t, "LAB", enhanced["component"])
	assert.Equal(t, true, enhanced["repeatable"])
}

func TestEnhance_DoesNotMutateInput(t *testing.T) {
	c := Course{"id": "cs111", "title": "Intro"}

	_ = Enhance(c)

	_, hasCredits := c["credits"]
	assert.False(t, hasCredits, "input course must not gain keys")
	assert.Len(t, c, 2)
}

func TestEnhance_Idempotent(t *testing.T) {
	c := Course{"id": "cs111", "title": "Intro"}

	once := Enhance(c)
	twice := Enhance(once)

	assert.Equal(t, once, twice)
}

func TestEnhance_PrerequisitesNotShared(t *testing.T) {
	a := Enhance(Course{"id": "a"})
	b := Enhance(Course{"id": "b"})

	aPrereqs := a["prerequisites"].(map[string]any)
	aPrereqs["required"] = append(aPrereqs["required"].([]any), "CS 111")

	bPrereqs := b["prerequisites"].(map[string]any)
	assert.Empty(t, bPrereqs["required"], "default prerequisites must not be shared between courses")
}

func TestCourse_String(t *testing.T) {
	c := Course{"code": "CS 111", "credits": 4.0}

	assert.Equal(t, "CS 111", c.String("code"))
	assert.Equal(t, "", c.String("missing"))
	assert.Equal(t, "", c.String("credits"), "non-string value reads as empty")
}
