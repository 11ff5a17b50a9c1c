package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bucourseplanner/backend-go/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_PrimaryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, PrimaryFile),
		`[{"id":"cs111","code":"CAS CS 111","title":"Intro"}]`)

	loader := NewLoader(dir, logger.New("error"))
	courses := loader.Load()

	require.Len(t, courses, 1)
	assert.Equal(t, "cs111", courses[0].String("id"))
}

func TestLoader_FallbackFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FallbackFile),
		`[{"id":"sample1"},{"id":"sample2"}]`)

	loader := NewLoader(dir, logger.New("error"))
	courses := loader.Load()

	assert.Len(t, courses, 2)
}

func TestLoader_PrimaryPreferredOverFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, PrimaryFile), `[{"id":"primary"}]`)
	writeFile(t, filepath.Join(dir, FallbackFile), `[{"id":"fallback"}]`)

	courses := NewLoader(dir, logger.New("error")).Load()

	require.Len(t, courses, 1)
	assert.Equal(t, "primary", courses[0].String("id"))
}

func TestLoader_MissingFilesReturnEmpty(t *testing.T) {
	loader := NewLoader(t.TempDir(), logger.New("error"))

	courses := loader.Load()

	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestLoader_MalformedPrimaryFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, PrimaryFile), `{not json`)
	writeFile(t, filepath.Join(dir, FallbackFile), `[{"id":"ok"}]`)

	courses := NewLoader(dir, logger.New("error")).Load()

	require.Len(t, courses, 1)
	assert.Equal(t, "ok", courses[0].String("id"))
}

func TestLoader_MalformedBothReturnEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, PrimaryFile), `not json at all`)
	writeFile(t, filepath.Join(dir, FallbackFile), `also not json`)

	courses := NewLoader(dir, logger.New("error")).Load()

	assert.Empty(t, courses)
}

func TestLoader_RereadsOnEveryLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, PrimaryFile)
	writeFile(t, path, `[{"id":"v1"}]`)

	loader := NewLoader(dir, logger.New("error"))
	first := loader.Load()
	require.Len(t, first, 1)

	writeFile(t, path, `[{"id":"v1"},{"id":"v2"}]`)
	second := loader.Load()

	assert.Len(t, second, 2, "loader must not cache between calls")
}
