package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bucourseplanner/backend-go/internal/logger"
	"github.com/bucourseplanner/backend-go/internal/metrics"
)

// Default dataset file names under the data directory. The primary
// file is written by the offline CSV processor; the sample file ships
// with the repository for local development.
const (
	PrimaryFile  = "processed_courses_2022_onwards.json"
	FallbackFile = "processed_courses_sample.json"
)

// Loader reads the course dataset from disk. There is deliberately no
// caching: every Load re-reads and re-parses the backing file, so a
// replaced file takes effect on the next request. Handlers load once
// per request and pass the slice down.
type Loader struct {
	primaryPath  string
	fallbackPath string
	logger       *logger.Logger
	metrics      *metrics.Metrics
}

// NewLoader creates a loader for the given data directory.
func NewLoader(dataDir string, log *logger.Logger) *Loader {
	return &Loader{
		primaryPath:  filepath.Join(dataDir, PrimaryFile),
		fallbackPath: filepath.Join(dataDir, FallbackFile),
		logger:       log.WithModule("catalog"),
	}
}

// SetMetrics attaches a metrics recorder for dataset load tracking.
func (l *Loader) SetMetrics(m *metrics.Metrics) {
	l.metrics = m
}

// Load returns all courses from the primary file, falling back to the
// sample file. Any failure (missing, unreadable, malformed) yields an
// empty slice with a diagnostic log; loading never fails the caller.
func (l *Loader) Load() []Course {
	courses, err := readCourseFile(l.primaryPath)
	if err == nil {
		l.record("primary", "success", len(courses))
		return courses
	}
	primaryErr := err

	courses, err = readCourseFile(l.fallbackPath)
	if err == nil {
		l.logger.WithField("path", l.fallbackPath).
			WithField("primary_error", primaryErr.Error()).
			Debug("Loaded courses from fallback file")
		l.record("fallback", "success", len(courses))
		return courses
	}

	l.logger.WithField("primary", l.primaryPath).
		WithField("fallback", l.fallbackPath).
		WithError(err).
		Warn("No course data available, serving empty catalog")
	l.record("none", "empty", 0)
	return []Course{}
}

func (l *Loader) record(source, status string, count int) {
	if l.metrics != nil {
		l.metrics.RecordDatasetLoad(source, status, count)
	}
}

func readCourseFile(path string) ([]Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var courses []Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
