// Package professors provides the faculty directory backing the professor
// research endpoints. Records are read from a JSON file on every call so
// data updates only require replacing the file, mirroring the course
// catalog's load-on-demand behavior.
package professors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bucourseplanner/backend-go/internal/logger"
)

// File is the professor directory filename inside the data directory.
const File = "professors.json"

// Professor is a single directory record. Records keep whatever fields the
// source file carries; the directory only interprets emp_name, oaid,
// primary_department and joint_department.
type Professor map[string]any

// String returns the named field as a string, or "" when absent or not a string.
func (p Professor) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// Name returns the professor's display name.
func (p Professor) Name() string {
	return p.String("emp_name")
}

// OpenAlexID returns the professor's OpenAlex author ID, or "" when unknown.
func (p Professor) OpenAlexID() string {
	return strings.TrimSpace(p.String("oaid"))
}

// Directory reads professor records from a JSON file.
type Directory struct {
	path   string
	logger *logger.Logger
}

// NewDirectory creates a directory reading from dataDir.
func NewDirectory(dataDir string, log *logger.Logger) *Directory {
	return &Directory{
		path:   filepath.Join(dataDir, File),
		logger: log.WithModule("professors"),
	}
}

// All returns every professor with a valid OpenAlex ID.
// Returns an empty slice when the file is missing or malformed.
func (d *Directory) All() []Professor {
	records, err := d.read()
	if err != nil {
		d.logger.WithError(err).Warn("Failed to load professor directory")
		return []Professor{}
	}

	result := make([]Professor, 0, len(records))
	for _, p := range records {
		if p.OpenAlexID() != "" {
			result = append(result, p)
		}
	}
	return result
}

// ByDepartment returns professors whose primary or joint department contains
// the given department name, case-insensitive.
func (d *Directory) ByDepartment(department string) []Professor {
	needle := strings.ToLower(department)

	result := []Professor{}
	for _, p := range d.All() {
		primary := strings.ToLower(p.String("primary_department"))
		joint := strings.ToLower(p.String("joint_department"))
		if strings.Contains(primary, needle) || strings.Contains(joint, needle) {
			result = append(result, p)
		}
	}
	return result
}

// ByName returns the first professor whose name contains the given string,
// case-insensitive. Returns nil when no record matches.
func (d *Directory) ByName(name string) Professor {
	needle := strings.ToLower(name)

	for _, p := range d.All() {
		if strings.Contains(strings.ToLower(p.Name()), needle) {
			return p
		}
	}
	return nil
}

// Departments returns the sorted set of department names across primary and
// joint appointments, with empty values excluded.
func (d *Directory) Departments() []string {
	seen := make(map[string]struct{})
	for _, p := range d.All() {
		for _, field := range []string{"primary_department", "joint_department"} {
			if v := strings.TrimSpace(p.String(field)); v != "" {
				seen[v] = struct{}{}
			}
		}
	}

	result := make([]string, 0, len(seen))
	for v := range seen {
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}

func (d *Directory) read() ([]Professor, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.path, err)
	}

	var records []Professor
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", d.path, err)
	}
	return records, nil
}
