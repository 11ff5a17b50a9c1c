package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bucourseplanner/backend-go/internal/catalog"
	"github.com/bucourseplanner/backend-go/internal/logger"
	"github.com/bucourseplanner/backend-go/internal/professors"
)

// Verification results
type verifyResult struct {
	name    string
	passed  bool
	message string
}

func main() {
	fmt.Println("Course Planner - Dataset Consistency Verification Tool")
	fmt.Println("======================================================")

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	log := logger.New("error")

	results := []verifyResult{}

	// 1. Verify the course dataset loads and is well-formed
	results = append(results, verifyCourses(dataDir, log)...)

	// 2. Verify the professor directory loads and is well-formed
	results = append(results, verifyProfessors(dataDir, log)...)

	// Print results
	fmt.Println("\nVerification Results:")
	fmt.Println("=====================")

	passedCount := 0
	failedCount := 0

	for _, result := range results {
		status := "FAIL"
		if result.passed {
			status = "PASS"
			passedCount++
		} else {
			failedCount++
		}
		fmt.Printf("[%s] %s: %s\n", status, result.name, result.message)
	}

	fmt.Printf("\nSummary: %d passed, %d failed\n", passedCount, failedCount)

	if failedCount > 0 {
		os.Exit(1)
	}
}

// verifyCourses checks the course dataset for completeness
func verifyCourses(dataDir string, log *logger.Logger) []verifyResult {
	results := []verifyResult{}

	courses := catalog.NewLoader(dataDir, log).Load()

	results = append(results, verifyResult{
		name:    "Course Dataset Loadable",
		passed:  len(courses) > 0,
		message: fmt.Sprintf("Loaded %d courses from %s", len(courses), dataDir),
	})
	if len(courses) == 0 {
		return results
	}

	// Required fields on every record
	missingFields := 0
	for _, c := range courses {
		if c.String("id") == "" || c.String("code") == "" || c.String("title") == "" {
			missingFields++
		}
	}
	results = append(results, verifyResult{
		name:    "Course Required Fields",
		passed:  missingFields == 0,
		message: fmt.Sprintf("%d records missing id, code, or title", missingFields),
	})

	// Course ids must be unique: the detail endpoint looks up by id first
	seen := make(map[string]struct{}, len(courses))
	duplicates := []string{}
	for _, c := range courses {
		id := c.String("id")
		if _, ok := seen[id]; ok {
			duplicates = append(duplicates, id)
		}
		seen[id] = struct{}{}
	}
	if len(duplicates) == 0 {
		results = append(results, verifyResult{
			name:    "Course IDs Unique",
			passed:  true,
			message: "No duplicate ids",
		})
	} else {
		results = append(results, verifyResult{
			name:    "Course IDs Unique",
			passed:  false,
			message: fmt.Sprintf("Duplicate ids: %v", duplicates),
		})
	}

	departments := catalog.Departments(courses)
	results = append(results, verifyResult{
		name:    "Course Departments Present",
		passed:  len(departments) > 0,
		message: fmt.Sprintf("%d distinct departments", len(departments)),
	})

	return results
}

// verifyProfessors checks the professor directory for completeness
func verifyProfessors(dataDir string, log *logger.Logger) []verifyResult {
	results := []verifyResult{}

	directory := professors.NewDirectory(dataDir, log)
	records := directory.All()

	results = append(results, verifyResult{
		name:    "Professor Directory Loadable",
		passed:  len(records) > 0,
		message: fmt.Sprintf("Loaded %d professors with research profiles", len(records)),
	})
	if len(records) == 0 {
		return results
	}

	// Every listed professor needs a name and an OpenAlex author id
	badRecords := 0
	for _, p := range records {
		if p.Name() == "" || !strings.HasPrefix(p.OpenAlexID(), "A") {
			badRecords++
		}
	}
	results = append(results, verifyResult{
		name:    "Professor Required Fields",
		passed:  badRecords == 0,
		message: fmt.Sprintf("%d records missing name or a valid OpenAlex id", badRecords),
	})

	departments := directory.Departments()
	results = append(results, verifyResult{
		name:    "Professor Departments Present",
		passed:  len(departments) > 0,
		message: fmt.Sprintf("%d distinct departments", len(departments)),
	})

	return results
}
