package openalex

import (
	"fmt"
	"strings"
)

// ResearchSummary builds a plain-text research profile from an author record
// and their recent works. The summary feeds both the professor detail
// response and the cold email prompt.
func ResearchSummary(author Author, works []Work) string {
	var b strings.Builder

	name, _ := author["display_name"].(string)
	fmt.Fprintf(&b, "Professor %s has published %d works with %d total citations and an h-index of %d.\n\n",
		name, intField(author, "works_count"), intField(author, "cited_by_count"), hIndex(author))

	if concepts, _ := author["x_concepts"].([]any); len(concepts) > 0 {
		names := make([]string, 0, 5)
		for _, raw := range concepts[:min(5, len(concepts))] {
			concept, _ := raw.(map[string]any)
			if display, _ := concept["display_name"].(string); display != "" {
				names = append(names, display)
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(&b, "Primary research areas: %s\n\n", strings.Join(names, ", "))
		}
	}

	if len(works) > 0 {
		b.WriteString("Recent notable publications:\n")
		for _, work := range works[:min(3, len(works))] {
			title, _ := work["title"].(string)
			if title == "" {
				title = "Untitled"
			}
			year := "N/A"
			if y := intField(work, "publication_year"); y > 0 {
				year = fmt.Sprintf("%d", y)
			}
			fmt.Fprintf(&b, "- %s (%s) - %d citations\n", title, year, intField(work, "cited_by_count"))
		}
	}

	return b.String()
}

// ResearchAreas returns up to limit concept names from an author record.
func ResearchAreas(author Author, limit int) []string {
	concepts, _ := author["x_concepts"].([]any)
	result := make([]string, 0, limit)
	for _, raw := range concepts {
		if len(result) >= limit {
			break
		}
		concept, _ := raw.(map[string]any)
		if name, _ := concept["display_name"].(string); name != "" {
			result = append(result, name)
		}
	}
	return result
}

// intField reads a numeric field that JSON decoding produced as float64.
func intField(m map[string]any, key string) int {
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	return 0
}

func hIndex(author Author) int {
	stats, _ := author["summary_stats"].(map[string]any)
	return intField(stats, "h_index")
}
