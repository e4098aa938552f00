package fhir

import (
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Slugify lowercases a title and collapses whitespace runs into single
// hyphens, producing the machine-friendly name used for Questionnaire.name
// and the export filename.
func Slugify(title string) string {
	trimmed := strings.TrimSpace(strings.ToLower(title))
	if trimmed == "" {
		return ""
	}
	return whitespaceRuns.ReplaceAllString(trimmed, "-")
}
