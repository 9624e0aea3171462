package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugRepeat  = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a category name into a URL-safe slug, so
// "Fast Food" becomes "fast-food".
func GenerateSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")
	normalized := slugRepeat.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}
