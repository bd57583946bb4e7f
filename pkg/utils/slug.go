package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile("[^a-z0-9]+")

// Slugify lowercases s and collapses non-alphanumeric runs to hyphens.
// Export filenames use this for the entity segment.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
