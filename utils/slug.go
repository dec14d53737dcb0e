package utils

import (
	"regexp"
	"strings"
)

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives a catalog document id from an entity name: lowercase,
// spaces collapsed to hyphens, everything outside [a-z0-9-] stripped.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	return s
}
