package utils

import "strings"

var slugReplacer = strings.NewReplacer(" ", "_", "'", "_", "-", "_")

// Slugify derives a URL-safe identifier from a product name: lower-cased,
// with spaces, apostrophes and hyphens replaced by underscores. The
// function is pure and idempotent.
func Slugify(name string) string {
	return slugReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}
