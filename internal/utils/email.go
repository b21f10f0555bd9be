package utils

import "strings"

// NormalizeEmail lower-cases and trims an address the same way the user
// model does before every write, so lookups match stored values.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
