package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID builds a prefixed record id, e.g. "gallery-4f9c...".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// NormalizeEmail lowercases and trims an address so lookups are
// case-insensitive.
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ParseFormBool interprets the loose boolean encodings multipart forms
// send for checkbox fields.
func ParseFormBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "on":
		return true
	default:
		return false
	}
}
