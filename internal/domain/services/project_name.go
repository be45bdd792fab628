package services

import "strings"

// fallbackProjectName is used when sanitation leaves nothing usable.
const fallbackProjectName = "converted-project"

// SanitizeProjectName derives a manifest-safe project name from a directory
// basename: lowercased, with anything outside [a-z0-9._-] mapped to a dash.
func SanitizeProjectName(base string) string {
	lowered := strings.ToLower(strings.TrimSpace(base))

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	name := strings.Trim(b.String(), "-")
	if name == "" {
		return fallbackProjectName
	}
	return name
}
