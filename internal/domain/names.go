package domain

import "strings"

// IsValidSchemaName constrains registry names to something safe to echo into
// shell output and SQL parameters.
func IsValidSchemaName(name string) bool {
	if name == "" || len(name) > 128 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return !strings.Contains(name, "..")
}
