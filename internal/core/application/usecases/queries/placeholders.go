package queries

import "strings"

// UnknownLabel replaces names that are missing from the stored data.
const UnknownLabel = "Desconocido"

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return UnknownLabel
	}
	return name
}
