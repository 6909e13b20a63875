package models

import "regexp"

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// IsValidID reports whether s is syntactically a well-formed entity
// identifier. This is a format check only; whether the entity exists is a
// storage question. Handlers must reject invalid ids before any lookup.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}
