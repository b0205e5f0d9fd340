package ids

import (
	"github.com/google/uuid"
)

// ShortLength is how many leading characters of an ID are shown by default.
const ShortLength = 8

// New returns a fresh random (version 4) UUID in canonical lowercase form.
func New() string {
	return uuid.NewString()
}

// Short returns the leading part of id that is worth showing: ShortLength
// characters, or more when the unique prefix is longer.
func Short(id string, prefixLen int) string {
	n := max(ShortLength, prefixLen)
	if n >= len(id) {
		return id
	}
	return id[:n]
}
