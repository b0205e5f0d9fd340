package todo

import "github.com/amonks/td/internal/ids"

// NewID mints a fresh todo ID.
func NewID() string {
	return ids.New()
}
