// Package todo implements a single-user task list.
//
// A Store owns the authoritative, insertion-ordered sequence of todos and
// mirrors it to a Persister after every change. Project derives sorted or
// filtered views without touching the sequence.
//
// The public API mirrors the CLI commands:
//   - Add, Edit, ToggleDone, Remove, RemoveCompleted for mutations
//   - Todos, Get, Resolve for reads
//   - Project for display ordering
package todo

import (
	"strings"

	"github.com/amonks/td/internal/validation"
)

// Priority constants for todos. Higher numbers are more important.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3 // default for new drafts

	PriorityMin = PriorityLow
	PriorityMax = PriorityHigh
)

// PriorityName returns a human-readable name for the priority level.
func PriorityName(p int) string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// PriorityStars renders a priority as a row of stars, one per level.
func PriorityStars(p int) string {
	if p < 0 {
		p = 0
	}
	return strings.Repeat("★", p)
}

// SortMode selects how Project orders or filters todos.
type SortMode string

const (
	// SortDefault keeps insertion order.
	SortDefault SortMode = "default"

	// SortDeadline orders by ascending deadline, undated todos last.
	SortDeadline SortMode = "deadline"

	// SortPriority orders by descending priority.
	SortPriority SortMode = "priority"

	// SortIncomplete keeps only todos that are not done.
	SortIncomplete SortMode = "incomplete"

	// SortComplete keeps only todos that are done.
	SortComplete SortMode = "complete"
)

// SortModes returns all sort modes in menu order.
func SortModes() []SortMode {
	return []SortMode{SortDefault, SortDeadline, SortPriority, SortIncomplete, SortComplete}
}

// IsValid returns true if the mode is a known value.
func (m SortMode) IsValid() bool {
	for _, valid := range SortModes() {
		if m == valid {
			return true
		}
	}
	return false
}

// Next returns the mode after m in menu order, wrapping around.
func (m SortMode) Next() SortMode {
	modes := SortModes()
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return SortDefault
}

// Label returns the menu label for the mode.
func (m SortMode) Label() string {
	switch m {
	case SortDefault:
		return "added"
	case SortDeadline:
		return "deadline"
	case SortPriority:
		return "priority"
	case SortIncomplete:
		return "incomplete"
	case SortComplete:
		return "complete"
	default:
		return string(m)
	}
}

// ParseSortMode parses a mode name case-insensitively. The empty string is SortDefault.
func ParseSortMode(value string) (SortMode, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return SortDefault, nil
	}
	mode := SortMode(value)
	if err := validation.CheckOneOf(ErrInvalidSortMode, mode, SortModes()); err != nil {
		return "", err
	}
	return mode, nil
}
