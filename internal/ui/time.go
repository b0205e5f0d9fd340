package ui

import (
	"fmt"
	"time"
)

// DeadlineLayout is how deadlines are shown.
const DeadlineLayout = "2006-01-02 15:04"

// FormatDeadline returns the deadline in local time, or "none".
func FormatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return "none"
	}
	return deadline.In(time.Local).Format(DeadlineLayout)
}

// FormatDue returns a compact distance to the deadline like "in 2d" or
// "3h ago", or "" when there is no deadline.
func FormatDue(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return ""
	}
	if deadline.Before(now) {
		return FormatDurationShort(now.Sub(*deadline)) + " ago"
	}
	return "in " + FormatDurationShort(deadline.Sub(now))
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}
