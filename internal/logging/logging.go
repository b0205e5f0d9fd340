// Package logging builds the charmbracelet/log logger td writes diagnostics
// to.
package logging

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/amonks/td/internal/validation"
)

// DefaultLevel is used when neither config nor flags pick a level.
const DefaultLevel = "warn"

// ErrInvalidLevel is returned for an unknown level name.
var ErrInvalidLevel = errors.New("invalid log level")

// Levels returns the accepted level names.
func Levels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Options configures New.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options used by the td command.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Prefix:    "td",
	}
}

// New returns a logger writing to w. A nil w means stderr.
func New(w io.Writer, opts Options) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel parses a level name. "warning" is accepted for warn and the
// empty string is DefaultLevel.
func ParseLevel(value string) (log.Level, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "":
		value = DefaultLevel
	case "warning":
		value = "warn"
	}
	if err := validation.CheckOneOf(ErrInvalidLevel, value, Levels()); err != nil {
		return log.WarnLevel, err
	}
	return log.ParseLevel(value)
}
