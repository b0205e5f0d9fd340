package ui

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestPrefixLength(t *testing.T) {
	tests := []struct {
		name   string
		length map[string]int
		id     string
		want   int
	}{
		{
			name:   "case insensitive lookup",
			length: map[string]int{"abc123": 4},
			id:     "ABC123",
			want:   4,
		},
		{
			name:   "missing id",
			length: map[string]int{"abc123": 4},
			id:     "",
			want:   0,
		},
		{
			name:   "nil map",
			length: nil,
			id:     "ABC123",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefixLength(tt.length, tt.id); got != tt.want {
				t.Fatalf("PrefixLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHighlightIDPlain(t *testing.T) {
	styles := StylesWithProfile(termenv.Ascii)
	if got := styles.HighlightID("abc123", 3); got != "abc123" {
		t.Fatalf("expected plain id, got %q", got)
	}
}

func TestHighlightIDColored(t *testing.T) {
	styles := StylesWithProfile(termenv.ANSI)
	got := styles.HighlightID("abc123", 3)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected escape codes, got %q", got)
	}
	if !strings.HasSuffix(got, "123") {
		t.Fatalf("expected unstyled suffix, got %q", got)
	}
	if StripANSI(got) != "abc123" {
		t.Fatalf("expected visible text to be the id, got %q", StripANSI(got))
	}
}

func TestHighlightIDOutOfRange(t *testing.T) {
	styles := StylesWithProfile(termenv.ANSI)
	for _, n := range []int{0, -1, 7} {
		if got := styles.HighlightID("abc123", n); got != "abc123" {
			t.Errorf("prefix %d: expected id unchanged, got %q", n, got)
		}
	}
}
