package ids

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewIsV4UUID(t *testing.T) {
	id := New()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("expected version 4, got %d", parsed.Version())
	}
	if id != strings.ToLower(id) {
		t.Errorf("expected lowercase ID, got %q", id)
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate ID after %d iterations: %q", i, id)
		}
		seen[id] = true
	}
}

func TestShort(t *testing.T) {
	id := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	tests := []struct {
		prefixLen int
		want      string
	}{
		{0, "6ba7b810"},
		{3, "6ba7b810"},
		{10, "6ba7b810-9"},
		{100, id},
	}

	for _, tt := range tests {
		if got := Short(id, tt.prefixLen); got != tt.want {
			t.Errorf("Short(%d) = %q, want %q", tt.prefixLen, got, tt.want)
		}
	}
	if got := Short("abc", 1); got != "abc" {
		t.Errorf("short ids should be unchanged, got %q", got)
	}
}
