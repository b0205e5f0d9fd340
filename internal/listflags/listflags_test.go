package listflags

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/amonks/td/todo"
)

func TestResolveSort(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		configured string
		want       todo.SortMode
		wantErr    bool
	}{
		{"neither", "", "", todo.SortDefault, false},
		{"config only", "", "priority", todo.SortPriority, false},
		{"flag wins", "deadline", "priority", todo.SortDeadline, false},
		{"bad flag", "sideways", "priority", "", true},
		{"bad config", "", "sideways", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSort(tt.flag, tt.configured)
			if tt.wantErr {
				if !errors.Is(err, todo.ErrInvalidSortMode) {
					t.Fatalf("expected ErrInvalidSortMode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddSortFlag(t *testing.T) {
	var sort string
	cmd := &cobra.Command{Use: "list"}
	AddSortFlag(cmd, &sort)

	if err := cmd.ParseFlags([]string{"-s", "complete"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if sort != "complete" {
		t.Fatalf("expected complete, got %q", sort)
	}
}
