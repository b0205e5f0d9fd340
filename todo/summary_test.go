package todo

import (
	"testing"
	"time"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{9, "Good morning"},
		{11, "Good morning"},
		{12, "Hello"},
		{23, "Hello"},
	}

	for _, tt := range tests {
		now := time.Date(2024, time.November, 1, tt.hour, 30, 0, 0, time.Local)
		if got := Greeting(now); got != tt.want {
			t.Errorf("Greeting(%02d:30) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestWelcome(t *testing.T) {
	morning := time.Date(2024, time.November, 1, 9, 0, 0, 0, time.Local)
	evening := time.Date(2024, time.November, 1, 19, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		user  string
		todos []Todo
		now   time.Time
		want  string
	}{
		{
			name:  "seed like",
			todos: []Todo{{Name: "a"}, {Name: "b", IsDone: true}, {Name: "c"}},
			now:   morning,
			want:  "Good morning, user. You have 2 incomplete tasks.",
		},
		{
			name:  "singular",
			user:  "sam",
			todos: []Todo{{Name: "a"}},
			now:   evening,
			want:  "Hello, sam. You have 1 incomplete task.",
		},
		{
			name: "empty",
			now:  evening,
			want: "Hello, user. You have 0 incomplete tasks.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Welcome(tt.user, tt.todos, tt.now); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	now := *day(5)
	if !(Todo{Deadline: day(4)}).IsOverdue(now) {
		t.Error("past deadline should be overdue")
	}
	if (Todo{Deadline: day(6)}).IsOverdue(now) {
		t.Error("future deadline should not be overdue")
	}
	if (Todo{}).IsOverdue(now) {
		t.Error("no deadline should not be overdue")
	}
}
