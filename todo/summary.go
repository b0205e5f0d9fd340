package todo

import (
	"fmt"
	"time"
)

// UncompletedCount returns how many todos are not done.
func UncompletedCount(todos []Todo) int {
	count := 0
	for _, t := range todos {
		if !t.IsDone {
			count++
		}
	}
	return count
}

// Greeting returns "Good morning" before noon and "Hello" otherwise.
func Greeting(now time.Time) string {
	if now.Hour() < 12 {
		return "Good morning"
	}
	return "Hello"
}

// Welcome returns the banner shown above the list, e.g.
// "Good morning, user. You have 2 incomplete tasks."
func Welcome(name string, todos []Todo, now time.Time) string {
	if name == "" {
		name = "user"
	}
	count := UncompletedCount(todos)
	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%s, %s. You have %d incomplete %s.", Greeting(now), name, count, noun)
}
