package todo

import "time"

// Todo represents a single task.
type Todo struct {
	// ID is an opaque unique identifier (a UUID), assigned on Add and never reused.
	ID string `json:"id"`

	// Name is the short summary of the todo (2 to 32 characters).
	Name string `json:"name"`

	// IsDone reports whether the todo is completed.
	IsDone bool `json:"isDone"`

	// Priority is the importance level (1=low, 3=high).
	Priority int `json:"priority"`

	// Deadline is when the todo is due (nil when there is no deadline).
	Deadline *time.Time `json:"deadline"`
}

// Draft holds the user-editable fields of a todo, as entered in a form.
type Draft struct {
	Name     string
	Priority int
	Deadline *time.Time
}

// NewDraft returns the defaults for a fresh add form.
func NewDraft() Draft {
	return Draft{Priority: PriorityHigh}
}

// DraftFrom copies the editable fields of t.
func DraftFrom(t Todo) Draft {
	return Draft{
		Name:     t.Name,
		Priority: t.Priority,
		Deadline: cloneTime(t.Deadline),
	}
}

// IsOverdue reports whether the todo has a deadline before now.
func (t Todo) IsOverdue(now time.Time) bool {
	return t.Deadline != nil && t.Deadline.Before(now)
}

func (t Todo) clone() Todo {
	t.Deadline = cloneTime(t.Deadline)
	return t
}

func cloneTodos(todos []Todo) []Todo {
	if todos == nil {
		return nil
	}
	out := make([]Todo, len(todos))
	for i, t := range todos {
		out[i] = t.clone()
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := *t
	return &value
}
