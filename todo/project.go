package todo

import "slices"

// Project returns the todos to display for mode. It never modifies todos.
// Sorting is stable, and filters always start from the insertion order of
// todos rather than from an earlier projection. An unknown mode behaves like
// SortDefault.
func Project(todos []Todo, mode SortMode) []Todo {
	switch mode {
	case SortDeadline:
		out := cloneTodos(todos)
		slices.SortStableFunc(out, compareDeadline)
		return out
	case SortPriority:
		out := cloneTodos(todos)
		slices.SortStableFunc(out, func(a, b Todo) int {
			return b.Priority - a.Priority
		})
		return out
	case SortIncomplete:
		return filterTodos(todos, func(t Todo) bool { return !t.IsDone })
	case SortComplete:
		return filterTodos(todos, func(t Todo) bool { return t.IsDone })
	default:
		return cloneTodos(todos)
	}
}

// compareDeadline orders by ascending deadline with undated todos after all
// dated ones. Two undated todos compare equal so they keep their order.
func compareDeadline(a, b Todo) int {
	switch {
	case a.Deadline == nil && b.Deadline == nil:
		return 0
	case a.Deadline == nil:
		return 1
	case b.Deadline == nil:
		return -1
	default:
		return a.Deadline.Compare(*b.Deadline)
	}
}

func filterTodos(todos []Todo, keep func(Todo) bool) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if keep(t) {
			out = append(out, t.clone())
		}
	}
	return out
}
