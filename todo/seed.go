package todo

import "time"

// SeedTodos returns the example todos shown on first run. Each call mints
// fresh IDs.
func SeedTodos() []Todo {
	first := time.Date(2024, time.November, 2, 17, 30, 0, 0, time.Local)
	third := time.Date(2024, time.November, 11, 0, 0, 0, 0, time.Local)
	return []Todo{
		{
			ID:       NewID(),
			Name:     "test todo 1",
			IsDone:   false,
			Priority: PriorityMedium,
			Deadline: &first,
		},
		{
			ID:       NewID(),
			Name:     "test todo 2",
			IsDone:   true,
			Priority: PriorityHigh,
		},
		{
			ID:       NewID(),
			Name:     "test todo 3",
			IsDone:   false,
			Priority: PriorityLow,
			Deadline: &third,
		},
	}
}
