package todo

import (
	"errors"
	"testing"
	"time"
)

// recordingPersister keeps every saved snapshot in memory.
type recordingPersister struct {
	initial []Todo
	saves   [][]Todo
	saveErr error
}

func (p *recordingPersister) Load() (LoadResult, error) {
	return LoadResult{Todos: cloneTodos(p.initial), Source: LoadSourceStored}, nil
}

func (p *recordingPersister) Save(todos []Todo) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves = append(p.saves, cloneTodos(todos))
	return nil
}

func (p *recordingPersister) last(t *testing.T) []Todo {
	t.Helper()
	if len(p.saves) == 0 {
		t.Fatal("expected at least one save")
	}
	return p.saves[len(p.saves)-1]
}

var errDiskFull = errors.New("disk full")

func openTestStore(t *testing.T, initial ...Todo) (*Store, *recordingPersister) {
	t.Helper()
	persister := &recordingPersister{initial: initial}
	store, _, err := Open(persister, StoreOptions{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store, persister
}

func day(n int) *time.Time {
	d := time.Date(2024, time.November, n, 12, 0, 0, 0, time.UTC)
	return &d
}

func names(todos []Todo) []string {
	out := make([]string, len(todos))
	for i, t := range todos {
		out[i] = t.Name
	}
	return out
}
