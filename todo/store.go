package todo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Store owns the authoritative sequence of todos.
//
// A Store is driven by a single caller: the CLI handles one command, the TUI
// one message at a time. It does no locking of its own.
type Store struct {
	persister   Persister
	logger      *log.Logger
	todos       []Todo
	loaded      bool
	saveErr     error
	subscribers map[int]func([]Todo)
	nextSubID   int
}

// StoreOptions configures a Store.
type StoreOptions struct {
	// Logger receives persistence warnings. If nil, logs are discarded.
	Logger *log.Logger
}

// NewStore returns an unloaded Store backed by persister. Call Load before
// any mutation.
func NewStore(persister Persister, opts StoreOptions) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		persister:   persister,
		logger:      logger,
		subscribers: make(map[int]func([]Todo)),
	}
}

// Open returns a loaded Store.
func Open(persister Persister, opts StoreOptions) (*Store, LoadResult, error) {
	store := NewStore(persister, opts)
	result, err := store.Load()
	if err != nil {
		return nil, result, err
	}
	return store, result, nil
}

// Load reads the collection from the persister and installs it. Saves are
// enabled only once Load has returned successfully. Calling Load again
// replaces the in-memory sequence.
func (s *Store) Load() (LoadResult, error) {
	if s.persister == nil {
		return LoadResult{}, fmt.Errorf("todo store has no persister")
	}

	result, err := s.persister.Load()
	if err != nil {
		return result, fmt.Errorf("load todos: %w", err)
	}

	s.todos = cloneTodos(result.Todos)
	if s.todos == nil {
		s.todos = []Todo{}
	}
	s.loaded = true
	s.notify()
	return result, nil
}

// Loaded reports whether Load has completed.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Todos returns a copy of the sequence in insertion order.
func (s *Store) Todos() []Todo {
	return cloneTodos(s.todos)
}

// Len returns the number of todos.
func (s *Store) Len() int {
	return len(s.todos)
}

// Get returns the todo with the given full ID.
func (s *Store) Get(id string) (Todo, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Todo{}, fmt.Errorf("%w: %s", ErrTodoNotFound, id)
	}
	return s.todos[i].clone(), nil
}

// IDIndex returns an index of all todo IDs in the store.
func (s *Store) IDIndex() IDIndex {
	return NewIDIndex(s.todos)
}

// Resolve returns the full ID of the todo whose ID starts with prefix.
func (s *Store) Resolve(prefix string) (string, error) {
	resolved, err := s.IDIndex().Resolve(prefix)
	if err != nil {
		return "", err
	}
	i := s.indexOf(resolved)
	if i < 0 {
		return "", fmt.Errorf("%w: %s", ErrTodoNotFound, prefix)
	}
	return s.todos[i].ID, nil
}

// Add validates the draft and appends a new todo to the end of the sequence.
func (s *Store) Add(draft Draft) (Todo, error) {
	if err := s.ensureLoaded(); err != nil {
		return Todo{}, err
	}
	if err := ValidateDraft(draft); err != nil {
		return Todo{}, err
	}

	todo := Todo{
		ID:       s.mintID(),
		Name:     draft.Name,
		IsDone:   false,
		Priority: draft.Priority,
		Deadline: cloneTime(draft.Deadline),
	}
	s.todos = append(s.todos, todo)
	s.changed()
	return todo.clone(), nil
}

// Edit replaces the name, priority and deadline of the todo with the given
// ID, keeping its position and completion state. The name is validated
// before the ID is looked up.
func (s *Store) Edit(id string, draft Draft) (Todo, error) {
	if err := s.ensureLoaded(); err != nil {
		return Todo{}, err
	}
	if err := ValidateDraft(draft); err != nil {
		return Todo{}, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return Todo{}, fmt.Errorf("%w: %s", ErrTodoNotFound, id)
	}

	s.todos[i].Name = draft.Name
	s.todos[i].Priority = draft.Priority
	s.todos[i].Deadline = cloneTime(draft.Deadline)
	s.changed()
	return s.todos[i].clone(), nil
}

// ToggleDone sets the completion flag of the todo with the given ID. The
// collection is saved even when the flag already had that value.
func (s *Store) ToggleDone(id string, value bool) (Todo, error) {
	if err := s.ensureLoaded(); err != nil {
		return Todo{}, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return Todo{}, fmt.Errorf("%w: %s", ErrTodoNotFound, id)
	}

	s.todos[i].IsDone = value
	s.changed()
	return s.todos[i].clone(), nil
}

// Remove deletes the todo with the given ID. The remaining todos keep their
// relative order.
func (s *Store) Remove(id string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrTodoNotFound, id)
	}

	s.todos = append(s.todos[:i:i], s.todos[i+1:]...)
	s.changed()
	return nil
}

// RemoveCompleted deletes every done todo and returns how many were removed.
// It always saves, even when nothing was removed.
func (s *Store) RemoveCompleted() int {
	if !s.loaded {
		return 0
	}

	kept := make([]Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		if !todo.IsDone {
			kept = append(kept, todo)
		}
	}
	removed := len(s.todos) - len(kept)
	s.todos = kept
	s.changed()
	return removed
}

// SaveErr returns the error from the most recent save, or nil if it succeeded.
func (s *Store) SaveErr() error {
	return s.saveErr
}

// Subscribe registers fn to be called with a copy of the sequence after
// every load and mutation. The returned function unregisters it.
func (s *Store) Subscribe(fn func([]Todo)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}

func (s *Store) ensureLoaded() error {
	if !s.loaded {
		return ErrNotLoaded
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.todos {
		if strings.EqualFold(s.todos[i].ID, id) {
			return i
		}
	}
	return -1
}

func (s *Store) mintID() string {
	for {
		id := NewID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

// changed persists the sequence and notifies subscribers. Save failures are
// logged and kept for SaveErr; the in-memory change stands.
func (s *Store) changed() {
	if err := s.persister.Save(cloneTodos(s.todos)); err != nil {
		s.saveErr = err
		s.logger.Warn("save todos failed", "err", err)
	} else {
		s.saveErr = nil
	}
	s.notify()
}

func (s *Store) notify() {
	if len(s.subscribers) == 0 {
		return
	}
	for _, fn := range s.subscribers {
		fn(cloneTodos(s.todos))
	}
}
