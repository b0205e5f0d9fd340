package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amonks/td/internal/kv"
	"github.com/charmbracelet/log"
)

// DefaultStorageKey is the kv slot the todo list is stored under.
const DefaultStorageKey = "TodoApp"

// Persister loads and saves the whole todo collection.
type Persister interface {
	Load() (LoadResult, error)
	Save(todos []Todo) error
}

// LoadSource says where a loaded collection came from.
type LoadSource string

const (
	// LoadSourceStored means the collection was read from storage.
	LoadSourceStored LoadSource = "stored"

	// LoadSourceSeedFirstRun means storage was empty and the seed set was used.
	LoadSourceSeedFirstRun LoadSource = "seed"

	// LoadSourceSeedCorrupt means storage could not be read or decoded and
	// the seed set was used instead.
	LoadSourceSeedCorrupt LoadSource = "seed-corrupt"
)

// LoadResult is the outcome of a Load.
type LoadResult struct {
	Todos  []Todo
	Source LoadSource
	// Err is the read or decode failure behind LoadSourceSeedCorrupt.
	Err error
	// Dropped lists the stored deadlines that could not be parsed. Those
	// todos were kept without a deadline.
	Dropped []error
}

// IsSeed reports whether the seed set was returned.
func (r LoadResult) IsSeed() bool {
	return r.Source == LoadSourceSeedFirstRun || r.Source == LoadSourceSeedCorrupt
}

// KVPersister stores the collection as one JSON array in a kv slot.
type KVPersister struct {
	store  kv.Store
	key    string
	logger *log.Logger
}

// KVPersisterOptions configures a KVPersister.
type KVPersisterOptions struct {
	// Key is the slot name. Defaults to DefaultStorageKey.
	Key string

	// Logger receives fallback warnings. If nil, logs are discarded.
	Logger *log.Logger
}

// NewKVPersister returns a persister writing to store.
func NewKVPersister(store kv.Store, opts KVPersisterOptions) *KVPersister {
	key := opts.Key
	if key == "" {
		key = DefaultStorageKey
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &KVPersister{store: store, key: key, logger: logger}
}

// Key returns the slot name.
func (p *KVPersister) Key() string {
	return p.key
}

// storedTodo is the on-disk shape of a todo. Deadline stays textual so that
// older or hand-edited formats can be migrated on read.
type storedTodo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	IsDone   bool    `json:"isDone"`
	Priority int     `json:"priority"`
	Deadline *string `json:"deadline"`
}

// Load reads the collection. An absent or empty slot, including one holding
// "[]" or "null", yields the seed set. A slot that cannot be read or decoded
// also yields the seed set, with the cause in LoadResult.Err; Load itself
// does not fail. A todo whose deadline cannot be parsed loses only the
// deadline.
func (p *KVPersister) Load() (LoadResult, error) {
	data, err := p.store.Get(p.key)
	if errors.Is(err, kv.ErrNotFound) {
		return LoadResult{Todos: SeedTodos(), Source: LoadSourceSeedFirstRun}, nil
	}
	if err != nil {
		return p.fallback(fmt.Errorf("read %s: %w", p.key, err)), nil
	}

	trimmed := bytes.TrimSpace(data)
	if isEmptyCollection(trimmed) {
		return LoadResult{Todos: SeedTodos(), Source: LoadSourceSeedFirstRun}, nil
	}

	todos, dropped, err := DecodeTodos(trimmed)
	if err != nil {
		return p.fallback(err), nil
	}
	for _, problem := range dropped {
		p.logger.Warn("dropped unreadable deadline", "key", p.key, "err", problem)
	}
	return LoadResult{Todos: todos, Source: LoadSourceStored, Dropped: dropped}, nil
}

func isEmptyCollection(data []byte) bool {
	switch string(data) {
	case "", "[]", "null":
		return true
	}
	return false
}

func (p *KVPersister) fallback(err error) LoadResult {
	p.logger.Warn("stored todos unreadable, using example todos", "key", p.key, "err", err)
	return LoadResult{Todos: SeedTodos(), Source: LoadSourceSeedCorrupt, Err: err}
}

// Save overwrites the slot with the full collection.
func (p *KVPersister) Save(todos []Todo) error {
	data, err := EncodeTodos(todos)
	if err != nil {
		return err
	}
	if err := p.store.Set(p.key, data); err != nil {
		return fmt.Errorf("write %s: %w", p.key, err)
	}
	return nil
}

// EncodeTodos serializes todos as a JSON array. Deadlines are RFC 3339
// strings; missing deadlines are null.
func EncodeTodos(todos []Todo) ([]byte, error) {
	records := make([]storedTodo, 0, len(todos))
	for _, t := range todos {
		record := storedTodo{
			ID:       t.ID,
			Name:     t.Name,
			IsDone:   t.IsDone,
			Priority: t.Priority,
		}
		if t.Deadline != nil {
			formatted := t.Deadline.Format(time.RFC3339Nano)
			record.Deadline = &formatted
		}
		records = append(records, record)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode todos: %w", err)
	}
	return data, nil
}

// DecodeTodos parses a JSON array written by EncodeTodos, rehydrating
// deadlines from their textual form. A deadline that cannot be parsed is
// dropped and reported in dropped; the todo itself is kept.
func DecodeTodos(data []byte) (todos []Todo, dropped []error, err error) {
	var records []storedTodo
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, fmt.Errorf("decode todos: %w", err)
	}

	todos = make([]Todo, 0, len(records))
	for i, record := range records {
		deadline, err := parseStoredDeadline(record.Deadline)
		if err != nil {
			dropped = append(dropped, fmt.Errorf("todo %d (%s): %w", i, record.ID, err))
		}
		todos = append(todos, Todo{
			ID:       record.ID,
			Name:     record.Name,
			IsDone:   record.IsDone,
			Priority: record.Priority,
			Deadline: deadline,
		})
	}
	return todos, dropped, nil
}

// deadlineLayouts are tried in order when reading a stored deadline.
var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseStoredDeadline(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := ParseDeadline(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ParseDeadline parses a deadline in RFC 3339 or one of the shorter local
// forms ("2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02").
func ParseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for i, layout := range deadlineLayouts {
		var (
			parsed time.Time
			err    error
		)
		if i == 0 {
			parsed, err = time.Parse(layout, value)
		} else {
			parsed, err = time.ParseInLocation(layout, value, time.Local)
		}
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q", value)
}
