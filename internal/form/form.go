// Package form holds the state behind the add/edit form shared by the TUI
// and the CLI editor flow.
//
// A Form is either closed, adding a new todo, or editing an existing one. The
// mode decides whether Submit calls Store.Add or Store.Edit.
package form

import (
	"errors"
	"strings"
	"time"

	"github.com/amonks/td/todo"
)

// Mode says what a submit will do.
type Mode int

const (
	ModeClosed Mode = iota
	ModeAdding
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeAdding:
		return "adding"
	case ModeEditing:
		return "editing"
	default:
		return "closed"
	}
}

// ErrClosed is returned by Submit when the form is not open.
var ErrClosed = errors.New("form is not open")

// Store is the subset of *todo.Store the form submits to.
type Store interface {
	Add(draft todo.Draft) (todo.Todo, error)
	Edit(id string, draft todo.Draft) (todo.Todo, error)
}

// Form is the draft being edited plus the live name error.
type Form struct {
	mode      Mode
	editingID string
	draft     todo.Draft
	nameError string
}

// New returns a closed form.
func New() *Form {
	return &Form{draft: todo.NewDraft()}
}

// Mode returns the current mode.
func (f *Form) Mode() Mode {
	return f.mode
}

// Open reports whether the form is adding or editing.
func (f *Form) Open() bool {
	return f.mode != ModeClosed
}

// EditingID returns the ID of the todo being edited, or "".
func (f *Form) EditingID() string {
	if f.mode != ModeEditing {
		return ""
	}
	return f.editingID
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() todo.Draft {
	d := f.draft
	if d.Deadline != nil {
		value := *d.Deadline
		d.Deadline = &value
	}
	return d
}

// NameError returns the message to show under the name field, or "".
func (f *Form) NameError() string {
	return f.nameError
}

// BeginAdd opens the form with an empty draft.
func (f *Form) BeginAdd() {
	f.mode = ModeAdding
	f.editingID = ""
	f.draft = todo.NewDraft()
	f.nameError = ""
}

// BeginEdit opens the form with t's fields.
func (f *Form) BeginEdit(t todo.Todo) {
	f.mode = ModeEditing
	f.editingID = t.ID
	f.draft = todo.DraftFrom(t)
	f.nameError = ""
}

// SetName updates the name and recomputes the live error.
func (f *Form) SetName(name string) {
	f.draft.Name = name
	f.nameError = todo.NameError(name)
}

// SetPriority updates the priority.
func (f *Form) SetPriority(priority int) {
	f.draft.Priority = priority
}

// SetDeadline updates the deadline. nil clears it.
func (f *Form) SetDeadline(deadline *time.Time) {
	if deadline == nil {
		f.draft.Deadline = nil
		return
	}
	value := *deadline
	f.draft.Deadline = &value
}

// CanSubmit reports whether the submit control should be enabled.
func (f *Form) CanSubmit() bool {
	return f.Open() && f.nameError == "" && strings.TrimSpace(f.draft.Name) != ""
}

// Submit sends the draft to store. On success the form resets and closes.
// On a validation failure the draft is kept and the message is recorded
// as the name error; other errors leave the form as it was.
func (f *Form) Submit(store Store) (todo.Todo, error) {
	var (
		saved todo.Todo
		err   error
	)
	switch f.mode {
	case ModeAdding:
		saved, err = store.Add(f.Draft())
	case ModeEditing:
		saved, err = store.Edit(f.editingID, f.Draft())
	default:
		return todo.Todo{}, ErrClosed
	}

	if err != nil {
		var verr *todo.ValidationError
		if errors.As(err, &verr) {
			f.nameError = verr.Message
		}
		return todo.Todo{}, err
	}

	f.reset()
	return saved, nil
}

// Cancel closes the form and clears the error.
func (f *Form) Cancel() {
	f.reset()
}

func (f *Form) reset() {
	f.mode = ModeClosed
	f.editingID = ""
	f.draft = todo.NewDraft()
	f.nameError = ""
}
