package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/amonks/td/internal/form"
	"github.com/amonks/td/todo"
)

// deadlineLayout is how deadlines are written into the editor file.
const deadlineLayout = "2006-01-02 15:04"

// TodoData represents the data used to render the TOML template.
type TodoData struct {
	// IsUpdate is true when editing an existing todo.
	IsUpdate bool
	// ID is the todo ID (only for updates).
	ID string
	// Name is the todo name.
	Name string
	// Priority is the todo priority (1-3).
	Priority int
	// Deadline is the formatted deadline, or "".
	Deadline string
}

// DataFromDraft creates TodoData for a draft. id is "" when adding.
func DataFromDraft(id string, d todo.Draft) TodoData {
	data := TodoData{
		IsUpdate: id != "",
		ID:       id,
		Name:     d.Name,
		Priority: d.Priority,
	}
	if d.Deadline != nil {
		data.Deadline = d.Deadline.In(time.Local).Format(deadlineLayout)
	}
	return data
}

var todoTemplate = template.Must(template.New("todo").Parse(`{{- if .IsUpdate }}# editing {{ .ID }}
{{ end -}}
name = {{ printf "%q" .Name }} # 2 to 32 characters
priority = {{ .Priority }} # 1=low, 2=medium, 3=high
deadline = {{ printf "%q" .Deadline }} # "2006-01-02 15:04", "2006-01-02", or "" for none
`))

// RenderTodoTOML renders the todo data as a TOML string for editing.
func RenderTodoTOML(data TodoData) (string, error) {
	var buf bytes.Buffer
	if err := todoTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTodo represents the parsed result from the TOML editor output.
type ParsedTodo struct {
	Name     string `toml:"name"`
	Priority int    `toml:"priority"`
	Deadline string `toml:"deadline"`
}

// ParseTodoTOML parses and validates the TOML content from the editor.
func ParseTodoTOML(content string) (todo.Draft, error) {
	var parsed ParsedTodo
	meta, err := toml.Decode(content, &parsed)
	if err != nil {
		return todo.Draft{}, fmt.Errorf("parse TOML: %w", err)
	}
	if !meta.IsDefined("priority") {
		parsed.Priority = todo.PriorityHigh
	}

	draft := todo.Draft{Name: parsed.Name, Priority: parsed.Priority}
	if strings.TrimSpace(parsed.Deadline) != "" {
		deadline, err := todo.ParseDeadline(parsed.Deadline)
		if err != nil {
			return todo.Draft{}, err
		}
		draft.Deadline = &deadline
	}

	if err := todo.ValidateDraft(draft); err != nil {
		return todo.Draft{}, err
	}
	return draft, nil
}

func createTodoTempFile() (*os.File, error) {
	return os.CreateTemp("", "td-todo-*.toml")
}

// EditForm opens the editor on the form's draft and writes the result back
// into the form. The form must already be open.
func EditForm(f *form.Form) error {
	if !f.Open() {
		return form.ErrClosed
	}

	draft, err := EditDraft(DataFromDraft(f.EditingID(), f.Draft()))
	if err != nil {
		return err
	}

	f.SetName(draft.Name)
	f.SetPriority(draft.Priority)
	f.SetDeadline(draft.Deadline)
	return nil
}

// EditDraft opens the editor with pre-populated data and returns the parsed
// draft.
func EditDraft(data TodoData) (todo.Draft, error) {
	content, err := RenderTodoTOML(data)
	if err != nil {
		return todo.Draft{}, err
	}

	tmpfile, err := createTodoTempFile()
	if err != nil {
		return todo.Draft{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return todo.Draft{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return todo.Draft{}, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return todo.Draft{}, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return todo.Draft{}, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTodoTOML(string(edited))
}
