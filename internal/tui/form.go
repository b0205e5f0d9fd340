package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amonks/td/internal/form"
	"github.com/amonks/td/internal/ui"
	"github.com/amonks/td/todo"
)

type formField int

const (
	fieldName formField = iota
	fieldPriority
	fieldDeadline
	fieldCount
)

// formView is the modal bound to a form.Form. The Form holds the draft; the
// text inputs only hold what is being typed.
type formView struct {
	form          *form.Form
	focus         formField
	name          textinput.Model
	deadline      textinput.Model
	deadlineError string
}

func newFormView(f *form.Form) formView {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "what needs doing"
	name.CharLimit = todo.MaxNameLength * 2

	deadline := textinput.New()
	deadline.Prompt = ""
	deadline.Placeholder = "2006-01-02 15:04"
	deadline.CharLimit = len("2006-01-02 15:04")

	return formView{form: f, name: name, deadline: deadline}
}

// open loads the form's draft into the inputs and focuses the name.
func (v formView) open() formView {
	draft := v.form.Draft()
	v.name.SetValue(draft.Name)
	v.name.CursorEnd()
	v.deadline.SetValue("")
	if draft.Deadline != nil {
		v.deadline.SetValue(ui.FormatDeadline(draft.Deadline))
	}
	v.deadlineError = ""
	return v.setFocus(fieldName)
}

func (v formView) setFocus(field formField) formView {
	v.focus = field
	v.name.Blur()
	v.deadline.Blur()
	switch field {
	case fieldName:
		v.name.Focus()
	case fieldDeadline:
		v.deadline.Focus()
	}
	return v
}

type formResult int

const (
	formContinue formResult = iota
	formSubmit
	formCancel
)

// Update handles a key while the form is open.
func (v formView) Update(msg tea.KeyMsg) (formView, tea.Cmd, formResult) {
	switch msg.String() {
	case "esc":
		return v, nil, formCancel
	case "enter":
		return v, nil, formSubmit
	case "tab", "down":
		return v.setFocus((v.focus + 1) % fieldCount), nil, formContinue
	case "shift+tab", "up":
		return v.setFocus((v.focus + fieldCount - 1) % fieldCount), nil, formContinue
	}

	var cmd tea.Cmd
	switch v.focus {
	case fieldName:
		v.name, cmd = v.name.Update(msg)
		v.form.SetName(v.name.Value())
	case fieldPriority:
		v.updatePriority(msg.String())
	case fieldDeadline:
		v.deadline, cmd = v.deadline.Update(msg)
		v.deadlineError = ""
	}
	return v, cmd, formContinue
}

func (v formView) updatePriority(key string) {
	priority := v.form.Draft().Priority
	switch key {
	case "left", "h", "-":
		priority = max(todo.PriorityMin, priority-1)
	case "right", "l", "+":
		priority = min(todo.PriorityMax, priority+1)
	case "1", "2", "3":
		priority = int(key[0] - '0')
	}
	v.form.SetPriority(priority)
}

// commitDeadline parses the deadline input into the form. It reports false
// and records a message when the text is not a deadline.
func (v *formView) commitDeadline() bool {
	value := strings.TrimSpace(v.deadline.Value())
	if value == "" {
		v.form.SetDeadline(nil)
		return true
	}
	parsed, err := todo.ParseDeadline(value)
	if err != nil {
		v.deadlineError = "use 2006-01-02 15:04 or 2006-01-02"
		return false
	}
	v.form.SetDeadline(&parsed)
	return true
}

// submit sends the form to store. It returns the error for the status line;
// validation errors stay on the form.
func (v *formView) submit(store form.Store) (todo.Todo, error) {
	if !v.commitDeadline() {
		return todo.Todo{}, errors.New("invalid deadline")
	}
	if !v.form.CanSubmit() {
		return todo.Todo{}, errors.New("name " + v.nameError())
	}
	return v.form.Submit(store)
}

func (v formView) nameError() string {
	if msg := v.form.NameError(); msg != "" {
		return msg
	}
	if strings.TrimSpace(v.form.Draft().Name) == "" {
		return todo.NameBlankMessage
	}
	return ""
}

func (v formView) View() string {
	title := "New todo"
	action := "Add"
	if v.form.Mode() == form.ModeEditing {
		title = "Edit todo"
		action = "Save"
	}

	lines := []string{headerStyle.Render(title), ""}
	lines = append(lines, v.label(fieldName, "Name")+" "+v.name.View())
	if msg := v.form.NameError(); msg != "" {
		lines = append(lines, fieldErrorStyle.Render("  "+msg))
	}

	stars := todo.PriorityStars(v.form.Draft().Priority)
	lines = append(lines, v.label(fieldPriority, "Priority")+" "+stars+valueMuted.Render(" ("+todo.PriorityName(v.form.Draft().Priority)+")"))

	lines = append(lines, v.label(fieldDeadline, "Deadline")+" "+v.deadline.View())
	if v.deadlineError != "" {
		lines = append(lines, fieldErrorStyle.Render("  "+v.deadlineError))
	}

	button := "[" + action + "]"
	if v.form.CanSubmit() {
		button = buttonStyle.Render(button)
	} else {
		button = valueMuted.Render(button)
	}
	lines = append(lines, "", button+" "+valueMuted.Render("[Cancel: esc]"))
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func (v formView) label(field formField, text string) string {
	text = ui.PadRight(text+":", len("Priority:"))
	if v.focus == field {
		return focusedLabel.Render(text)
	}
	return labelStyle.Render(text)
}
