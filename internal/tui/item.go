package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/amonks/td/internal/ui"
	"github.com/amonks/td/todo"
)

type todoItem struct {
	todo todo.Todo
}

func (item todoItem) FilterValue() string {
	return item.todo.Name
}

type todoItemDelegate struct {
	now func() time.Time
}

func (d todoItemDelegate) Height() int                             { return 1 }
func (d todoItemDelegate) Spacing() int                            { return 0 }
func (d todoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d todoItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(todoItem)
	if !ok {
		return
	}

	line := formatTodoItem(item.todo, m.Width(), d.now())
	style := normalStyle
	switch {
	case index == m.Index():
		style = selectedStyle
	case item.todo.IsOverdue(d.now()):
		style = overdueStyle
	case item.todo.IsDone:
		style = doneStyle
	}
	fmt.Fprint(w, style.Render(line))
}

// formatTodoItem lays out one row: checkbox, stars, name, deadline.
func formatTodoItem(t todo.Todo, width int, now time.Time) string {
	check := "[ ]"
	if t.IsDone {
		check = "[x]"
	}
	stars := runewidth.FillRight(todo.PriorityStars(t.Priority), todo.PriorityMax)
	name := runewidth.FillRight(ui.TruncateName(t.Name, todo.MaxNameLength), todo.MaxNameLength)

	deadline := ui.FormatDeadline(t.Deadline)
	if due := ui.FormatDue(t.Deadline, now); due != "" {
		deadline += " (" + due + ")"
	}

	line := strings.Join([]string{check, stars, name, deadline}, "  ")
	if width <= 0 {
		return line
	}
	return runewidth.Truncate(line, width, "...")
}
