// Package tui is the interactive td shell: a list of todos with keys to add,
// edit, complete, delete and re-sort them.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/amonks/td/internal/form"
	"github.com/amonks/td/internal/ui"
	"github.com/amonks/td/todo"
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalForm
	modalConfirmClear
)

// Options configures the TUI.
type Options struct {
	// UserName is shown in the welcome line.
	UserName string
	// Sort is the initial sort mode.
	Sort todo.SortMode
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// feed receives store snapshots through Store.Subscribe. The model rebuilds
// its list when version moves.
type feed struct {
	todos   []todo.Todo
	version int
}

type model struct {
	store       *todo.Store
	feed        *feed
	seen        int
	unsubscribe func()
	userName    string
	sort        todo.SortMode
	now         func() time.Time
	width       int
	height      int
	list        list.Model
	form        *form.Form
	formView    formView
	modal       modalKind
	status      string
	statusLevel statusLevel
}

// Run starts the TUI on store, which must already be loaded, and blocks
// until the user quits.
func Run(store *todo.Store, opts Options) error {
	if store == nil || !store.Loaded() {
		return todo.ErrNotLoaded
	}
	m := newModel(store, opts)
	defer m.unsubscribe()

	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newModel(store *todo.Store, opts Options) model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sort := opts.Sort
	if !sort.IsValid() {
		sort = todo.SortDefault
	}

	todoList := list.New(nil, todoItemDelegate{now: now}, 0, 0)
	todoList.SetShowTitle(false)
	todoList.SetShowStatusBar(false)
	todoList.SetFilteringEnabled(false)
	todoList.SetShowHelp(false)
	todoList.SetShowPagination(false)

	f := feed{todos: store.Todos()}
	unsubscribe := store.Subscribe(func(todos []todo.Todo) {
		f.todos = todos
		f.version++
	})

	todoForm := form.New()
	m := model{
		store:       store,
		feed:        &f,
		unsubscribe: unsubscribe,
		userName:    opts.UserName,
		sort:        sort,
		now:         now,
		list:        todoList,
		form:        todoForm,
		formView:    newFormView(todoForm),
	}
	m.rebuildList()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.modal {
		case modalForm:
			m, cmd = m.updateForm(msg)
		case modalHelp:
			m.modal = modalNone
		case modalConfirmClear:
			m = m.updateConfirmClear(msg)
		default:
			m, cmd = m.handleKey(msg)
		}
	}

	if m.feed.version != m.seen {
		m.rebuildList()
	}
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading todos..."
	}

	header := m.renderHeader()
	helpLine := helpBarStyle.Width(m.width).Render(ui.TruncateName(m.helpSummary(), m.width))
	statusLine := m.renderStatusLine()

	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = valueMuted.Render(m.emptyMessage())
	}

	view := strings.Join([]string{header, helpLine, body, statusLine}, "\n")
	if m.modal != modalNone {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
	}
	return view
}

func (m *model) resize() {
	listHeight := max(1, m.height-4)
	m.list.SetSize(m.width, listHeight)
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "?":
		m.modal = modalHelp
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "home", "g":
		m.list.Select(0)
	case "end", "G":
		m.list.Select(len(m.list.Items()) - 1)
	case "a":
		m.form.BeginAdd()
		m.formView = m.formView.open()
		m.modal = modalForm
	case "e", "enter":
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.form.BeginEdit(item)
		m.formView = m.formView.open()
		m.modal = modalForm
	case " ", "space", "x":
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		_, err := m.store.ToggleDone(item.ID, !item.IsDone)
		m.afterMutation(err, "")
	case "d", "delete":
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		err := m.store.Remove(item.ID)
		m.afterMutation(err, fmt.Sprintf("Deleted %q", item.Name))
	case "D":
		m.modal = modalConfirmClear
	case "s":
		m.sort = m.sort.Next()
		m.rebuildList()
		m.setStatus("Sorted by "+m.sort.Label(), statusInfo)
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (model, tea.Cmd) {
	updated, cmd, result := m.formView.Update(msg)
	m.formView = updated

	switch result {
	case formCancel:
		m.form.Cancel()
		m.modal = modalNone
	case formSubmit:
		editing := m.form.Mode() == form.ModeEditing
		saved, err := m.formView.submit(m.store)
		if err != nil {
			if errors.Is(err, todo.ErrTodoNotFound) {
				m.form.Cancel()
				m.modal = modalNone
			}
			m.setStatus(err.Error(), statusError)
			return m, cmd
		}
		m.modal = modalNone
		verb := "Added"
		if editing {
			verb = "Saved"
		}
		m.afterMutation(nil, fmt.Sprintf("%s %q", verb, saved.Name))
		m.rebuildList()
		m.selectID(saved.ID)
	}
	return m, cmd
}

func (m model) updateConfirmClear(msg tea.KeyMsg) model {
	m.modal = modalNone
	switch msg.String() {
	case "y", "Y", "enter":
		removed := m.store.RemoveCompleted()
		m.afterMutation(nil, fmt.Sprintf("Removed %d completed", removed))
	default:
		m.setStatus("Kept completed todos", statusInfo)
	}
	return m
}

// afterMutation reports the outcome of a store call on the status line.
// A missing todo is not an error worth more than a note.
func (m *model) afterMutation(err error, success string) {
	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		m.setStatus("That todo is gone", statusInfo)
	case err != nil:
		m.setStatus(err.Error(), statusError)
	case m.store.SaveErr() != nil:
		m.setStatus("Save failed: "+m.store.SaveErr().Error(), statusError)
	case success != "":
		m.setStatus(success, statusInfo)
	}
}

func (m *model) rebuildList() {
	selectedID := ""
	if item, ok := m.selected(); ok {
		selectedID = item.ID
	}

	projected := todo.Project(m.feed.todos, m.sort)
	items := make([]list.Item, 0, len(projected))
	for _, t := range projected {
		items = append(items, todoItem{todo: t})
	}
	m.list.SetItems(items)
	m.seen = m.feed.version

	if selectedID != "" {
		m.selectID(selectedID)
	}
	if len(items) > 0 && m.list.Index() >= len(items) {
		m.list.Select(len(items) - 1)
	}
}

func (m *model) selectID(id string) {
	for i, item := range m.list.Items() {
		if t, ok := item.(todoItem); ok && t.todo.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m *model) moveSelection(delta int) {
	count := len(m.list.Items())
	if count == 0 {
		return
	}
	index := min(max(m.list.Index()+delta, 0), count-1)
	m.list.Select(index)
}

func (m model) selected() (todo.Todo, bool) {
	item, ok := m.list.SelectedItem().(todoItem)
	if !ok {
		return todo.Todo{}, false
	}
	return item.todo, true
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m model) renderHeader() string {
	welcome := todo.Welcome(m.userName, m.feed.todos, m.now())
	tag := sortTagStyle.Render("sort: " + m.sort.Label())
	gap := max(1, m.width-ui.DisplayWidth(welcome)-ui.DisplayWidth(tag))
	return headerStyle.Render(welcome) + strings.Repeat(" ", gap) + tag
}

func (m model) renderStatusLine() string {
	if strings.TrimSpace(m.status) == "" {
		return ""
	}
	style := valueMuted
	switch m.statusLevel {
	case statusError:
		style = statusErrorStyle
	case statusInfo:
		style = statusInfoStyle
	}
	return style.Render(ui.TruncateName(m.status, m.width))
}

func (m model) helpSummary() string {
	return "a add | e edit | space done | d delete | D clear done | s sort | ? help | q quit"
}

func (m model) emptyMessage() string {
	switch m.sort {
	case todo.SortComplete:
		return "Nothing completed yet."
	case todo.SortIncomplete:
		return "All done!"
	default:
		return "No todos. Press a to add one."
	}
}

func (m model) modalView() string {
	switch m.modal {
	case modalForm:
		return m.formView.View()
	case modalConfirmClear:
		done := len(todo.Project(m.feed.todos, todo.SortComplete))
		message := fmt.Sprintf("Remove %d completed todos?", done)
		return modalStyle.Render(message + "\n\n" + buttonStyle.Render("[y] Remove") + " " + valueMuted.Render("[n] Keep"))
	default:
		return modalStyle.Render(m.helpContent())
	}
}

func (m model) helpContent() string {
	width := max(20, min(60, m.width-8))
	text := strings.Join([]string{
		"Keys",
		"",
		"j/k or arrows move the cursor. a opens a form for a new todo and e edits the selected one; in the form, tab moves between name, priority and deadline, enter saves and esc cancels.",
		"space toggles done. d deletes the selected todo and D removes every completed one after asking.",
		"s cycles the view through " + sortModeNames() + ".",
		"",
		"Press any key to close.",
	}, "\n")
	return wordwrap.String(text, width)
}

func sortModeNames() string {
	modes := todo.SortModes()
	names := make([]string, 0, len(modes))
	for _, mode := range modes {
		names = append(names, mode.Label())
	}
	return strings.Join(names, ", ")
}
