package markdown

import (
	"strings"
	"time"

	"github.com/amonks/td/todo"
)

// ChecklistOptions controls Checklist output.
type ChecklistOptions struct {
	// Title is the level-one heading. Empty omits it.
	Title string
	// Summary is a paragraph shown under the title. Empty omits it.
	Summary string
	// Now decides which deadlines are overdue.
	Now time.Time
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	"#", `\#`,
)

// Escape backslash-escapes markdown punctuation in plain text.
func Escape(value string) string {
	return escaper.Replace(value)
}

// Checklist renders todos as a GitHub-style task list, one item per todo, in
// the order given.
func Checklist(todos []todo.Todo, opts ChecklistOptions) string {
	var b strings.Builder
	if opts.Title != "" {
		b.WriteString("# ")
		b.WriteString(Escape(opts.Title))
		b.WriteString("\n\n")
	}
	if opts.Summary != "" {
		b.WriteString(Escape(opts.Summary))
		b.WriteString("\n\n")
	}
	if len(todos) == 0 {
		b.WriteString("_Nothing to do._\n")
		return b.String()
	}

	for _, t := range todos {
		mark := " "
		if t.IsDone {
			mark = "x"
		}
		b.WriteString("- [")
		b.WriteString(mark)
		b.WriteString("] ")
		b.WriteString(Escape(t.Name))
		b.WriteString(" ")
		b.WriteString(todo.PriorityStars(t.Priority))
		if t.Deadline != nil {
			b.WriteString(" (due ")
			b.WriteString(t.Deadline.In(time.Local).Format("2006-01-02 15:04"))
			if t.IsOverdue(opts.Now) {
				b.WriteString(", **overdue**")
			}
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}
