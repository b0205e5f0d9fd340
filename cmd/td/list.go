package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/ids"
	"github.com/amonks/td/internal/listflags"
	"github.com/amonks/td/internal/ui"
	"github.com/amonks/td/todo"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos",
	Long: `List todos as a table under a welcome line.

--sort picks the view: default (order added), deadline, priority,
incomplete or complete. Without --sort the [view] sort setting is used.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listSort string
	listJSON bool
)

func init() {
	rootCmd.AddCommand(listCmd)
	addListFlags(listCmd)
}

func addListFlags(cmd *cobra.Command) {
	listflags.AddSortFlag(cmd, &listSort)
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, _ []string) error {
	mode, err := current.sortMode(listSort)
	if err != nil {
		return err
	}
	store, err := current.openStore()
	if err != nil {
		return err
	}

	all := store.Todos()
	projected := todo.Project(all, mode)
	out := cmd.OutOrStdout()

	if listJSON {
		return writeJSON(out, projected)
	}

	now := current.now()
	styles := ui.NewStyles(out)
	fmt.Fprintln(out, styles.Header.Render(todo.Welcome(current.cfg.User.Name, all, now)))
	fmt.Fprintln(out)
	if len(projected) == 0 {
		fmt.Fprintln(out, emptyListMessage(mode))
		return nil
	}
	fmt.Fprint(out, formatTodoTable(projected, store.IDIndex().PrefixLengths(), styles, now))
	return nil
}

func writeJSON(w io.Writer, todos []todo.Todo) error {
	if todos == nil {
		todos = []todo.Todo{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(todos)
}

func emptyListMessage(mode todo.SortMode) string {
	switch mode {
	case todo.SortComplete:
		return "No completed todos."
	case todo.SortIncomplete:
		return "No incomplete todos."
	default:
		return "No todos found."
	}
}

// formatTodoTable renders todos with their unique ID prefixes highlighted.
// Overdue deadlines and names are drawn in the overdue style.
func formatTodoTable(todos []todo.Todo, prefixLengths map[string]int, styles ui.Styles, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "DONE", "PRI", "DEADLINE", "NAME"}, len(todos))

	for _, t := range todos {
		prefixLen := ui.PrefixLength(prefixLengths, t.ID)
		id := styles.HighlightID(ids.Short(t.ID, prefixLen), prefixLen)

		done := "[ ]"
		if t.IsDone {
			done = "[x]"
		}

		deadline := ui.FormatDeadline(t.Deadline)
		name := ui.TruncateTableCell(t.Name)
		if t.IsOverdue(now) {
			deadline = styles.Overdue.Render(deadline)
			name = styles.Overdue.Render(name)
		} else if t.IsDone {
			name = styles.Done.Render(name)
		}

		builder.AddRow([]string{id, done, todo.PriorityStars(t.Priority), deadline, name})
	}

	return builder.String()
}
