// Package listflags holds flags shared by commands that show the todo list.
package listflags

import (
	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/validation"
	"github.com/amonks/td/todo"
)

// AddSortFlag adds a --sort flag with shell completion for the sort modes.
func AddSortFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "sort", "s", "", "Sort or filter mode ("+validation.FormatValidValues(todo.SortModes())+")")
	_ = cmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
		modes := todo.SortModes()
		completions := make([]cobra.Completion, 0, len(modes))
		for _, mode := range modes {
			completions = append(completions, cobra.Completion(mode))
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	})
}

// ResolveSort picks the flag value when set, then the configured default.
func ResolveSort(flagValue, configured string) (todo.SortMode, error) {
	if flagValue != "" {
		return todo.ParseSortMode(flagValue)
	}
	return todo.ParseSortMode(configured)
}
