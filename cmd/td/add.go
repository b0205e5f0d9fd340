package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/editor"
	"github.com/amonks/td/internal/form"
	"github.com/amonks/td/todo"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a todo",
	Long: `Add a todo to the end of the list.

Names must be 2 to 32 characters. Priority is 1 (low) to 3 (high) and
defaults to 3. Deadlines accept "2006-01-02 15:04", "2006-01-02" or RFC 3339.

With no name, td opens $EDITOR on a small TOML form when running
interactively. Use --no-edit to skip the editor, or --edit to force it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addPriority int
	addDeadline string
	addEdit     bool
	addNoEdit   bool
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().IntVarP(&addPriority, "priority", "p", todo.PriorityHigh, "Priority (1=low, 2=medium, 3=high)")
	addCmd.Flags().StringVarP(&addDeadline, "deadline", "d", "", "Deadline (alias --due)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no name given)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")
	addDeadlineFlagAliases(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	f := form.New()
	f.BeginAdd()
	if len(args) > 0 {
		f.SetName(args[0])
	}
	if cmd.Flags().Changed("priority") {
		f.SetPriority(addPriority)
	}
	if cmd.Flags().Changed("deadline") {
		if err := setFormDeadline(f, addDeadline); err != nil {
			return err
		}
	}

	if shouldUseEditor(len(args) > 0, addEdit, addNoEdit, editor.IsInteractive()) {
		if err := editor.EditForm(f); err != nil {
			return err
		}
	} else if len(args) == 0 {
		return fmt.Errorf("a name is required (or run interactively to use $EDITOR)")
	}

	store, err := current.openStore()
	if err != nil {
		return err
	}
	created, err := f.Submit(store)
	if err != nil {
		return err
	}
	if err := checkSaved(store); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s\n", store.IDIndex().Short(created.ID), created.Name)
	return nil
}

// setFormDeadline parses value into the form. An empty value clears it.
func setFormDeadline(f *form.Form, value string) error {
	if strings.TrimSpace(value) == "" {
		f.SetDeadline(nil)
		return nil
	}
	deadline, err := todo.ParseDeadline(value)
	if err != nil {
		return err
	}
	f.SetDeadline(&deadline)
	return nil
}
