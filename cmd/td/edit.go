package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/editor"
	"github.com/amonks/td/internal/form"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a todo's name, priority or deadline",
	Long: `Edit a todo's name, priority or deadline.

By default, opens $EDITOR on a TOML form when running interactively and no
edit flags are provided. Use --no-edit to skip the editor, or --edit to
force it.`,
	Aliases: []string{"update"},
	Args:    cobra.ExactArgs(1),
	RunE:    runEdit,
}

var (
	editName       string
	editPriority   int
	editDeadline   string
	editNoDeadline bool
	editEdit       bool
	editNoEdit     bool
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New name")
	editCmd.Flags().IntVarP(&editPriority, "priority", "p", 0, "New priority (1-3)")
	editCmd.Flags().StringVarP(&editDeadline, "deadline", "d", "", "New deadline (alias --due)")
	editCmd.Flags().BoolVar(&editNoDeadline, "no-deadline", false, "Remove the deadline")
	editCmd.Flags().BoolVarP(&editEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	editCmd.Flags().BoolVar(&editNoEdit, "no-edit", false, "Do not open $EDITOR")
	editCmd.MarkFlagsMutuallyExclusive("deadline", "no-deadline")
	addDeadlineFlagAliases(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, err := current.openStore()
	if err != nil {
		return err
	}
	id, err := store.Resolve(args[0])
	if err != nil {
		return err
	}
	existing, err := store.Get(id)
	if err != nil {
		return err
	}

	f := form.New()
	f.BeginEdit(existing)
	if cmd.Flags().Changed("name") {
		f.SetName(editName)
	}
	if cmd.Flags().Changed("priority") {
		f.SetPriority(editPriority)
	}
	if cmd.Flags().Changed("deadline") {
		if err := setFormDeadline(f, editDeadline); err != nil {
			return err
		}
	}
	if editNoDeadline {
		f.SetDeadline(nil)
	}

	hasFlags := hasChangedFlags(cmd, "name", "priority", "deadline", "no-deadline")
	if shouldUseEditor(hasFlags, editEdit, editNoEdit, editor.IsInteractive()) {
		if err := editor.EditForm(f); err != nil {
			return err
		}
	} else if !hasFlags {
		return fmt.Errorf("nothing to change: pass --name, --priority, --deadline or --no-deadline")
	}

	updated, err := f.Submit(store)
	if err != nil {
		return err
	}
	if err := checkSaved(store); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", store.IDIndex().Short(updated.ID), updated.Name)
	return nil
}

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}
