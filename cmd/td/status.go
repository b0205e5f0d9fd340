package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark todos as done",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetDone(cmd, args, true)
	},
}

var undoCmd = &cobra.Command{
	Use:     "undo <id>...",
	Short:   "Mark todos as not done",
	Aliases: []string{"reopen"},
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetDone(cmd, args, false)
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Short:   "Delete todos",
	Aliases: []string{"delete"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRemove,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every completed todo",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(doneCmd, undoCmd, rmCmd, clearCmd)
}

func runSetDone(cmd *cobra.Command, args []string, value bool) error {
	store, err := current.openStore()
	if err != nil {
		return err
	}
	targets, err := resolveIDs(store, args)
	if err != nil {
		return err
	}

	verb := "Done"
	if !value {
		verb = "Reopened"
	}
	for _, id := range targets {
		updated, err := store.ToggleDone(id, value)
		if err != nil {
			return err
		}
		if err := checkSaved(store); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", verb, store.IDIndex().Short(updated.ID), updated.Name)
	}
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, err := current.openStore()
	if err != nil {
		return err
	}
	targets, err := resolveIDs(store, args)
	if err != nil {
		return err
	}

	for _, id := range targets {
		existing, err := store.Get(id)
		if err != nil {
			return err
		}
		short := store.IDIndex().Short(existing.ID)
		if err := store.Remove(id); err != nil {
			return err
		}
		if err := checkSaved(store); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s: %s\n", short, existing.Name)
	}
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	store, err := current.openStore()
	if err != nil {
		return err
	}
	removed := store.RemoveCompleted()
	if err := checkSaved(store); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed %s\n", removed, pluralTodos(removed))
	return nil
}

func pluralTodos(n int) string {
	if n == 1 {
		return "todo"
	}
	return "todos"
}
