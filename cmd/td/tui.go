package main

import (
	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/listflags"
	"github.com/amonks/td/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive todo list",
	Long: `Open the interactive todo list.

Press ? inside for the key bindings.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var tuiSort string

func init() {
	rootCmd.AddCommand(tuiCmd)
	listflags.AddSortFlag(tuiCmd, &tuiSort)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	mode, err := current.sortMode(tuiSort)
	if err != nil {
		return err
	}
	store, err := current.openSharedStore()
	if err != nil {
		return err
	}
	return tui.Run(store, tui.Options{
		UserName: current.cfg.User.Name,
		Sort:     mode,
		Now:      current.now,
	})
}
