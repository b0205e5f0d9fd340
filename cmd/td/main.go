// Package main implements the td CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	current.close()
	if err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "td",
	Short: "td - a small local to-do list",
	Long: `td keeps a single to-do list on this machine.

Run td with no arguments to list todos, or td tui for the interactive view.
Todos are referred to by any unique prefix of their ID.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
	RunE:              runList,
	Args:              cobra.NoArgs,
}

var (
	rootConfigPath string
	rootStateDir   string
	rootLogLevel   string
	rootEphemeral  bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfigPath, "config", "", "Global config file (default ~/.config/td/config.toml)")
	flags.StringVar(&rootStateDir, "state-dir", "", "Directory holding the todo list (default ~/.local/state/td)")
	flags.StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&rootEphemeral, "ephemeral", false, "Keep todos in memory only; nothing is saved")

	addListFlags(rootCmd)
}
