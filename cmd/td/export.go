package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/amonks/td/internal/listflags"
	"github.com/amonks/td/internal/markdown"
	"github.com/amonks/td/internal/validation"
	"github.com/amonks/td/todo"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the todo list as a markdown checklist",
	Long: `Print the todo list as a markdown checklist.

With --render the markdown is formatted for the terminal.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportSort   string
	exportRender bool
	exportStyle  string
	exportWidth  int
)

var exportStyles = []string{markdown.StyleASCII, markdown.StyleDark, markdown.StyleLight}

func init() {
	rootCmd.AddCommand(exportCmd)

	listflags.AddSortFlag(exportCmd, &exportSort)
	exportCmd.Flags().BoolVarP(&exportRender, "render", "r", false, "Format the markdown for the terminal")
	exportCmd.Flags().StringVar(&exportStyle, "style", markdown.StyleASCII, "Render style ("+validation.FormatValidValues(exportStyles)+")")
	exportCmd.Flags().IntVar(&exportWidth, "width", 0, "Render width (default terminal width, or 80)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	mode, err := current.sortMode(exportSort)
	if err != nil {
		return err
	}
	if err := validation.CheckOneOf(errInvalidStyle, exportStyle, exportStyles); err != nil {
		return err
	}
	store, err := current.openStore()
	if err != nil {
		return err
	}

	all := store.Todos()
	now := current.now()
	doc := markdown.Checklist(todo.Project(all, mode), markdown.ChecklistOptions{
		Title:   "Todos",
		Summary: todo.Welcome(current.cfg.User.Name, all, now),
		Now:     now,
	})

	out := cmd.OutOrStdout()
	if !exportRender {
		_, err := fmt.Fprint(out, doc)
		return err
	}
	rendered := markdown.Render(exportRenderWidth(), exportStyle, []byte(doc))
	_, err = fmt.Fprintln(out, string(rendered))
	return err
}

var errInvalidStyle = errors.New("invalid render style")

func exportRenderWidth() int {
	if exportWidth > 0 {
		return exportWidth
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
