// Package markdown renders todo lists as markdown checklists and formats
// markdown for the terminal with glamour.
package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

type rendererKey struct {
	width int
	style string
}

var (
	rendererMu sync.Mutex
	renderers  = map[rendererKey]renderer{}
)

// Style names accepted by Render. StyleASCII is used for anything else.
const (
	StyleASCII = "ascii"
	StyleDark  = "dark"
	StyleLight = "light"
)

// Render formats markdown text for terminal output at the given width. If
// glamour fails the input is returned unchanged.
func Render(width int, style string, input []byte) []byte {
	value := strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(string(input))
	value = strings.TrimRight(value, "\n")
	if strings.TrimSpace(value) == "" {
		return nil
	}
	width = max(width, 1)

	rendered := value
	if r := markdownRenderer(width, style); r != nil {
		if formatted, err := safeRender(r, value); err == nil {
			rendered = formatted
		}
	}
	rendered = strings.TrimRight(rendered, "\n")
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	return []byte(rendered)
}

func safeRender(r renderer, value string) (out string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("render markdown: %v", recovered)
		}
	}()
	return r.Render(value)
}

func markdownRenderer(width int, style string) renderer {
	key := rendererKey{width: width, style: style}

	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[key]; ok {
		return cached
	}

	config := styles.ASCIIStyleConfig
	switch style {
	case StyleDark:
		config = styles.DarkStyleConfig
	case StyleLight:
		config = styles.LightStyleConfig
	}
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(config),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[key] = created
	return created
}
