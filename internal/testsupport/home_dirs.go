package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/td/internal/paths"
)

// Home is a throwaway home directory with td's default layout.
type Home struct {
	Dir       string
	StateDir  string
	ConfigDir string
}

// NewHome creates td's state and config directories under dir.
func NewHome(dir string) (Home, error) {
	home := Home{
		Dir:       dir,
		StateDir:  filepath.Join(dir, ".local", "state", paths.AppName),
		ConfigDir: filepath.Join(dir, ".config", paths.AppName),
	}
	for _, d := range []string{home.StateDir, home.ConfigDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return Home{}, fmt.Errorf("create %s: %w", d, err)
		}
	}
	return home, nil
}

// ConfigPath is where td looks for the global config file.
func (h Home) ConfigPath() string {
	return filepath.Join(h.ConfigDir, "config.toml")
}

// SetupTestHome points HOME at a fresh temp directory for the rest of the test.
func SetupTestHome(t testing.TB) Home {
	t.Helper()

	home, err := NewHome(t.TempDir())
	if err != nil {
		t.Fatalf("setup home dir: %v", err)
	}
	t.Setenv("HOME", home.Dir)
	return home
}
