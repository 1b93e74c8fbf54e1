package cli

import (
	"os"
	"path/filepath"
)

// ConfigDir is ~/Library/Application Support/LABLANG.
func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	c = userDir(c, err, filepath.Join(a.home, "Library", "Application Support"))
	return filepath.Join(c, a.tag)
}

// LogDir is ~/Library/Application Support/Logs/LABLANG.
func (a appPaths) LogDir() string {
	return filepath.Join(a.home, "Library", "Application Support", "Logs", a.tag)
}
