package cli

import (
	"os"
	"path/filepath"
)

// ConfigDir is %AppData%\LABLANG.
func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	return filepath.Join(userDir(c, err, a.home), a.tag)
}

// LogDir is %LocalAppData%\Logs\LABLANG.
func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	return filepath.Join(userDir(c, err, a.home), "Logs", a.tag)
}
