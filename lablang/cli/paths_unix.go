//go:build aix || dragonfly || freebsd || (js && wasm) || nacl || linux || netbsd || openbsd || solaris
// +build aix dragonfly freebsd js,wasm nacl linux netbsd openbsd solaris

package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir is $XDG_CONFIG_HOME/lablang or ~/.config/lablang.
func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	c = userDir(c, err, filepath.Join(a.home, ".config"))
	return filepath.Join(c, strings.ToLower(a.tag))
}

// LogDir is $XDG_CACHE_HOME/logs/lablang or ~/logs/lablang.
func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	c = userDir(c, err, a.home)
	return filepath.Join(c, "logs", strings.ToLower(a.tag))
}
