package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// AppPaths locates the files lablang reads its configuration from and
// writes its traces to.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	ConfigFile() string                // path of the YAML configuration file
	LogDestination(dest string) string // trace destination URL for a configured value
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. The configuration file is named after appTag, in lower case,
// e.g. "lablang.yaml".
func DefaultAppPaths(appTag string) (AppPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return appPaths{tag: appTag, home: home}, nil
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

func (a appPaths) ConfigFile() string {
	dir := a.ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, strings.ToLower(a.tag)+".yaml")
}

// LogDestination turns a configured trace destination into a URL. A plain
// file name is located in the log directory, a path is taken relative to
// the working directory. Values containing "://" are returned unchanged.
func (a appPaths) LogDestination(dest string) string {
	if dest == "" || strings.Contains(dest, "://") {
		return dest
	}
	if !strings.ContainsRune(dest, filepath.Separator) && !strings.ContainsRune(dest, '/') {
		return "file://" + filepath.Join(a.LogDir(), dest)
	}
	if abs, err := filepath.Abs(dest); err == nil {
		dest = abs
	}
	return "file://" + dest
}

// userDir returns dir, or fallback if dir could not be determined.
func userDir(dir string, err error, fallback string) string {
	if err != nil || dir == "" {
		return fallback
	}
	return dir
}
