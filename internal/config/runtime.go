package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const runtimeDirName = "reachout"

// GetRuntimePath returns the directory holding .env, rules.yaml and the REPL history.
func GetRuntimePath() string {
	path := os.Getenv("REACH_RUNTIME_PATH")
	if path == "" {
		return filepath.Join(xdg.ConfigHome, runtimeDirName)
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
