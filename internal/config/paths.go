// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

// GlobalDirName is the name of the global starlog directory.
const GlobalDirName = ".starlog"

// File names
const (
	SettingsFileName  = "settings.yaml"
	NotebooksFileName = "notebooks.yaml"
	NotebookFileName  = "notebook.yaml"
)

// GlobalDir returns the path to the global starlog directory (~/.starlog/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalNotebooksFile returns the path to the notebooks.yaml index file.
func GlobalNotebooksFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, NotebooksFileName), nil
}

// NotebookFile returns the path to a folder's notebook.yaml file.
func NotebookFile(folder string) string {
	return filepath.Join(folder, NotebookFileName)
}

// NotebookExists checks if a folder carries a notebook.yaml.
func NotebookExists(folder string) bool {
	return FileExists(NotebookFile(folder))
}

// EnsureGlobalDir creates the global starlog directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
