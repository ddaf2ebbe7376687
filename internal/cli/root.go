// Package cli implements the starlog CLI commands.
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iuga/starlog/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "starlog",
	Short: "Log machine-learning experiments to plain text files",
	Long: `Starlog keeps a captain's notebook of your experiments.
Every logged experiment gets its own text file under <folder>/<version>/,
and a one-line summary is appended to the master capitan.log.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
}

// resolveFolder picks the notebook folder for a command: the --folder flag
// when set, otherwise the configured default.
func resolveFolder(flag string) (string, error) {
	folder := flag
	if folder == "" {
		settings, err := config.LoadSettings()
		if err != nil {
			return "", err
		}
		folder = settings.Defaults.Folder
	}
	return filepath.Clean(folder), nil
}

// resolveVersion picks the experiment version for a command: the flag when
// set, then the folder's notebook.yaml default, then the global default.
func resolveVersion(flag, folder string) (string, error) {
	if flag != "" {
		return flag, nil
	}

	notebook, err := config.LoadNotebook(folder)
	if err != nil {
		return "", err
	}
	if notebook != nil && notebook.ExpVersion != "" {
		return notebook.ExpVersion, nil
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return "", err
	}
	return settings.Defaults.Version, nil
}
