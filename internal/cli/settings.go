package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iuga/starlog/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show or change global settings",
	RunE:    runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting (keys: folder, version)",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", styleBrand.Render("Defaults"))
	fmt.Printf("  %s  %s\n", styleLabel.Render("folder"), styleValue.Render(settings.Defaults.Folder))
	fmt.Printf("  %s %s\n", styleLabel.Render("version"), styleValue.Render(settings.Defaults.Version))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "folder":
		settings.Defaults.Folder = value
	case "version":
		settings.Defaults.Version = value
	default:
		return fmt.Errorf("unknown setting: %s (expected 'folder' or 'version')", key)
	}

	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("%s %s = %s\n", styleSuccess.Render("Updated"), key, styleValue.Render(value))
	return nil
}
