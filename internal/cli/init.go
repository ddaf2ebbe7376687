package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iuga/starlog/internal/config"
	"github.com/iuga/starlog/internal/notebook"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a notebook folder",
	Long: `Initialize a starlog notebook in the given folder (default: the
configured default folder).

This will:
  1. Create the folder if it doesn't exist
  2. Write its notebook.yaml metadata
  3. Register the notebook in ~/.starlog/notebooks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		path = settings.Defaults.Folder
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if config.NotebookExists(abs) {
		return fmt.Errorf("already a starlog notebook: %s", abs)
	}

	reader := bufio.NewReader(os.Stdin)

	defaultName := filepath.Base(abs)
	fmt.Printf("Notebook name [%s]: ", defaultName)
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}

	fmt.Print("Default experiment version [1.0]: ")
	expVersion, _ := reader.ReadString('\n')
	expVersion = strings.TrimSpace(expVersion)
	if expVersion == "" {
		expVersion = "1.0"
	}

	mgr := notebook.NewManager()
	nb, err := mgr.CreateNotebook(notebook.CreateOptions{
		Path:       abs,
		Name:       name,
		ExpVersion: expVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to create notebook: %w", err)
	}

	fmt.Printf("\n%s\n", styleSuccess.Render(fmt.Sprintf("Notebook '%s' initialized.", nb.Name)))
	fmt.Printf("  %s %s\n", styleLabel.Render("ID:"), styleValue.Render(nb.NotebookID))
	fmt.Printf("  %s %s\n", styleLabel.Render("Path:"), styleValue.Render(abs))
	fmt.Println(styleHint.Render("\nNext steps:"))
	fmt.Println(styleHint.Render("  - Run 'starlog log -m \"...\"' to record your first experiment"))
	fmt.Println(styleHint.Render("  - Run 'starlog list' to browse logged experiments"))

	return nil
}
