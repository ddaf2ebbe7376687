package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iuga/starlog/internal/watcher"
)

var watchFolder string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow a notebook folder and print new entries as they land",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFolder, "folder", "f", "", "notebook folder (default: global setting)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	folder, err := resolveFolder(watchFolder)
	if err != nil {
		return err
	}
	if _, err := os.Stat(folder); err != nil {
		return fmt.Errorf("notebook folder %s: %w", folder, err)
	}

	w, err := watcher.New(folder)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Printf("%s %s\n", styleBrand.Render("Watching"), styleValue.Render(folder))
	fmt.Println(styleHint.Render("Press Ctrl+C to stop."))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-sigCh:
			return nil
		case event := <-w.Events():
			printWatchEvent(event)
		}
	}
}

func printWatchEvent(event watcher.Event) {
	switch event.Type {
	case watcher.EventExperimentCreated:
		fmt.Printf("%s %s\n", styleSuccess.Render("new experiment"), event.Path)
	case watcher.EventPlotCreated:
		fmt.Printf("%s %s\n", styleSuccess.Render("new plot      "), event.Path)
	case watcher.EventCapitanAppended:
		fmt.Printf("%s %s\n", styleLabel.Render("capitan entry "), event.Path)
	}
}
