package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iuga/starlog"
)

var listFolder string

var listCmd = &cobra.Command{
	Use:     "list [version]",
	Aliases: []string{"ls"},
	Short:   "List logged experiments",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFolder, "folder", "f", "", "notebook folder (default: global setting)")
}

func runList(cmd *cobra.Command, args []string) error {
	folder, err := resolveFolder(listFolder)
	if err != nil {
		return err
	}

	var entries []*starlog.Entry
	if len(args) == 1 {
		entries, err = starlog.ListVersion(folder, args[0])
	} else {
		entries, err = starlog.ListExperiments(folder)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No experiments. Run 'starlog log' to record one.")
		return nil
	}

	currentVersion := ""
	for _, e := range entries {
		if e.Version != currentVersion {
			if currentVersion != "" {
				fmt.Println()
			}
			currentVersion = e.Version
			fmt.Printf("%s\n", styleBrand.Render("v:"+e.Version))
		}

		tag := ""
		if e.Tag != "" {
			tag = " " + styleTag.Render("["+e.Tag+"]")
		}
		fmt.Printf("  %s%s  %s  %s\n",
			styleValue.Render(fmt.Sprintf("#%d", e.Number)),
			tag,
			styleLabel.Render(e.Stardate),
			e.Description,
		)
	}

	return nil
}
