package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iuga/starlog"
)

var (
	showTag    string
	showFolder string
)

var showCmd = &cobra.Command{
	Use:   "show <version> <number>",
	Short: "Print a logged experiment",
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showTag, "tag", "t", "", "experiment tag")
	showCmd.Flags().StringVarP(&showFolder, "folder", "f", "", "notebook folder (default: global setting)")
}

func runShow(cmd *cobra.Command, args []string) error {
	folder, err := resolveFolder(showFolder)
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid experiment number: %s", args[1])
	}

	entry, body, err := starlog.ReadExperiment(folder, showTag, args[0], number)
	if err != nil {
		return err
	}

	tag := ""
	if entry.Tag != "" {
		tag = styleTag.Render("[" + entry.Tag + "] ")
	}
	fmt.Printf("%s %s%s\n",
		styleBrand.Render(fmt.Sprintf("Experiment v:%s.%d", entry.Version, entry.Number)),
		tag,
		styleLabel.Render(entry.Stardate),
	)
	fmt.Println(entry.Description)
	fmt.Print(body)

	return nil
}
