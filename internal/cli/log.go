package cli

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iuga/starlog"
)

var (
	logDescription string
	logTag         string
	logVersion     string
	logNumber      int
	logFolder      string
	logTables      []string
)

var logCmd = &cobra.Command{
	Use:   "log [values...]",
	Short: "Log a new experiment",
	Long: `Log a new experiment to the notebook folder.

Positional arguments become text lines in the experiment file, in order.
An empty argument ("") inserts a blank line. Each --table file is attached
after the text values as a pretty-printed table (CSV, first row = headers).

The experiment number defaults to the next free number for the tag/version.`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVarP(&logDescription, "message", "m", "", "experiment description (required)")
	logCmd.Flags().StringVarP(&logTag, "tag", "t", "", "experiment tag (optional)")
	logCmd.Flags().StringVarP(&logVersion, "exp-version", "V", "", "experiment version (default: notebook/global setting)")
	logCmd.Flags().IntVarP(&logNumber, "number", "n", 0, "experiment number (default: next free)")
	logCmd.Flags().StringVarP(&logFolder, "folder", "f", "", "notebook folder (default: global setting)")
	logCmd.Flags().StringArrayVar(&logTables, "table", nil, "CSV file to attach as a table (repeatable)")
	_ = logCmd.MarkFlagRequired("message")
}

func runLog(cmd *cobra.Command, args []string) error {
	folder, err := resolveFolder(logFolder)
	if err != nil {
		return err
	}
	version, err := resolveVersion(logVersion, folder)
	if err != nil {
		return err
	}

	number := logNumber
	if number == 0 {
		number, err = starlog.NextNumber(folder, logTag, version)
		if err != nil {
			return err
		}
	}

	var values []starlog.Value
	for _, arg := range args {
		values = append(values, starlog.Text(arg))
	}
	for _, file := range logTables {
		table, err := readCSVTable(file)
		if err != nil {
			return err
		}
		values = append(values, table)
	}

	path, err := starlog.LogExperiment(folder, starlog.Experiment{
		Description: logDescription,
		Tag:         logTag,
		Version:     version,
		Number:      number,
	}, values...)
	if err != nil {
		if starlog.IsAlreadyExists(err) {
			fmt.Printf("%s %s\n",
				styleError.Render("Experiment already logged:"),
				styleValue.Render(fmt.Sprintf("v:%s.%d", version, number)),
			)
			fmt.Println(styleHint.Render("Pick another number or delete the file manually."))
		}
		return err
	}

	fmt.Printf("%s %s\n",
		styleSuccess.Render(fmt.Sprintf("Experiment v:%s.%d logged.", version, number)),
		styleHint.Render(path),
	)
	return nil
}

// readCSVTable loads a CSV file as a table value. The first record is the
// header row.
func readCSVTable(path string) (starlog.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return starlog.Value{}, fmt.Errorf("open table %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return starlog.Value{}, fmt.Errorf("parse table %s: %w", path, err)
	}
	if len(records) == 0 {
		return starlog.Value{}, fmt.Errorf("table %s: no rows", path)
	}

	return starlog.Table(records[0], records[1:]), nil
}
