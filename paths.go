package starlog

import (
	"fmt"
	"os"
	"path/filepath"
)

// CapitanFileName is the name of the master log inside a notebook folder.
const CapitanFileName = "capitan.log"

// ExperimentFileName returns the filename for an experiment, e.g.
// "exp.ml.1.0.3.txt". The tag segment is omitted when tag is empty.
func ExperimentFileName(tag, version string, number int) string {
	if tag == "" {
		return fmt.Sprintf("exp.%s.%d.txt", version, number)
	}
	return fmt.Sprintf("exp.%s.%s.%d.txt", tag, version, number)
}

// PlotFileName returns the filename for the index-th plot of an experiment,
// e.g. "exp.ml.1.0.3-a.png". Indexes map to letters a, b, c...
func PlotFileName(tag, version string, number, index int) string {
	letter := plotLetter(index)
	if tag == "" {
		return fmt.Sprintf("exp.%s.%d-%s.png", version, number, letter)
	}
	return fmt.Sprintf("exp.%s.%s.%d-%s.png", tag, version, number, letter)
}

// ExperimentPath returns the full path of an experiment file:
// <folder>/<version>/exp.<tag?>.<version>.<number>.txt
func ExperimentPath(folder, tag, version string, number int) string {
	return filepath.Join(folder, version, ExperimentFileName(tag, version, number))
}

// PlotPath returns the full path of the index-th plot file of an experiment.
func PlotPath(folder, tag, version string, number, index int) string {
	return filepath.Join(folder, version, PlotFileName(tag, version, number, index))
}

// CapitanPath returns the path of the master log: <folder>/capitan.log
func CapitanPath(folder string) string {
	return filepath.Join(folder, CapitanFileName)
}

// VersionDir returns the directory holding all experiments of a version.
func VersionDir(folder, version string) string {
	return filepath.Join(folder, version)
}

// EnsureVersionDir creates <folder>/<version>/ if it doesn't exist.
// It is idempotent and succeeds when the directory is already present.
func EnsureVersionDir(folder, version string) error {
	if err := os.MkdirAll(VersionDir(folder, version), 0o755); err != nil {
		return fmt.Errorf("create version dir: %w", err)
	}
	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// plotLetter maps a zero-based plot index to a suffix: a..z, then aa, ab...
func plotLetter(index int) string {
	s := ""
	for {
		s = string(rune('a'+index%26)) + s
		index = index/26 - 1
		if index < 0 {
			return s
		}
	}
}
