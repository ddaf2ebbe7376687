package starlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Entry is the parsed header of a stored experiment file.
type Entry struct {
	Tag         string
	Version     string
	Number      int
	Stardate    string
	Description string
	Path        string
}

// CapitanEntry is one two-line record of the capitan log.
type CapitanEntry struct {
	Version     string
	Number      int
	Stardate    string
	Description string
}

// ListExperiments scans every version directory under folder and returns the
// parsed headers of all experiment files, sorted by version then number.
func ListExperiments(folder string) ([]*Entry, error) {
	dirEntries, err := os.ReadDir(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read folder: %w", err)
	}

	var entries []*Entry
	for _, d := range dirEntries {
		if !d.IsDir() {
			continue
		}
		versionEntries, err := ListVersion(folder, d.Name())
		if err != nil {
			return nil, err
		}
		entries = append(entries, versionEntries...)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Version != entries[j].Version {
			return entries[i].Version < entries[j].Version
		}
		return entries[i].Number < entries[j].Number
	})

	return entries, nil
}

// ListVersion returns the parsed headers of all experiment files of one
// version, sorted by number.
func ListVersion(folder, version string) ([]*Entry, error) {
	dir := VersionDir(folder, version)
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read version dir: %w", err)
	}

	var entries []*Entry
	for _, d := range dirEntries {
		if d.IsDir() {
			continue
		}
		tag, number, ok := parseExperimentName(d.Name(), version)
		if !ok {
			continue
		}

		entry, err := parseHeader(filepath.Join(dir, d.Name()))
		if err != nil {
			continue
		}
		entry.Tag = tag
		entry.Version = version
		entry.Number = number
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Number < entries[j].Number
	})

	return entries, nil
}

// ReadExperiment returns the parsed header and the full body (everything
// after the description line) of a stored experiment.
func ReadExperiment(folder, tag, version string, number int) (*Entry, string, error) {
	path := ExperimentPath(folder, tag, version, number)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("experiment not found: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < headerLines {
		return nil, "", fmt.Errorf("experiment file %s: truncated header", path)
	}

	entry := &Entry{
		Tag:         tag,
		Version:     version,
		Number:      number,
		Stardate:    strings.TrimPrefix(lines[1], stardatePrefix),
		Description: lines[2],
		Path:        path,
	}
	body := strings.Join(lines[headerLines:], "\n")
	return entry, body, nil
}

// ReadCapitanLog parses <folder>/capitan.log into its entries. A missing
// file yields no entries and no error.
func ReadCapitanLog(folder string) ([]CapitanEntry, error) {
	f, err := os.Open(CapitanPath(folder))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open capitan log: %w", err)
	}
	defer f.Close()

	var entries []CapitanEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entry, ok := parseCapitanHeader(scanner.Text())
		if !ok {
			continue
		}
		if scanner.Scan() {
			entry.Description = strings.TrimPrefix(scanner.Text(), "    ")
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read capitan log: %w", err)
	}

	return entries, nil
}

// NextNumber returns the lowest unused experiment number for (tag, version),
// starting at 1.
func NextNumber(folder, tag, version string) (int, error) {
	entries, err := ListVersion(folder, version)
	if err != nil {
		return 0, err
	}

	next := 1
	for _, e := range entries {
		if e.Tag == tag && e.Number >= next {
			next = e.Number + 1
		}
	}
	return next, nil
}

const (
	headerLines    = 3
	stardatePrefix = "Stardate: "
)

// parseExperimentName extracts (tag, number) from a filename like
// "exp.ml.1.0.3.txt", given the version the directory belongs to.
func parseExperimentName(name, version string) (string, int, bool) {
	if !strings.HasPrefix(name, "exp.") || !strings.HasSuffix(name, ".txt") {
		return "", 0, false
	}
	mid := strings.TrimSuffix(strings.TrimPrefix(name, "exp."), ".txt")

	i := strings.LastIndex(mid, ".")
	if i < 0 {
		return "", 0, false
	}
	number, err := strconv.Atoi(mid[i+1:])
	if err != nil || number < 0 {
		return "", 0, false
	}

	rest := mid[:i]
	switch {
	case rest == version:
		return "", number, true
	case strings.HasSuffix(rest, "."+version):
		return strings.TrimSuffix(rest, "."+version), number, true
	}
	return "", 0, false
}

// parseHeader reads the first lines of an experiment file.
func parseHeader(path string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entry := &Entry{Path: path}
	scanner := bufio.NewScanner(f)
	for i := 0; i < headerLines && scanner.Scan(); i++ {
		line := scanner.Text()
		switch i {
		case 1:
			entry.Stardate = strings.TrimPrefix(line, stardatePrefix)
		case 2:
			entry.Description = line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entry, nil
}

// parseCapitanHeader parses a line like
// "Experiment v:1.0.3 - Stardate: 2024-01-02 10:00:00".
func parseCapitanHeader(line string) (CapitanEntry, bool) {
	rest, ok := strings.CutPrefix(line, "Experiment v:")
	if !ok {
		return CapitanEntry{}, false
	}
	ident, stardate, ok := strings.Cut(rest, " - Stardate: ")
	if !ok {
		return CapitanEntry{}, false
	}

	i := strings.LastIndex(ident, ".")
	if i < 0 {
		return CapitanEntry{}, false
	}
	number, err := strconv.Atoi(ident[i+1:])
	if err != nil {
		return CapitanEntry{}, false
	}

	return CapitanEntry{
		Version:  ident[:i],
		Number:   number,
		Stardate: stardate,
	}, true
}
