// Package starlog logs machine-learning experiments to plain text files.
//
// Each call to LogExperiment writes one human-readable file under
// <folder>/<version>/ and appends a two-line summary to the master log
// <folder>/capitan.log. Experiment files are never overwritten: a second
// call with the same identifiers fails with ErrAlreadyExists.
//
// There is no cross-process coordination. Two processes racing between the
// existence check and the write can collide; the O_EXCL open keeps the loser
// from clobbering the winner, but the race itself is an accepted limitation.
package starlog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/iuga/starlog/internal/render"
)

// StardateLayout is the timestamp format used in experiment files and the
// capitan log.
const StardateLayout = "2006-01-02 15:04:05"

// Experiment identifies a single run. Version and Number are mandatory and,
// together with the optional Tag, determine the file path. Description is
// free text written to both the experiment file and the capitan log.
type Experiment struct {
	Description string
	Tag         string
	Version     string
	Number      int
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock overrides the wall-clock source used to capture stardates.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// Logger writes experiments into one notebook folder.
type Logger struct {
	folder string
	now    func() time.Time
}

// New creates a Logger rooted at folder. The folder does not need to exist
// yet; it is created on first write.
func New(folder string, opts ...Option) *Logger {
	l := &Logger{
		folder: folder,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Folder returns the notebook folder this Logger writes into.
func (l *Logger) Folder() string {
	return l.folder
}

// LogExperiment writes one experiment file and appends its summary to the
// capitan log. It returns the path of the experiment file.
//
// The stardate is captured once and shared between the experiment file and
// the capitan entry. If the experiment file or any plot file already exists,
// the call fails with ErrAlreadyExists before writing anything. The capitan
// log is appended only after the experiment file has been flushed and closed
// without error; a write failure partway through leaves the partial file on
// disk but never produces a capitan entry.
func (l *Logger) LogExperiment(exp Experiment, values ...Value) (string, error) {
	stardate := l.now()

	path := ExperimentPath(l.folder, exp.Tag, exp.Version, exp.Number)
	if FileExists(path) {
		return "", fmt.Errorf("experiment file %s: %w", path, ErrAlreadyExists)
	}
	plots := 0
	for _, v := range values {
		if v.kind != kindPlot {
			continue
		}
		pp := PlotPath(l.folder, exp.Tag, exp.Version, exp.Number, plots)
		if FileExists(pp) {
			return "", fmt.Errorf("plot file %s: %w", pp, ErrAlreadyExists)
		}
		plots++
	}

	if err := EnsureVersionDir(l.folder, exp.Version); err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("experiment file %s: %w", path, ErrAlreadyExists)
		}
		return "", fmt.Errorf("create experiment file: %w", err)
	}

	ew := &expWriter{logger: l, exp: exp, w: bufio.NewWriter(f)}
	if err := ew.writeAll(stardate, values); err != nil {
		f.Close()
		return "", err
	}
	if err := ew.w.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("write experiment file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close experiment file: %w", err)
	}

	if err := l.AppendCapitanLog(stardate, exp.Description, exp.Version, exp.Number); err != nil {
		return path, err
	}
	return path, nil
}

// AppendCapitanLog appends one two-line entry to <folder>/capitan.log:
// a header line with the experiment identifiers and stardate, and an
// indented description line. The folder is created if absent; existing
// content is never truncated.
//
// LogExperiment calls this after a successful write, but it is exported so
// a lost entry can be re-appended by hand.
func (l *Logger) AppendCapitanLog(stardate time.Time, description, version string, number int) error {
	if err := os.MkdirAll(l.folder, 0o755); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}

	f, err := os.OpenFile(CapitanPath(l.folder), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open capitan log: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "Experiment v:%s.%d - Stardate: %s\n", version, number, stardate.Format(StardateLayout))
	fmt.Fprintf(w, "    %s\n", description)

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("append capitan log: %w", err)
	}
	return f.Close()
}

// LogExperiment is a convenience wrapper over New(folder).LogExperiment.
func LogExperiment(folder string, exp Experiment, values ...Value) (string, error) {
	return New(folder).LogExperiment(exp, values...)
}

// AppendCapitanLog is a convenience wrapper over New(folder).AppendCapitanLog.
func AppendCapitanLog(folder string, stardate time.Time, description, version string, number int) error {
	return New(folder).AppendCapitanLog(stardate, description, version, number)
}

// expWriter serializes the header and values of one experiment.
type expWriter struct {
	logger *Logger
	exp    Experiment
	w      *bufio.Writer
	plots  int
}

// valueWriters maps each value variant to its formatter.
var valueWriters = map[valueKind]func(*expWriter, Value) error{
	kindText:  (*expWriter).writeText,
	kindBlank: (*expWriter).writeBlank,
	kindTable: (*expWriter).writeTable,
	kindPlot:  (*expWriter).writePlot,
}

func (e *expWriter) writeAll(stardate time.Time, values []Value) error {
	if e.exp.Tag != "" {
		fmt.Fprintf(e.w, "Experiment %s v:%s.%d\n", e.exp.Tag, e.exp.Version, e.exp.Number)
	} else {
		fmt.Fprintf(e.w, "Experiment v:%s.%d\n", e.exp.Version, e.exp.Number)
	}
	fmt.Fprintf(e.w, "Stardate: %s\n", stardate.Format(StardateLayout))
	fmt.Fprintf(e.w, "%s\n", e.exp.Description)

	for _, v := range values {
		if err := valueWriters[v.kind](e, v); err != nil {
			return err
		}
	}
	return nil
}

func (e *expWriter) writeText(v Value) error {
	_, err := fmt.Fprintf(e.w, "%s\n", v.text)
	return err
}

func (e *expWriter) writeBlank(Value) error {
	_, err := fmt.Fprintln(e.w)
	return err
}

func (e *expWriter) writeTable(v Value) error {
	_, err := fmt.Fprintf(e.w, "%s\n", render.Table(v.table.Headers, v.table.Rows))
	return err
}

// writePlot saves the plot next to the experiment file and records the saved
// path as a text line. Plot suffixes increment a, b, c... per call.
func (e *expWriter) writePlot(v Value) error {
	path := PlotPath(e.logger.folder, e.exp.Tag, e.exp.Version, e.exp.Number, e.plots)
	e.plots++

	if err := render.SavePNG(path, v.img); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("plot file %s: %w", path, ErrAlreadyExists)
		}
		return err
	}
	_, err := fmt.Fprintf(e.w, "%s\n", path)
	return err
}
