package starlog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExperimentFileName(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		version  string
		number   int
		expected string
	}{
		{
			name:     "with tag",
			tag:      "ml",
			version:  "1.0",
			number:   3,
			expected: "exp.ml.1.0.3.txt",
		},
		{
			name:     "without tag",
			tag:      "",
			version:  "1.0",
			number:   3,
			expected: "exp.1.0.3.txt",
		},
		{
			name:     "single segment version",
			tag:      "",
			version:  "2",
			number:   12,
			expected: "exp.2.12.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExperimentFileName(tt.tag, tt.version, tt.number)
			if got != tt.expected {
				t.Errorf("ExperimentFileName(%q, %q, %d) = %q, want %q", tt.tag, tt.version, tt.number, got, tt.expected)
			}
		})
	}
}

func TestPlotFileName(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		index    int
		expected string
	}{
		{name: "first plot", tag: "ml", index: 0, expected: "exp.ml.1.0.1-a.png"},
		{name: "second plot", tag: "ml", index: 1, expected: "exp.ml.1.0.1-b.png"},
		{name: "no tag", tag: "", index: 0, expected: "exp.1.0.1-a.png"},
		{name: "last single letter", tag: "", index: 25, expected: "exp.1.0.1-z.png"},
		{name: "rolls over to two letters", tag: "", index: 26, expected: "exp.1.0.1-aa.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlotFileName(tt.tag, "1.0", 1, tt.index)
			if got != tt.expected {
				t.Errorf("PlotFileName(%q, \"1.0\", 1, %d) = %q, want %q", tt.tag, tt.index, got, tt.expected)
			}
		})
	}
}

func TestExperimentPath(t *testing.T) {
	got := ExperimentPath("lab", "ml", "1.0", 7)
	want := filepath.Join("lab", "1.0", "exp.ml.1.0.7.txt")
	if got != want {
		t.Errorf("ExperimentPath = %q, want %q", got, want)
	}
}

func TestEnsureVersionDirIdempotent(t *testing.T) {
	folder := t.TempDir()

	if err := EnsureVersionDir(folder, "1.0"); err != nil {
		t.Fatalf("first EnsureVersionDir: %v", err)
	}
	if err := EnsureVersionDir(folder, "1.0"); err != nil {
		t.Fatalf("second EnsureVersionDir: %v", err)
	}

	info, err := os.Stat(filepath.Join(folder, "1.0"))
	if err != nil {
		t.Fatalf("version dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("version path is not a directory")
	}
}
