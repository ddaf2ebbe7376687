package starlog

import (
	"strings"
	"testing"
)

func TestListExperiments(t *testing.T) {
	folder := t.TempDir()
	l := testLogger(folder)

	runs := []Experiment{
		{Description: "baseline run", Version: "1.0", Number: 1},
		{Description: "tagged run", Tag: "ml", Version: "1.0", Number: 2},
		{Description: "next version", Version: "2.0", Number: 1},
	}
	for _, exp := range runs {
		if _, err := l.LogExperiment(exp); err != nil {
			t.Fatalf("LogExperiment %+v: %v", exp, err)
		}
	}

	entries, err := ListExperiments(folder)
	if err != nil {
		t.Fatalf("ListExperiments: %v", err)
	}
	if len(entries) != len(runs) {
		t.Fatalf("ListExperiments returned %d entries, want %d", len(entries), len(runs))
	}

	for i, want := range runs {
		e := entries[i]
		if e.Tag != want.Tag || e.Version != want.Version || e.Number != want.Number {
			t.Errorf("entry %d = (%q, %q, %d), want (%q, %q, %d)", i, e.Tag, e.Version, e.Number, want.Tag, want.Version, want.Number)
		}
		if e.Description != want.Description {
			t.Errorf("entry %d description = %q, want %q", i, e.Description, want.Description)
		}
		if e.Stardate != testStardate.Format(StardateLayout) {
			t.Errorf("entry %d stardate = %q", i, e.Stardate)
		}
	}
}

func TestListExperimentsMissingFolder(t *testing.T) {
	entries, err := ListExperiments("/nonexistent/starlog")
	if err != nil {
		t.Fatalf("ListExperiments on missing folder: %v", err)
	}
	if entries != nil {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestReadExperiment(t *testing.T) {
	folder := t.TempDir()
	l := testLogger(folder)

	if _, err := l.LogExperiment(
		Experiment{Description: "D", Tag: "ml", Version: "1.0", Number: 1},
		Text("Final AUC:"), Text(0.789),
	); err != nil {
		t.Fatal(err)
	}

	entry, body, err := ReadExperiment(folder, "ml", "1.0", 1)
	if err != nil {
		t.Fatalf("ReadExperiment: %v", err)
	}
	if entry.Description != "D" {
		t.Errorf("description = %q, want %q", entry.Description, "D")
	}
	if entry.Stardate != "2024-03-01 10:30:00" {
		t.Errorf("stardate = %q", entry.Stardate)
	}
	if !strings.Contains(body, "Final AUC:") || !strings.Contains(body, "0.789") {
		t.Errorf("body missing logged values:\n%s", body)
	}
}

func TestReadExperimentNotFound(t *testing.T) {
	if _, _, err := ReadExperiment(t.TempDir(), "", "1.0", 1); err == nil {
		t.Fatal("expected error for missing experiment")
	}
}

func TestReadCapitanLog(t *testing.T) {
	folder := t.TempDir()
	l := testLogger(folder)

	for n := 1; n <= 2; n++ {
		if _, err := l.LogExperiment(Experiment{Description: "run", Version: "1.0", Number: n}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := ReadCapitanLog(folder)
	if err != nil {
		t.Fatalf("ReadCapitanLog: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadCapitanLog returned %d entries, want 2", len(entries))
	}
	for i, e := range entries {
		if e.Version != "1.0" || e.Number != i+1 {
			t.Errorf("entry %d = v:%s.%d, want v:1.0.%d", i, e.Version, e.Number, i+1)
		}
		if e.Description != "run" {
			t.Errorf("entry %d description = %q", i, e.Description)
		}
		if e.Stardate != "2024-03-01 10:30:00" {
			t.Errorf("entry %d stardate = %q", i, e.Stardate)
		}
	}
}

func TestReadCapitanLogMissing(t *testing.T) {
	entries, err := ReadCapitanLog(t.TempDir())
	if err != nil {
		t.Fatalf("ReadCapitanLog on missing file: %v", err)
	}
	if entries != nil {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestNextNumber(t *testing.T) {
	folder := t.TempDir()
	l := testLogger(folder)

	n, err := NextNumber(folder, "", "1.0")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("NextNumber on empty folder = %d, want 1", n)
	}

	for i := 1; i <= 2; i++ {
		if _, err := l.LogExperiment(Experiment{Description: "run", Version: "1.0", Number: i}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := l.LogExperiment(Experiment{Description: "run", Tag: "ml", Version: "1.0", Number: 5}); err != nil {
		t.Fatal(err)
	}

	n, err = NextNumber(folder, "", "1.0")
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("NextNumber = %d, want 3", n)
	}

	// Numbers are scoped per tag.
	n, err = NextNumber(folder, "ml", "1.0")
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Errorf("NextNumber for tag = %d, want 6", n)
	}
}

func TestParseExperimentName(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		version   string
		expectTag string
		expectNum int
		expectOK  bool
	}{
		{name: "tagged", filename: "exp.ml.1.0.3.txt", version: "1.0", expectTag: "ml", expectNum: 3, expectOK: true},
		{name: "untagged", filename: "exp.1.0.3.txt", version: "1.0", expectTag: "", expectNum: 3, expectOK: true},
		{name: "dotted tag", filename: "exp.a.b.1.0.3.txt", version: "1.0", expectTag: "a.b", expectNum: 3, expectOK: true},
		{name: "plot file", filename: "exp.1.0.3-a.png", version: "1.0", expectOK: false},
		{name: "wrong version", filename: "exp.2.0.3.txt", version: "1.0", expectOK: false},
		{name: "unrelated file", filename: "notes.txt", version: "1.0", expectOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, num, ok := parseExperimentName(tt.filename, tt.version)
			if ok != tt.expectOK {
				t.Fatalf("parseExperimentName(%q, %q) ok = %v, want %v", tt.filename, tt.version, ok, tt.expectOK)
			}
			if !ok {
				return
			}
			if tag != tt.expectTag || num != tt.expectNum {
				t.Errorf("parseExperimentName(%q, %q) = (%q, %d), want (%q, %d)", tt.filename, tt.version, tag, num, tt.expectTag, tt.expectNum)
			}
		})
	}
}
