package starlog

import "testing"

func TestTextFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "string", input: "Final AUC:", expected: "Final AUC:"},
		{name: "float", input: 0.789, expected: "0.789"},
		{name: "int", input: 42, expected: "42"},
		{name: "bool", input: true, expected: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Text(tt.input)
			if v.kind != kindText {
				t.Fatalf("Text(%v).kind = %d, want kindText", tt.input, v.kind)
			}
			if v.text != tt.expected {
				t.Errorf("Text(%v) = %q, want %q", tt.input, v.text, tt.expected)
			}
		})
	}
}

func TestTextEmptyStringIsBlank(t *testing.T) {
	if v := Text(""); v.kind != kindBlank {
		t.Errorf("Text(\"\").kind = %d, want kindBlank", v.kind)
	}
	if v := Blank(); v.kind != kindBlank {
		t.Errorf("Blank().kind = %d, want kindBlank", v.kind)
	}
}

func TestConstructorKinds(t *testing.T) {
	if v := Table([]string{"a"}, nil); v.kind != kindTable || v.table == nil {
		t.Error("Table did not build a table value")
	}
	if v := Plot(testImage()); v.kind != kindPlot || v.img == nil {
		t.Error("Plot did not build a plot value")
	}
}
