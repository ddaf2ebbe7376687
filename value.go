package starlog

import (
	"fmt"
	"image"
)

// valueKind discriminates the variants of a Value.
type valueKind int

const (
	kindText valueKind = iota
	kindBlank
	kindTable
	kindPlot
)

// TableData is a rectangular dataset rendered as a pretty-printed table.
type TableData struct {
	Headers []string
	Rows    [][]string
}

// Value is one loggable item of an experiment: a text line, a blank line,
// a tabular dataset, or a plot saved as a sibling PNG file. Build values
// with the Text, Blank, Table and Plot constructors.
type Value struct {
	kind  valueKind
	text  string
	table *TableData
	img   image.Image
}

// Text wraps any value as a single text line using its default formatting.
// An empty string renders as a blank line.
func Text(v any) Value {
	s := fmt.Sprint(v)
	if s == "" {
		return Blank()
	}
	return Value{kind: kindText, text: s}
}

// Blank is an explicit blank line, useful as a visual separator.
func Blank() Value {
	return Value{kind: kindBlank}
}

// Table wraps a rectangular dataset. Rows shorter than the header row are
// padded by the renderer.
func Table(headers []string, rows [][]string) Value {
	return Value{kind: kindTable, table: &TableData{Headers: headers, Rows: rows}}
}

// Plot wraps a rendered image. The writer saves it next to the experiment
// file and records the saved path as a text line.
func Plot(img image.Image) Value {
	return Value{kind: kindPlot, img: img}
}
