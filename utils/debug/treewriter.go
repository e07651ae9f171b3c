// Package debug has helpers to produce human readable dumps of element trees
// and resolved styles.
package debug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates indented lines. Zero value is not usable, use
// NewTreeWriter.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// WriteTo implements io.WriterTo.
func (tw TreeWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tw.w.String())
	return int64(n), err
}

func (tw TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(indent)
	}
}

// Line writes formatted line at requested depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Text writes labeled quoted text, empty text is written as is.
func (tw TreeWriter) Text(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(quote(value))
	tw.w.WriteByte('\n')
}

// Fields writes key/value pairs one per line with keys padded to the same
// width. Pairs are written in the order given.
func (tw TreeWriter) Fields(depth int, pairs ...Field) {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p.Key))
	}
	for _, p := range pairs {
		tw.pad(depth)
		tw.w.WriteString(p.Key)
		tw.w.WriteByte(':')
		tw.w.WriteString(strings.Repeat(" ", width-len(p.Key)+1))
		fmt.Fprint(tw.w, p.Value)
		tw.w.WriteByte('\n')
	}
}

// Field is a single named value for Fields.
type Field struct {
	Key   string
	Value any
}

func quote(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
