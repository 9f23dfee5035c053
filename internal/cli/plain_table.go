package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PlainTableWriter writes kubectl-style columns without borders, for output
// that is meant to be piped to grep or awk.
type PlainTableWriter struct {
	headers     []string
	rows        [][]string
	widths      []int
	padding     int
	showHeaders bool
	out         io.Writer
}

// NewPlainTableWriter returns a writer with upper-cased headers shown.
func NewPlainTableWriter(out io.Writer, headers ...string) *PlainTableWriter {
	w := &PlainTableWriter{padding: 3, showHeaders: true, out: out}
	for _, h := range headers {
		upper := strings.ToUpper(h)
		w.headers = append(w.headers, upper)
		w.widths = append(w.widths, runewidth.StringWidth(upper))
	}
	return w
}

// SetNoHeaders controls whether to suppress the header row.
func (w *PlainTableWriter) SetNoHeaders(noHeaders bool) {
	w.showHeaders = !noHeaders
}

// AppendRow adds a row, padding or truncating it to the header count.
func (w *PlainTableWriter) AppendRow(cells ...string) {
	row := make([]string, len(w.headers))
	copy(row, cells)
	for i, cell := range row {
		if width := runewidth.StringWidth(cell); width > w.widths[i] {
			w.widths[i] = width
		}
	}
	w.rows = append(w.rows, row)
}

// Render writes the table. Nothing is written for a headerless empty table.
func (w *PlainTableWriter) Render() {
	if len(w.headers) == 0 || (len(w.rows) == 0 && !w.showHeaders) {
		return
	}
	if w.showHeaders {
		w.printRow(w.headers)
	}
	for _, row := range w.rows {
		w.printRow(row)
	}
}

func (w *PlainTableWriter) printRow(row []string) {
	var sb strings.Builder
	for i, cell := range row {
		sb.WriteString(cell)
		if i < len(row)-1 {
			sb.WriteString(strings.Repeat(" ", w.widths[i]-runewidth.StringWidth(cell)+w.padding))
		}
	}
	fmt.Fprintln(w.out, strings.TrimRight(sb.String(), " "))
}
