package display

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableOptions controls table rendering.
type TableOptions struct {
	// NoHeaders suppresses the header row.
	NoHeaders bool
	// MaxValueWidth wraps cell text wider than this. Zero disables wrapping.
	MaxValueWidth int
}

// newTable creates a table with the plain ASCII style used for all CLI
// output. Header text keeps its casing.
func newTable(w io.Writer) table.Writer {
	style := table.StyleDefault
	style.Format.Header = text.FormatDefault

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(style)
	return t
}

// RenderShowOne writes a two-column Field/Value table, one row per label.
func RenderShowOne(w io.Writer, labels []string, values []interface{}, opts TableOptions) {
	t := newTable(w)
	if !opts.NoHeaders {
		t.AppendHeader(table.Row{"Field", "Value"})
	}
	if opts.MaxValueWidth > 0 {
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: opts.MaxValueWidth},
		})
	}

	for i, label := range labels {
		var value interface{}
		if i < len(values) {
			value = values[i]
		}
		t.AppendRow(table.Row{label, Stringify(value)})
	}
	t.Render()
}

// RenderList writes one row per record using the shared labels as header.
func RenderList(w io.Writer, labels []string, rows [][]interface{}, opts TableOptions) {
	t := newTable(w)
	if !opts.NoHeaders {
		header := make(table.Row, len(labels))
		for i, l := range labels {
			header[i] = l
		}
		t.AppendHeader(header)
	}

	for _, row := range rows {
		cells := make(table.Row, len(labels))
		for i := range labels {
			if i < len(row) {
				cells[i] = Stringify(row[i])
			} else {
				cells[i] = ""
			}
		}
		t.AppendRow(cells)
	}
	t.Render()
}

// ShowRecord projects a record through the view and renders it as a
// Field/Value table.
func ShowRecord(w io.Writer, record Record, view View, opts TableOptions) {
	p, values := view.Project(record)
	RenderShowOne(w, p.Labels, values, opts)
}

// ListRecords renders records as a multi-row table. All of the view's
// columns are shown so rows stay aligned when some records omit fields.
func ListRecords(w io.Writer, records []Record, view View, opts TableOptions) {
	hidden := NewFieldSet(view.Hidden...)

	var fields, labels []string
	for _, c := range view.Columns {
		if hidden.Contains(c.Field) {
			continue
		}
		fields = append(fields, c.Field)
		labels = append(labels, c.Label)
	}

	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, ItemProperties(r, fields, view.Formatters, view.MixedCase))
	}
	RenderList(w, labels, rows, opts)
}
