package display

import (
	"fmt"
	"strings"
)

// Column pairs an API field name with its display label.
type Column struct {
	Field string
	Label string
}

// ColumnMap is an ordered field-to-label table. Its order is the preferred
// display order.
type ColumnMap []Column

// NewColumnMap builds a ColumnMap from alternating field/label pairs and
// panics on an odd argument count or a duplicated field. It is meant for
// package-level tables.
func NewColumnMap(pairs ...string) ColumnMap {
	if len(pairs)%2 != 0 {
		panic("display: NewColumnMap needs field/label pairs")
	}

	m := make(ColumnMap, 0, len(pairs)/2)
	seen := make(map[string]bool, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		field := pairs[i]
		if seen[field] {
			panic(fmt.Sprintf("display: duplicate column %q", field))
		}
		seen[field] = true
		m = append(m, Column{Field: field, Label: pairs[i+1]})
	}
	return m
}

// Fields returns the field names in display order.
func (m ColumnMap) Fields() []string {
	fields := make([]string, len(m))
	for i, c := range m {
		fields[i] = c.Field
	}
	return fields
}

// Labels returns the display labels in display order.
func (m ColumnMap) Labels() []string {
	labels := make([]string, len(m))
	for i, c := range m {
		labels[i] = c.Label
	}
	return labels
}

// Label returns the label for a field.
func (m ColumnMap) Label(field string) (string, bool) {
	for _, c := range m {
		if c.Field == field {
			return c.Label, true
		}
	}
	return "", false
}

// ValidateMixedCase checks that every mixed-case field is also a column.
func (m ColumnMap) ValidateMixedCase(mixed FieldSet) error {
	var missing []string
	for _, field := range mixed.Sorted() {
		if _, ok := m.Label(field); !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("mixed-case fields not in column map: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Projection is the per-record result of SelectColumns. Labels[i] is the
// display label of Fields[i].
type Projection struct {
	Labels []string
	Fields []string
}

// Len returns the number of selected columns.
func (p Projection) Len() int {
	return len(p.Fields)
}

// SelectColumns returns the columns of m that are present on record, in
// the order of m.
func SelectColumns(record Record, m ColumnMap) Projection {
	return SelectColumnsExcept(record, m)
}

// SelectColumnsExcept behaves like SelectColumns but also drops the hidden
// fields.
func SelectColumnsExcept(record Record, m ColumnMap, hidden ...string) Projection {
	skip := NewFieldSet(hidden...)

	p := Projection{
		Labels: make([]string, 0, len(m)),
		Fields: make([]string, 0, len(m)),
	}
	for _, c := range m {
		if skip.Contains(c.Field) || !record.Has(c.Field) {
			continue
		}
		p.Labels = append(p.Labels, c.Label)
		p.Fields = append(p.Fields, c.Field)
	}
	return p
}
