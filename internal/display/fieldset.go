package display

import "sort"

// FieldSet is an immutable set of field names.
type FieldSet struct {
	fields map[string]struct{}
}

// NewFieldSet returns a set holding the given fields.
func NewFieldSet(fields ...string) FieldSet {
	s := FieldSet{fields: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		s.fields[f] = struct{}{}
	}
	return s
}

// Contains reports whether field is in the set.
func (s FieldSet) Contains(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// Len returns the number of fields in the set.
func (s FieldSet) Len() int {
	return len(s.fields)
}

// Sorted returns the fields in lexical order.
func (s FieldSet) Sorted() []string {
	out := make([]string, 0, len(s.fields))
	for f := range s.fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
