package display

import (
	"encoding/json"
	"fmt"
)

// Record is a single API resource decoded from JSON.
type Record map[string]interface{}

// Has reports whether the field is present on the record, even if its
// value is null.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Get returns the value of a field and whether it was present.
func (r Record) Get(field string) (interface{}, bool) {
	v, ok := r[field]
	return v, ok
}

// RecordFrom converts a decoded JSON value into a Record.
// Anything other than a JSON object is rejected.
func RecordFrom(v interface{}) (Record, error) {
	switch d := v.(type) {
	case Record:
		return d, nil
	case map[string]interface{}:
		return Record(d), nil
	case nil:
		return nil, fmt.Errorf("expected a JSON object, got null")
	default:
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
}

// DecodeRecord parses a JSON document that must hold a single object.
func DecodeRecord(data []byte) (Record, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse resource: %w", err)
	}
	return RecordFrom(v)
}

// DecodeRecords parses a JSON document that must hold an array of objects.
func DecodeRecords(data []byte) ([]Record, error) {
	var items []interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse resource list: %w", err)
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		r, err := RecordFrom(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}
