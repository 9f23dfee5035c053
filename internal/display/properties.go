package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Formatter flattens a field value for display. Formatters are registered
// for structured fields only and must return scalars unchanged.
type Formatter func(value interface{}) interface{}

// Formatters maps field names to their Formatter.
type Formatters map[string]Formatter

// FormatRow looks up each field on the record, in order, and applies the
// field's formatter when one is registered. Missing and null values
// become "".
func FormatRow(record Record, fields []string, formatters Formatters) []interface{} {
	return itemProperties(record, fields, formatters, func(field string) string {
		return field
	})
}

// ItemProperties extracts column values the way generic property
// extraction does: fields are lower-cased and spaces replaced by
// underscores before lookup, except for fields in mixedCase, which keep
// their casing.
func ItemProperties(record Record, fields []string, formatters Formatters, mixedCase FieldSet) []interface{} {
	return itemProperties(record, fields, formatters, func(field string) string {
		key := strings.ReplaceAll(field, " ", "_")
		if mixedCase.Contains(field) {
			return key
		}
		return strings.ToLower(key)
	})
}

func itemProperties(record Record, fields []string, formatters Formatters, keyFor func(string) string) []interface{} {
	row := make([]interface{}, len(fields))
	for i, field := range fields {
		value, ok := record.Get(keyFor(field))
		if !ok || value == nil {
			row[i] = ""
			continue
		}
		if format, ok := formatters[field]; ok && format != nil {
			value = format(value)
		}
		row[i] = value
	}
	return row
}

// FormatComplexData renders objects and arrays as indented JSON with
// sorted object keys. Scalars pass through unchanged and nil becomes "".
func FormatComplexData(value interface{}) interface{} {
	switch value.(type) {
	case nil:
		return ""
	case map[string]interface{}, Record, []interface{}:
	default:
		return value
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(value); err != nil {
		return fmt.Sprintf("%v", value)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Stringify converts a row value to the text shown in a table cell.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case map[string]interface{}, Record, []interface{}:
		return Stringify(FormatComplexData(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
