package cli

import (
	"encoding/json"
	"fmt"

	"tackerctl/internal/display"

	"gopkg.in/yaml.v3"
)

func (e *Executor) tableOptions() display.TableOptions {
	return display.TableOptions{
		NoHeaders:     e.options.NoHeaders,
		MaxValueWidth: e.options.MaxWidth,
	}
}

// RenderRecord writes a single resource. Tables go through the view's
// column selection; json and yaml print the resource as received.
func (e *Executor) RenderRecord(record display.Record, view display.View) error {
	switch e.options.Format {
	case OutputFormatTable:
		display.ShowRecord(e.out, record, view, e.tableOptions())
		return nil
	case OutputFormatJSON:
		return e.writeJSON(record)
	case OutputFormatYAML:
		return e.writeYAML(record)
	default:
		return fmt.Errorf("unsupported output format: %s", e.options.Format)
	}
}

// RenderRecords writes a list of resources.
func (e *Executor) RenderRecords(records []display.Record, view display.View) error {
	switch e.options.Format {
	case OutputFormatTable:
		display.ListRecords(e.out, records, view, e.tableOptions())
		return nil
	case OutputFormatJSON:
		return e.writeJSON(records)
	case OutputFormatYAML:
		return e.writeYAML(records)
	default:
		return fmt.Errorf("unsupported output format: %s", e.options.Format)
	}
}

// Acknowledge reports that the server accepted an asynchronous request.
func (e *Executor) Acknowledge(action, occID string) {
	fmt.Fprintf(e.out, "%s request for LCM operation %s has been accepted\n", action, occID)
}

// Println writes a line to the command output.
func (e *Executor) Println(msg string) {
	fmt.Fprintln(e.out, msg)
}

func (e *Executor) writeJSON(v interface{}) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func (e *Executor) writeYAML(v interface{}) error {
	enc := yaml.NewEncoder(e.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return enc.Close()
}
