package config

import (
	"fmt"
	"strings"
)

// ConfigurationError describes a config.yaml that could not be used.
type ConfigurationError struct {
	FilePath    string
	ErrorType   string // parse, validation, io
	Message     string
	Suggestions []string
	Err         error
}

// Error implements the error interface
func (ce *ConfigurationError) Error() string {
	return fmt.Sprintf("%s error in %s: %s", ce.ErrorType, ce.FilePath, ce.Message)
}

// Unwrap returns the underlying error.
func (ce *ConfigurationError) Unwrap() error {
	return ce.Err
}

// DetailedError returns the error together with its suggestions.
func (ce *ConfigurationError) DetailedError() string {
	parts := []string{ce.Error()}
	if len(ce.Suggestions) > 0 {
		parts = append(parts, "Suggestions:")
		for _, s := range ce.Suggestions {
			parts = append(parts, "  - "+s)
		}
	}
	return strings.Join(parts, "\n")
}
