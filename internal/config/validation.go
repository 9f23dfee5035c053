package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string) {
	*ve = append(*ve, ValidationError{Field: field, Message: message})
}

// ValidateEndpoint checks that an endpoint is an absolute http(s) URL.
func ValidateEndpoint(endpoint string) error {
	if strings.TrimSpace(endpoint) == "" {
		return ValidationError{Field: "endpoint", Message: "is required"}
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return ValidationError{Field: "endpoint", Message: fmt.Sprintf("is not a valid URL: %v", err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ValidationError{Field: "endpoint", Message: fmt.Sprintf("must use http or https, got %q", endpoint)}
	}
	if u.Host == "" {
		return ValidationError{Field: "endpoint", Message: fmt.Sprintf("has no host: %q", endpoint)}
	}
	return nil
}

// Validate checks the whole configuration and returns all problems found.
func (c TackerConfig) Validate() error {
	var errs ValidationErrors

	if err := ValidateEndpoint(c.Endpoint); err != nil {
		errs = append(errs, err.(ValidationError))
	}

	if c.Timeout < 0 {
		errs.Add("timeout", "must not be negative")
	}

	switch c.Output {
	case "", "table", "json", "yaml":
	default:
		errs.Add("output", fmt.Sprintf("unsupported output format %q (valid: table, json, yaml)", c.Output))
	}

	switch c.Auth.Type {
	case "", AuthTypeKeystone, AuthTypeBearer:
	default:
		errs.Add("auth.type", fmt.Sprintf("unsupported auth type %q (valid: keystone, bearer)", c.Auth.Type))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
