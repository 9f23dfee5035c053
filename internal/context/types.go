package context

import (
	"fmt"
	"regexp"
)

// ContextEnvVar selects a context for a single invocation.
const ContextEnvVar = "TACKER_CONTEXT"

const maxContextNameLength = 63

var contextNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ContextSettings override global configuration for one context.
type ContextSettings struct {
	// Output is the default output format (table, json, yaml).
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
	// InsecureSkipVerify disables TLS verification for this endpoint only.
	InsecureSkipVerify bool `yaml:"insecureSkipVerify,omitempty" json:"insecureSkipVerify,omitempty"`
}

// Context is a named Tacker API endpoint.
type Context struct {
	Name     string           `yaml:"name" json:"name"`
	Endpoint string           `yaml:"endpoint" json:"endpoint"`
	Settings *ContextSettings `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// ContextConfig is the root of contexts.yaml.
type ContextConfig struct {
	CurrentContext string    `yaml:"current-context,omitempty"`
	Contexts       []Context `yaml:"contexts,omitempty"`
}

// ContextNotFoundError is returned when a named context is not defined.
type ContextNotFoundError struct {
	Name string
}

func (e *ContextNotFoundError) Error() string {
	return fmt.Sprintf("context %q not found", e.Name)
}

// ValidateContextName checks that name is 1-63 lowercase alphanumerics or
// hyphens, starting and ending with an alphanumeric.
func ValidateContextName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("context name cannot be empty")
	case len(name) > maxContextNameLength:
		return fmt.Errorf("context name cannot exceed %d characters", maxContextNameLength)
	case !contextNamePattern.MatchString(name):
		return fmt.Errorf("invalid context name %q: use lowercase letters, digits and hyphens, starting and ending with a letter or digit", name)
	}
	return nil
}

func (c *ContextConfig) find(name string) int {
	for i := range c.Contexts {
		if c.Contexts[i].Name == name {
			return i
		}
	}
	return -1
}

// GetContext returns the named context or nil.
func (c *ContextConfig) GetContext(name string) *Context {
	if i := c.find(name); i >= 0 {
		return &c.Contexts[i]
	}
	return nil
}

// HasContext reports whether name is defined.
func (c *ContextConfig) HasContext(name string) bool {
	return c.find(name) >= 0
}

// AddOrUpdateContext replaces a context with the same name or appends ctx.
func (c *ContextConfig) AddOrUpdateContext(ctx Context) {
	if i := c.find(ctx.Name); i >= 0 {
		c.Contexts[i] = ctx
		return
	}
	c.Contexts = append(c.Contexts, ctx)
}

// RemoveContext deletes the named context, clearing CurrentContext if it
// pointed at it. It reports whether anything was removed.
func (c *ContextConfig) RemoveContext(name string) bool {
	i := c.find(name)
	if i < 0 {
		return false
	}
	c.Contexts = append(c.Contexts[:i], c.Contexts[i+1:]...)
	if c.CurrentContext == name {
		c.CurrentContext = ""
	}
	return true
}
