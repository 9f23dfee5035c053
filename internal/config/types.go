package config

import "time"

// AuthType selects how the API token is sent.
type AuthType string

const (
	// AuthTypeKeystone sends the token in the X-Auth-Token header.
	AuthTypeKeystone AuthType = "keystone"
	// AuthTypeBearer sends the token as an OAuth2 bearer token.
	AuthTypeBearer AuthType = "bearer"
)

// TackerConfig is the top-level configuration structure for tackerctl.
type TackerConfig struct {
	// Endpoint is the base URL of the NFV orchestrator API, without the
	// vnflcm/v1 path.
	Endpoint string `yaml:"endpoint,omitempty"`
	// Timeout bounds every API request.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `yaml:"insecureSkipVerify,omitempty"`
	// Output is the default output format (table, json, yaml).
	Output string     `yaml:"output,omitempty"`
	Auth   AuthConfig `yaml:"auth,omitempty"`
}

// AuthConfig holds API credentials.
type AuthConfig struct {
	Type      AuthType `yaml:"type,omitempty"`
	Token     string   `yaml:"token,omitempty"`
	TokenFile string   `yaml:"tokenFile,omitempty"`
}
