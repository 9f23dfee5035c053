package config

import "time"

const (
	// DefaultEndpoint is the address of a local Tacker API server.
	DefaultEndpoint = "http://localhost:9890"

	// DefaultTimeout bounds API requests when none is configured.
	DefaultTimeout = 30 * time.Second

	// DefaultOutput is the output format used when none is configured.
	DefaultOutput = "table"
)

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() TackerConfig {
	return TackerConfig{
		Endpoint: DefaultEndpoint,
		Timeout:  DefaultTimeout,
		Output:   DefaultOutput,
		Auth: AuthConfig{
			Type: AuthTypeKeystone,
		},
	}
}
