package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tackerctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/tackerctl"
	configFileName = "config.yaml"

	// EndpointEnvVar overrides the configured endpoint.
	EndpointEnvVar = "TACKER_ENDPOINT"
	// TokenEnvVar overrides the configured token.
	TokenEnvVar = "TACKER_TOKEN"
)

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads config.yaml from configPath over the defaults and applies
// environment overrides.
func LoadConfig(configPath string) (TackerConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.Debug("Config", "No config.yaml found at %s, using defaults", configFilePath)
	case err != nil:
		return TackerConfig{}, &ConfigurationError{
			FilePath:  configFilePath,
			ErrorType: "io",
			Message:   err.Error(),
			Err:       err,
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return TackerConfig{}, &ConfigurationError{
				FilePath:    configFilePath,
				ErrorType:   "parse",
				Message:     err.Error(),
				Suggestions: []string{"check the YAML syntax", "durations use Go syntax, e.g. 30s or 2m"},
				Err:         err,
			}
		}
		logging.Debug("Config", "Loaded configuration from %s", configFilePath)
	}

	applyEnv(&config)

	if err := config.Validate(); err != nil {
		return TackerConfig{}, &ConfigurationError{
			FilePath:  configFilePath,
			ErrorType: "validation",
			Message:   err.Error(),
			Err:       err,
		}
	}
	return config, nil
}

func applyEnv(config *TackerConfig) {
	if endpoint := os.Getenv(EndpointEnvVar); endpoint != "" {
		config.Endpoint = endpoint
	}
	if token := os.Getenv(TokenEnvVar); token != "" {
		config.Auth.Token = token
	}
}

// ResolveToken returns the configured token, reading TokenFile when no
// inline token is set. A leading "~/" in TokenFile is expanded.
func (c TackerConfig) ResolveToken() (string, error) {
	if c.Auth.Token != "" {
		return c.Auth.Token, nil
	}
	if c.Auth.TokenFile == "" {
		return "", nil
	}

	path := c.Auth.TokenFile
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand token file path: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
