package context

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tackerctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	contextsFileName = "contexts.yaml"
	userConfigDir    = ".config/tackerctl"
)

// Storage reads and writes contexts.yaml.
type Storage struct {
	mu         sync.RWMutex
	configPath string
}

// NewStorage returns a Storage rooted at ~/.config/tackerctl.
func NewStorage() (*Storage, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine home directory: %w", err)
	}
	return NewStorageWithPath(filepath.Join(homeDir, userConfigDir)), nil
}

// NewStorageWithPath returns a Storage rooted at configPath.
func NewStorageWithPath(configPath string) *Storage {
	return &Storage{configPath: configPath}
}

// FilePath returns the location of contexts.yaml.
func (s *Storage) FilePath() string {
	return filepath.Join(s.configPath, contextsFileName)
}

// Load parses contexts.yaml. A missing file yields an empty config.
func (s *Storage) Load() (*ContextConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

func (s *Storage) load() (*ContextConfig, error) {
	data, err := os.ReadFile(s.FilePath())
	if errors.Is(err, os.ErrNotExist) {
		return &ContextConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read contexts file: %w", err)
	}

	var config ContextConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse contexts file %s: %w", s.FilePath(), err)
	}
	return &config, nil
}

// save writes config to contexts.yaml, creating the directory if needed. The
// caller holds the write lock.
func (s *Storage) save(config *ContextConfig) error {
	if err := os.MkdirAll(s.configPath, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal contexts: %w", err)
	}

	if err := os.WriteFile(s.FilePath(), data, 0o600); err != nil {
		return fmt.Errorf("failed to write contexts file: %w", err)
	}
	logging.Debug("Context", "Saved %d contexts to %s", len(config.Contexts), s.FilePath())
	return nil
}

// update runs fn against the current file contents under the write lock and
// saves the result when fn succeeds.
func (s *Storage) update(fn func(*ContextConfig) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(config); err != nil {
		return err
	}
	return s.save(config)
}

// GetCurrentContext returns the selected context, or nil when none is
// selected or the selection no longer exists.
func (s *Storage) GetCurrentContext() (*Context, error) {
	config, err := s.Load()
	if err != nil {
		return nil, err
	}
	if config.CurrentContext == "" {
		return nil, nil
	}
	return config.GetContext(config.CurrentContext), nil
}

// GetCurrentContextName returns the selected context name, possibly empty.
func (s *Storage) GetCurrentContextName() (string, error) {
	config, err := s.Load()
	if err != nil {
		return "", err
	}
	return config.CurrentContext, nil
}

// SetCurrentContext selects an existing context.
func (s *Storage) SetCurrentContext(name string) error {
	return s.update(func(config *ContextConfig) error {
		if !config.HasContext(name) {
			return &ContextNotFoundError{Name: name}
		}
		config.CurrentContext = name
		return nil
	})
}

// AddContext defines a new context. Existing names are rejected.
func (s *Storage) AddContext(name, endpoint string, settings *ContextSettings) error {
	if err := ValidateContextName(name); err != nil {
		return err
	}
	if endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}

	return s.update(func(config *ContextConfig) error {
		if config.HasContext(name) {
			return fmt.Errorf("context %q already exists", name)
		}
		config.AddOrUpdateContext(Context{Name: name, Endpoint: endpoint, Settings: settings})
		return nil
	})
}

// DeleteContext removes a context by name.
func (s *Storage) DeleteContext(name string) error {
	return s.update(func(config *ContextConfig) error {
		if !config.RemoveContext(name) {
			return &ContextNotFoundError{Name: name}
		}
		return nil
	})
}

// ListContexts returns all defined contexts in file order.
func (s *Storage) ListContexts() ([]Context, error) {
	config, err := s.Load()
	if err != nil {
		return nil, err
	}
	return config.Contexts, nil
}

// GetContext returns the named context or nil.
func (s *Storage) GetContext(name string) (*Context, error) {
	config, err := s.Load()
	if err != nil {
		return nil, err
	}
	return config.GetContext(name), nil
}

// GetContextNames returns all context names, for shell completion.
func (s *Storage) GetContextNames() ([]string, error) {
	contexts, err := s.ListContexts()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(contexts))
	for _, ctx := range contexts {
		names = append(names, ctx.Name)
	}
	return names, nil
}
