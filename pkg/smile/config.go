package smile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sisl/smile-go/pkg/smile/logging"
)

// Config expresses the knobs used when opening the native SMILE engine and
// the handle registry bound to it.
type Config struct {
	// HomeDir records where the engine's license and scratch files live.
	// Leaving it empty keeps the engine's own default.
	HomeDir string `yaml:"home_dir"`

	// RegistryCapacity bounds the number of live handles. Zero means
	// unbounded.
	RegistryCapacity int `yaml:"registry_capacity"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Logger overrides the logger derived from LogLevel.
	Logger logging.Logger `yaml:"-"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("smile: empty config path")
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator supplied
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration values that cannot be honoured.
func (c Config) Validate() error {
	if c.RegistryCapacity < 0 {
		return fmt.Errorf("smile: registry_capacity must not be negative, got %d", c.RegistryCapacity)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("smile: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// NewLogger returns c.Logger, or a text logger on stderr at LogLevel.
func (c Config) NewLogger() logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.NewText(os.Stderr, logging.ParseLevel(c.LogLevel))
}

// NewRegistry returns a registry configured from c.
func (c Config) NewRegistry() *Registry {
	return NewRegistry(WithLogger(c.NewLogger()), WithCapacity(c.RegistryCapacity))
}
