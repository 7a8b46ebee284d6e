package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/patterns/core/metrics"
	"github.com/kilianp07/patterns/infra/logger"
)

// EnvPrefix marks environment variables overriding file settings, e.g.
// K_LOGGING__LEVEL=debug sets logging.level.
const EnvPrefix = "K_"

type Config struct {
	Logging logger.Config  `json:"logging"`
	Metrics metrics.Config `json:"metrics"`
	Events  EventsConfig   `json:"events"`
}

// EventsConfig sizes the in-process event bus.
type EventsConfig struct {
	// Buffer is the per-subscriber channel capacity.
	Buffer int `json:"buffer"`
}

// SetDefaults applies sane defaults.
func (c *EventsConfig) SetDefaults() {
	if c.Buffer == 0 {
		c.Buffer = 64
	}
}

// Validate checks the buffer size.
func (c EventsConfig) Validate() error {
	if c.Buffer < 1 {
		return fmt.Errorf("events buffer must be positive, got %d", c.Buffer)
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// Load reads the YAML or JSON file at path, applies environment overrides and
// defaults, then validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Events.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	c.Logging.SetDefaults()
	c.Events.SetDefaults()
}
