package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"paddock/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int         `toml:"version" mapstructure:"version"`
	API        APISettings `toml:"api" mapstructure:"api"`
	UISettings UISettings  `toml:"ui" mapstructure:"ui"`
}

// APISettings describes how to reach the teams backend
type APISettings struct {
	BaseURL string `toml:"base_url" mapstructure:"base_url"`
	Timeout string `toml:"timeout" mapstructure:"timeout"` // Go duration, "0s" disables
}

// UISettings represents UI-related configuration
type UISettings struct {
	Locale    string `toml:"locale" mapstructure:"locale"`
	ShowLogos bool   `toml:"show_logos" mapstructure:"show_logos"`
	LogoWidth int    `toml:"logo_width" mapstructure:"logo_width"`
}

// RequestTimeout parses the configured timeout. Invalid or negative values
// mean no timeout.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.API.Timeout))
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/paddock/config.toml or a home fallback
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "paddock", "config.toml")
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults plus
// environment overrides when the file does not exist
func (cs *configService) Load() (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if _, statErr := os.Stat(cs.filePath); os.IsNotExist(statErr) {
		cfg, err = decode(newViper())
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			BaseURL: cfg.API.BaseURL,
			Locale:  cfg.UISettings.Locale,
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return decode(v)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL: "http://localhost:4000",
			Timeout: "0s",
		},
		UISettings: UISettings{
			Locale:    "pt-BR",
			ShowLogos: true,
			LogoWidth: 8,
		},
	}
}

// newViper builds a viper instance seeded with defaults. Environment
// variables prefixed with PADDOCK_ override file values, e.g.
// PADDOCK_API_BASE_URL.
func newViper() *viper.Viper {
	def := DefaultConfig()
	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("version", def.Version)
	v.SetDefault("api.base_url", def.API.BaseURL)
	v.SetDefault("api.timeout", def.API.Timeout)
	v.SetDefault("ui.locale", def.UISettings.Locale)
	v.SetDefault("ui.show_logos", def.UISettings.ShowLogos)
	v.SetDefault("ui.logo_width", def.UISettings.LogoWidth)

	v.SetEnvPrefix("PADDOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	normalize(&cfg)
	return &cfg, nil
}

func normalize(cfg *Config) {
	def := DefaultConfig()
	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	cfg.API.BaseURL = strings.TrimSpace(cfg.API.BaseURL)
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = def.API.BaseURL
	}
	if cfg.UISettings.Locale == "" {
		cfg.UISettings.Locale = def.UISettings.Locale
	}
	if cfg.UISettings.LogoWidth < 2 {
		cfg.UISettings.LogoWidth = def.UISettings.LogoWidth
	}
}
