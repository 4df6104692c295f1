package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "IADATE_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Live    LiveConfig    `toml:"live" yaml:"live"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Store   StoreConfig   `toml:"store" yaml:"store"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	DataDir   string `toml:"data_dir" yaml:"data_dir"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Locale    string `toml:"locale" yaml:"locale"`
}

// LiveConfig holds the live update poller settings
type LiveConfig struct {
	Period     Duration `toml:"period" yaml:"period"`
	BufferSize int      `toml:"buffer_size" yaml:"buffer_size"`
}

// ServerConfig holds the HTTP/websocket server settings
type ServerConfig struct {
	Host         string   `toml:"host" yaml:"host"`
	Port         int      `toml:"port" yaml:"port"`
	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
}

// Addr returns host:port
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// StoreConfig holds the marks database settings
type StoreConfig struct {
	Path string `toml:"path" yaml:"path"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load")
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, parseError(path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, parseError(path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, parseError(path, err)
		}
	default:
		return nil, mdwerror.Newf("unsupported config format: %s", filepath.Ext(path)).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by IADATE_CONFIG, falling back to the
// default locations. Without any config file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	home, _ := os.UserHomeDir()
	defaultPaths := []string{
		"./configs/iadate.toml",
		"./iadate.toml",
		"./iadate.yaml",
		filepath.Join(home, ".config/iadate/config.toml"),
		filepath.Join(home, ".config/iadate/config.yaml"),
	}

	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// Validate checks value ranges after defaults have been applied
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}) error {
		return mdwerror.Newf("invalid value for %s: %v", field, value).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid("server.port", c.Server.Port)
	}
	if c.Live.Period.Duration <= 0 {
		return invalid("live.period", c.Live.Period.Duration)
	}
	if c.Live.BufferSize < 1 {
		return invalid("live.buffer_size", c.Live.BufferSize)
	}
	return nil
}

func parseError(path string, err error) error {
	return mdwerror.Wrap(err, "failed to parse config").
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.General.Locale == "" {
		c.General.Locale = "en_US"
	}

	// Live
	if c.Live.Period.Duration == 0 {
		c.Live.Period.Duration = time.Second
	}
	if c.Live.BufferSize == 0 {
		c.Live.BufferSize = 16
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8300
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 15 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 15 * time.Second
	}

	// Store
	if c.Store.Path == "" {
		c.Store.Path = filepath.Join(c.General.DataDir, "marks.db")
	}
}

// expandEnvVars expands environment variables in path fields
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Store.Path = os.ExpandEnv(c.Store.Path)
}
