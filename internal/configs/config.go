package configs

import (
	"fmt"
	"os"

	verrors "github.com/libmw/vite/internal/errors"
)

// DefaultConfigFile is the config file looked up in the working
// directory when --config is not given.
const DefaultConfigFile = "vite.toml"

// Config is the on-disk configuration. Flags override any value set
// here.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	// Host mirrors the --host flag; empty means not configured.
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	StrictPort bool   `toml:"strict_port"`
	HTTPS      bool   `toml:"https"`
	CertFile   string `toml:"cert_file"`
	KeyFile    string `toml:"key_file"`
	Root       string `toml:"root"`
	Base       string `toml:"base"`
}

type LoggingConfig struct {
	// Level is one of silent, error, warn, info.
	Level string `toml:"level"`
	// ClearScreen defaults to true when absent.
	ClearScreen *bool `toml:"clear_screen"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config file at path. A missing file is not an error
// and yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, verrors.ErrInvalidConfig)
	}

	return config, nil
}

// ClearScreenEnabled resolves the tri-state clear_screen setting.
func (c *Config) ClearScreenEnabled() bool {
	if c.Logging.ClearScreen == nil {
		return true
	}
	return *c.Logging.ClearScreen
}
