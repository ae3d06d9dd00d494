// Package config loads the sunspot dashboard configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultDataPath  = "SN_m_tot_V2.0.csv"
	DefaultPort      = 8050
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultOutput    = "table"

	// EnvPrefix prefixes every environment variable read into the config.
	EnvPrefix = "SUNSPOTS_"
	// EnvFile is read from the working directory when present.
	EnvFile = ".env"
)

// Config holds the settings shared by all commands.
type Config struct {
	DataPath  string `koanf:"data_path"`
	Port      int    `koanf:"port"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	Output    string `koanf:"output"`

	// File is the config file that was loaded, empty if none.
	File string `koanf:"-"`
}

// findConfigFile finds the config file to use.
// Priority: explicit path > sunspots.yaml > sunspots.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"sunspots.yaml", "sunspots.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// envKey transforms SUNSPOTS_DATA_PATH -> data_path.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Load loads configuration from defaults, a yaml file, the .env file, the
// environment and flags.
// Precedence (highest to lowest): flags > env vars > .env > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"data_path":  DefaultDataPath,
		"port":       DefaultPort,
		"log_level":  DefaultLogLevel,
		"log_format": DefaultLogFormat,
		"output":     DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. .env file, only SUNSPOTS_ keys
	dotenv, err := godotenv.Read(EnvFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading %s: %w", EnvFile, err)
	}
	if len(dotenv) > 0 {
		values := make(map[string]interface{}, len(dotenv))
		for key, v := range dotenv {
			if strings.HasPrefix(key, EnvPrefix) {
				values[envKey(key)] = v
			}
		}
		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", EnvFile, err)
		}
	}

	// 4. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if key == "data" {
				return "data_path", posflag.FlagVal(flags, f)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return errors.New("data_path is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	switch strings.ToLower(c.Output) {
	case "table", "json":
	default:
		return fmt.Errorf("output must be table or json, got %q", c.Output)
	}
	return nil
}
