// Package config resolves staffbook settings from defaults, an optional
// config file, STAFFBOOK_* environment variables, and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/roach88/staffbook/internal/backend"
)

// Keys, shared by the config file, environment and flags.
const (
	KeyFile      = "file"
	KeyBackend   = "backend"
	KeyUniqueIDs = "unique_ids"
	KeyFormat    = "format"
	KeyVerbose   = "verbose"
)

// DefaultFile is the roster file used when none is configured.
const DefaultFile = "employees.json"

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

type Config struct {
	File      string       `yaml:"file" mapstructure:"file"`
	Backend   backend.Kind `yaml:"backend" mapstructure:"backend"`
	UniqueIDs bool         `yaml:"unique_ids" mapstructure:"unique_ids"`
	Format    string       `yaml:"format" mapstructure:"format"`
	Verbose   bool         `yaml:"verbose" mapstructure:"verbose"`

	// Source is the config file that was read, if any.
	Source string `yaml:"-" mapstructure:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		File:    DefaultFile,
		Backend: backend.KindFile,
		Format:  "text",
	}
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"unique-ids": KeyUniqueIDs,
}

// Load resolves the configuration.
//
// configFile, when set, must exist. Otherwise staffbook.yaml is looked up
// in the working directory and in $XDG_CONFIG_HOME/staffbook (falling back
// to ~/.config/staffbook); a missing file there is fine. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	def := DefaultConfig()
	v := viper.New()
	v.SetDefault(KeyFile, def.File)
	v.SetDefault(KeyBackend, string(def.Backend))
	v.SetDefault(KeyUniqueIDs, def.UniqueIDs)
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyVerbose, def.Verbose)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("staffbook")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(configDir())
	}

	v.SetEnvPrefix("STAFFBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyFile, KeyBackend, "unique-ids", KeyFormat, KeyVerbose} {
			f := flags.Lookup(key)
			if f == nil {
				continue
			}
			name := key
			if mapped, ok := flagKeys[key]; ok {
				name = mapped
			}
			if err := v.BindPFlag(name, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %q: %w", key, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{
		File:      v.GetString(KeyFile),
		Backend:   backend.Kind(v.GetString(KeyBackend)),
		UniqueIDs: v.GetBool(KeyUniqueIDs),
		Format:    v.GetString(KeyFormat),
		Verbose:   v.GetBool(KeyVerbose),
		Source:    v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors and normalizes the backend
// and format names.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("config: file is required")
	}
	kind, err := backend.ParseKind(string(c.Backend))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Backend = kind

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	for _, f := range ValidFormats {
		if f == c.Format {
			return nil
		}
	}
	return fmt.Errorf("config: invalid format %q: must be one of %v", c.Format, ValidFormats)
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "staffbook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "staffbook")
}
