// Package config loads tool-level configuration: the default author identity
// and output directory applied when plugin options leave them blank.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for plugsmith configuration.
const envPrefix = "PLUGSMITH"

// Fixed fallback identity used when neither flags, manifest, nor
// configuration supply one.
const (
	DefaultAuthor    = "Plugsmith Authors"
	DefaultAuthorURI = "https://plugsmith.dev/"
	PluginURIBase    = "https://plugsmith.dev/plugins/"
)

// Config holds resolved tool settings.
type Config struct {
	Author    string `mapstructure:"author"`
	AuthorURI string `mapstructure:"authorUri"`
	OutputDir string `mapstructure:"outputDir"`
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader. Environment variables take
// precedence over file values.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("author", "PLUGSMITH_AUTHOR")
	_ = v.BindEnv("authorUri", "PLUGSMITH_AUTHOR_URI")
	_ = v.BindEnv("outputDir", "PLUGSMITH_OUTPUT_DIR")

	return &Loader{v: v}
}

// Load loads configuration from the given file path. If configFile is empty,
// ~/.plugsmith.yaml is used. A missing file is not an error; defaults and
// environment variables still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configFile = filepath.Join(home, ".plugsmith.yaml")
	}

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.withDefaults(), nil
}

func (c *Config) withDefaults() *Config {
	if c.Author == "" {
		c.Author = DefaultAuthor
	}
	if c.AuthorURI == "" {
		c.AuthorURI = DefaultAuthorURI
	}
	return c
}
