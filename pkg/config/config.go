// Package config loads jarcraft tool configuration. A .jarcraft.yaml in the
// working directory or the user's home supplies defaults for options that the
// command line does not set explicitly. Keys under the bootstrap: and fetch:
// sections use the same names as the corresponding flags, so a config file
// can predefine any option bag value.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for jarcraft
type Config struct {
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
	Fetch     FetchConfig     `mapstructure:"fetch"`

	bootstrapSettings map[string]any
	fetchSettings     map[string]any
}

// BootstrapConfig holds launcher-generation defaults
type BootstrapConfig struct {
	Output       string `mapstructure:"output"`
	DefaultRules bool   `mapstructure:"default-rules"`
	Preamble     bool   `mapstructure:"preamble"`
}

// FetchConfig holds dependency-resolution defaults
type FetchConfig struct {
	SbtVersion string `mapstructure:"sbt-version"`
}

var defaultConfig = Config{
	Bootstrap: BootstrapConfig{
		Output:       "bootstrap",
		DefaultRules: true,
		Preamble:     true,
	},
	Fetch: FetchConfig{
		SbtVersion: "1.10.7",
	},
}

// BootstrapSettings returns the loosely-typed bootstrap section, defaults
// included, suitable for options.BootstrapFromMap.
func (c *Config) BootstrapSettings() map[string]any { return c.bootstrapSettings }

// FetchSettings returns the loosely-typed fetch section, defaults included,
// suitable for options.FetchFromMap.
func (c *Config) FetchSettings() map[string]any { return c.fetchSettings }

// Load loads configuration from the default search paths. A missing config
// file is not an error; defaults apply.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName(".jarcraft")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFrom loads configuration from an explicit file path.
func LoadFrom(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("bootstrap.output", defaultConfig.Bootstrap.Output)
	v.SetDefault("bootstrap.default-rules", defaultConfig.Bootstrap.DefaultRules)
	v.SetDefault("bootstrap.preamble", defaultConfig.Bootstrap.Preamble)
	v.SetDefault("fetch.sbt-version", defaultConfig.Fetch.SbtVersion)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.bootstrapSettings = section(v, "bootstrap")
	cfg.fetchSettings = section(v, "fetch")
	return &cfg, nil
}

// section extracts one top-level section with defaults and file values
// merged. AllSettings applies viper's layer precedence per key.
func section(v *viper.Viper, name string) map[string]any {
	if m, ok := v.AllSettings()[name].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
