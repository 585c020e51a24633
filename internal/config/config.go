// Package config provides configuration management.
//
// Values are layered: built-in defaults, then an optional config file
// (JSON, YAML or TOML), then PRICESIM_* environment variables.
package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"pricing-simulator/core/pricing/primitives"
	"pricing-simulator/internal/errors"
	"pricing-simulator/internal/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PRICESIM"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing" mapstructure:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// DefaultCurrency applies to catalogs that do not name one
	DefaultCurrency primitives.Currency `json:"default_currency" mapstructure:"default_currency"`

	// Catalog is the catalog file used when --catalog is not given
	Catalog string `json:"catalog,omitempty" mapstructure:"catalog"`

	// StrictCatalog refuses to estimate over a catalog that fails validation
	StrictCatalog bool `json:"strict_catalog" mapstructure:"strict_catalog"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" mapstructure:"default_format"`

	// NoColor disables terminal colours
	NoColor bool `json:"no_color" mapstructure:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			DefaultCurrency: primitives.CurrencyEUR,
			StrictCatalog:   false,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			NoColor:       false,
		},
		Logging: logging.DefaultConfig(),
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("version", d.Version)
	v.SetDefault("pricing.default_currency", string(d.Pricing.DefaultCurrency))
	v.SetDefault("pricing.catalog", d.Pricing.Catalog)
	v.SetDefault("pricing.strict_catalog", d.Pricing.StrictCatalog)
	v.SetDefault("output.default_format", d.Output.DefaultFormat)
	v.SetDefault("output.no_color", d.Output.NoColor)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.development", d.Logging.Development)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load loads configuration from a file.
// An empty path searches for pricesim.{json,yaml,toml} in the working
// directory; a missing file leaves defaults and environment in effect.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pricesim")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Config("failed to read config file", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("failed to decode config", err)
	}
	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
