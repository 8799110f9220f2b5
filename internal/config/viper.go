package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Taxes struct {
		IncomePercentage       float64 `mapstructure:"income_percentage" yaml:"income_percentage"`
		CapitalGainsPercentage float64 `mapstructure:"capital_gains_percentage" yaml:"capital_gains_percentage"`
	} `mapstructure:"taxes" yaml:"taxes"`

	Output struct {
		Prefix          string `mapstructure:"prefix" yaml:"prefix"`
		TableStyle      string `mapstructure:"table_style" yaml:"table_style"`
		FreezeHeader    bool   `mapstructure:"freeze_header" yaml:"freeze_header"`
		AutoSizeColumns bool   `mapstructure:"auto_size_columns" yaml:"auto_size_columns"`
		AutoOpen        bool   `mapstructure:"auto_open" yaml:"auto_open"`
	} `mapstructure:"output" yaml:"output"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then ENHANCER_-prefixed environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.portfolio-enhancer")
	v.AddConfigPath(".portfolio-enhancer")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ENHANCER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars; a broken config file should
			// not block a run but the user should know about it.
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("taxes.income_percentage", 42.0)
	v.SetDefault("taxes.capital_gains_percentage", 26.375)

	v.SetDefault("output.prefix", "Enhanced-")
	v.SetDefault("output.table_style", "TableStyleMedium2")
	v.SetDefault("output.freeze_header", true)
	v.SetDefault("output.auto_size_columns", true)
	v.SetDefault("output.auto_open", false)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level '%s'", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format '%s', must be 'text' or 'json'", config.Log.Format)
	}
	for name, pct := range map[string]float64{
		"taxes.income_percentage":        config.Taxes.IncomePercentage,
		"taxes.capital_gains_percentage": config.Taxes.CapitalGainsPercentage,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%s must be within [0, 100], got %v", name, pct)
		}
	}
	if config.Output.Prefix == "" {
		return fmt.Errorf("output.prefix must not be empty")
	}
	return nil
}
