// Package config loads site settings from syntax.yaml, SYNTAX_* environment
// variables and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/3-lines-studio/syntax/internal/markdown"
)

const EnvPrefix = "SYNTAX"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr           string `mapstructure:"addr"`
	Dev            bool   `mapstructure:"dev"`
	LogLevel       string `mapstructure:"log_level"`
	SiteTitle      string `mapstructure:"site_title"`
	HighlightStyle string `mapstructure:"highlight_style"`
	ExportDir      string `mapstructure:"export_dir"`
	ContentDir     string `mapstructure:"content_dir"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("dev", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("site_title", "Lucido Technology Consulting")
	v.SetDefault("highlight_style", markdown.DefaultHighlightStyle)
	v.SetDefault("export_dir", "dist")
	v.SetDefault("content_dir", "")
}

// Load reads configuration. configFile may be empty, in which case
// syntax.yaml is looked up in the working directory and is optional. Flags
// in flags override everything else when they were set explicitly.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetConfigType("yaml")
	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("syntax")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !isKnownKey(key) {
				return
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return Config{}, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func isKnownKey(key string) bool {
	switch key {
	case "addr", "dev", "log_level", "site_title", "highlight_style", "export_dir", "content_dir":
		return true
	}
	return false
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		return fmt.Errorf("%w: export_dir is empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.HighlightStyle) == "" {
		return fmt.Errorf("%w: highlight_style is empty", ErrInvalidConfig)
	}
	return nil
}
