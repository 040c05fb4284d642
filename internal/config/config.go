// Package config loads runner settings for textpair.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-textpair/internal/pairfile"
)

// EnvPrefix is the prefix for environment overrides, e.g. TEXTPAIR_LOG_LEVEL
// or TEXTPAIR_SPLIT_SEP.
const EnvPrefix = "TEXTPAIR"

// Config holds runner settings.
type Config struct {
	LogLevel string      `mapstructure:"log_level"`
	Unique   bool        `mapstructure:"unique"`
	Split    SplitConfig `mapstructure:"split"`
}

// SplitConfig holds the line-splitting rule. At defaults to 1; when Sep is
// set and At was not given explicitly, At is cleared to 0.
type SplitConfig struct {
	At     int    `mapstructure:"at"`
	Sep    string `mapstructure:"sep"`
	First  string `mapstructure:"first"`
	Second string `mapstructure:"second"`
}

// Rule converts the split settings to a pairfile.Rule.
func (s SplitConfig) Rule() pairfile.Rule {
	return pairfile.Rule{
		At:     s.At,
		Sep:    s.Sep,
		First:  pairfile.TransformName(s.First),
		Second: pairfile.TransformName(s.Second),
	}
}

// Validate checks the loaded settings.
func (c Config) Validate() error {
	if err := c.Split.Rule().Validate(); err != nil {
		return fmt.Errorf("config: invalid split rule: %w", err)
	}
	return nil
}

// Load reads configuration from defaults, the config file, env and flags,
// in increasing order of precedence. Flags are matched by key, so a flag
// named "log-level" maps to log_level and "at" maps to split.at. Flags may
// be nil.
//
// The config file is taken from the "config" flag, then TEXTPAIR_CONFIG,
// then $HOME/.config/textpair/config.toml. A missing file is ignored.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "warn")
	v.SetDefault("unique", false)
	v.SetDefault("split.at", 1)
	v.SetDefault("split.sep", "")
	v.SetDefault("split.first", string(pairfile.Borrow))
	v.SetDefault("split.second", string(pairfile.Upper))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}

	v.SetConfigType("toml")
	cfgPath := v.GetString("config")
	explicit := cfgPath != ""
	if explicit {
		v.SetConfigFile(cfgPath)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "textpair"))
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read failed: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal failed: %w", err)
	}
	if c.Split.Sep != "" && !atExplicit(v, flags) {
		c.Split.At = 0
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// atExplicit reports whether split.at came from a changed flag, the
// environment or the config file rather than from a default.
func atExplicit(v *viper.Viper, flags *pflag.FlagSet) bool {
	if flags != nil && flags.Changed("at") {
		return true
	}
	if os.Getenv(EnvPrefix+"_SPLIT_AT") != "" {
		return true
	}
	return v.InConfig("split.at")
}

var flagKeys = map[string]string{
	"config":    "config",
	"log-level": "log_level",
	"unique":    "unique",
	"at":        "split.at",
	"sep":       "split.sep",
	"first":     "split.first",
	"second":    "split.second",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %q: %w", name, err)
		}
	}
	return nil
}
