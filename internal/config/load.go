package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load,
// e.g. SHAPECALC_FORMAT or SHAPECALC_LOG_LEVEL.
const EnvPrefix = "SHAPECALC"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds a Config. Sources, highest precedence first: flags in fs that
// were set explicitly, environment variables, the file at configFile (if
// non-empty), defaults. fs may be nil.
func Load(configFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyPrecision, DefaultPrecision)
	v.SetDefault(KeyLang, DefaultLang)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	if fs != nil {
		for _, key := range []string{KeyFormat, KeyPrecision, KeyLang, KeyLogLevel} {
			f := fs.Lookup(FlagName(key))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", f.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return &cfg, nil
}

// FlagName returns the command-line flag name bound to a setting key.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// RequestedFormat returns the output format asked for by an explicitly set
// flag in fs or by SHAPECALC_FORMAT, falling back to DefaultFormat. Other
// settings are not read or validated, so a failed Load can still be reported
// in that format. fs may be nil.
func RequestedFormat(fs *pflag.FlagSet) string {
	if fs != nil {
		if f := fs.Lookup(FlagName(KeyFormat)); f != nil && f.Changed {
			return f.Value.String()
		}
	}
	if v := os.Getenv(EnvPrefix + "_" + strings.ToUpper(KeyFormat)); v != "" {
		return v
	}
	return DefaultFormat
}
