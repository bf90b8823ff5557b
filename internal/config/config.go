package config

import (
	"log/slog"

	"golang.org/x/text/language"
)

// Config holds shapecalc settings.
type Config struct {
	Format    string `mapstructure:"format" validate:"oneof=json text"`
	Precision int    `mapstructure:"precision" validate:"min=0,max=15"`
	Lang      string `mapstructure:"lang" validate:"required,bcp47_language_tag"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// Setting keys. Flags use the same names with '-' instead of '_'.
const (
	KeyFormat    = "format"
	KeyPrecision = "precision"
	KeyLang      = "lang"
	KeyLogLevel  = "log_level"
)

// Defaults used when no other source sets a value.
const (
	DefaultFormat    = "text"
	DefaultPrecision = 2
	DefaultLang      = "en"
	DefaultLogLevel  = "warn"
)

// SlogLevel maps LogLevel to a slog level. Unknown values map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Language returns the parsed Lang tag, or language.English if it does not
// parse.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.English
	}
	return tag
}
