// Package config resolves questlog settings from defaults, an optional
// .questlog.yaml file, QUESTLOG_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	KeyDocument = "document"
	KeyYear     = "year"
	KeyWidth    = "width"
	KeyWatch    = "watch"
	KeyDebug    = "debug"
	KeyColor    = "color"

	// DefaultDocument is the well-known file loaded on start.
	DefaultDocument = "quest-data.json"
	// DefaultYear is the calendar year the month selector lists.
	DefaultYear = 2026
)

// Config holds the resolved settings.
type Config struct {
	// Document is a file path or an http(s) URL.
	Document string
	// Year is the fixed selector year. It is not derived from the data.
	Year  int
	Width int
	Watch bool
	Debug bool
	Color string
}

// New returns a viper instance with questlog defaults and environment
// bindings. Commands bind their flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDocument, DefaultDocument)
	v.SetDefault(KeyYear, DefaultYear)
	v.SetDefault(KeyWidth, 80)
	v.SetDefault(KeyWatch, false)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyColor, "auto")

	v.SetConfigName(".questlog") // .yaml is implicit
	v.SetEnvPrefix("QUESTLOG")
	v.AutomaticEnv()

	if override := os.Getenv("QUESTLOG_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return v
}

// Load reads the config file, if any, and resolves the settings.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = New()
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{
		Document: v.GetString(KeyDocument),
		Year:     v.GetInt(KeyYear),
		Width:    v.GetInt(KeyWidth),
		Watch:    v.GetBool(KeyWatch),
		Debug:    v.GetBool(KeyDebug),
		Color:    v.GetString(KeyColor),
	}
	if cfg.Document == "" {
		cfg.Document = DefaultDocument
	}
	if cfg.Year < 1 || cfg.Year > 9999 {
		return nil, fmt.Errorf("config: year %d out of range", cfg.Year)
	}
	if cfg.Width <= 0 {
		cfg.Width = 80
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("config: color must be auto, always or never, got %q", cfg.Color)
	}
	return cfg, nil
}
