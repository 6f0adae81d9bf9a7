// Package config loads typeshed2spec settings from defaults, an optional
// TOML file, TYPESHED2SPEC_* environment variables and bound flags.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. TYPESHED2SPEC_LOG_LEVEL.
	EnvPrefix = "TYPESHED2SPEC"
	// DefaultFile is read from the working directory when no file is given.
	DefaultFile = "typeshed2spec.toml"
)

// Config holds every setting.
type Config struct {
	OutputDirectory  string    `mapstructure:"output_directory"`
	Extensions       []string  `mapstructure:"extensions"`
	RespectGitignore bool      `mapstructure:"respect_gitignore"`
	Log              LogConfig `mapstructure:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output_directory", ".")
	v.SetDefault("extensions", []string{".pyi", ".py"})
	v.SetDefault("respect_gitignore", true)
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the config file at path, or DefaultFile if path is empty and
// that file exists, and returns the merged settings.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	cfg.Extensions = normalizeExtensions(cfg.Extensions)
	return &cfg, nil
}

// normalizeExtensions lower-cases extensions and adds missing leading dots.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
