// Package config resolves runtime settings from defaults, an optional
// questchron.yaml, a .env file and QUESTCHRON_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"quest-chronicles/internal/character"
	"quest-chronicles/internal/store"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "QUESTCHRON"

// Config holds the resolved settings.
type Config struct {
	SaveDir            string `mapstructure:"save_dir"`
	DataDir            string `mapstructure:"data_dir"`
	Seed               int64  `mapstructure:"seed"`
	LogFile            string `mapstructure:"log_file"`
	LogLevel           string `mapstructure:"log_level"`
	ReviveCostPerLevel int    `mapstructure:"revive_cost_per_level"`
}

// Options controls where Load looks.
type Options struct {
	ConfigFile string // explicit config file; empty searches "." and the save dir
	EnvFile    string // .env path; empty means ".env" in the working directory
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	saveDir, err := store.DefaultDir()
	if err != nil {
		saveDir = ".quest-chronicles"
	}
	v.SetDefault("save_dir", saveDir)
	v.SetDefault("data_dir", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("revive_cost_per_level", character.DefaultReviveCost)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the .env file (if present) and the config file (if any) into v,
// then decodes the result.
func Load(v *viper.Viper, opts Options) (Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("questchron")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(v.GetString("save_dir"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.ReviveCostPerLevel < 0 {
		return Config{}, fmt.Errorf("revive_cost_per_level must not be negative, got %d", cfg.ReviveCostPerLevel)
	}
	return cfg, nil
}

// Level maps the configured level name to a slog level.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Logger builds the text logger described by the config. The terminal UI
// owns stdout, so without a log file output is discarded. The returned
// closer releases the file.
func (c Config) Logger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: c.Level()})), f, nil
}
