package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentx-labs/skillmaker/internal/branding"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
	envFile  = ".env"
)

// Config keys.
const (
	KeyOutputDir = "output_dir"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Defaults for the config keys.
const (
	DefaultOutputDir = "./generated_skills"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "fmt"
)

// Settings is the resolved configuration for one CLI invocation.
type Settings struct {
	OutputDir string `mapstructure:"output_dir"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Dir returns the path to the config directory (~/.skillmaker/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.skillmaker/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load resets Viper and initializes it from the .env file, the environment
// and the config file. A missing .env or config file is not an error.
func Load() error {
	viper.Reset()

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	viper.SetDefault(KeyOutputDir, DefaultOutputDir)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyLogFormat, DefaultLogFormat)

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Resolve snapshots the current values into Settings.
func Resolve() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return s, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Keys returns the settable config keys.
func Keys() []string {
	return []string{KeyOutputDir, KeyLogLevel, KeyLogFormat}
}

// Set writes a config key-value pair to the config file. Only values already
// in the file are carried over; defaults, flags and environment are not.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	file := viper.New()
	file.SetConfigFile(FilePath())
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	viper.Set(key, value)
	return nil
}
