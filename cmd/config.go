package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultOwnerCode = "ABC"
)

type Config struct {
	SerialSeed int64  `mapstructure:"serial_seed"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	OwnerCode  string `mapstructure:"owner_code"`
}

// LoadDotEnv copies the variables of path into the process environment. A
// missing file is not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// NewViper returns a viper instance with the defaults set and every key bound
// to its upper case environment variable (serial_seed → SERIAL_SEED).
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("serial_seed", services.DefaultSerialSeed)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("owner_code", DefaultOwnerCode)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig reads the configuration from v and validates it.
func LoadConfig(v *viper.Viper) (Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// ConfigFromEnv reads the configuration from the process environment only.
func ConfigFromEnv() (Config, error) {
	return LoadConfig(NewViper())
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.SerialSeed < 0 {
		errs = append(errs, fmt.Errorf("serial_seed must not be negative, got %d", c.SerialSeed))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if format := strings.ToLower(c.LogFormat); format != "text" && format != "json" {
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	if c.OwnerCode == "" {
		errs = append(errs, errors.New("owner_code is required"))
	}

	return errors.Join(errs...)
}
